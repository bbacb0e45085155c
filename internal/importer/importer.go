package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"onlineshop/internal/domain"
	itemrepo "onlineshop/internal/repository/shopitem"
)

type ItemWriter interface {
	UpsertByTitle(ctx context.Context, in itemrepo.CreateInput) (*domain.ShopItem, error)
}

type CategoryEnsurer interface {
	EnsureByTitle(ctx context.Context, title string) (*domain.Category, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates shop items.
// Expected columns: title, description, price, categories (semicolon-separated
// category titles; missing categories are created).
type CSVImporter struct {
	reader     *csv.Reader
	items      ItemWriter
	categories CategoryEnsurer
}

func NewCSVImporter(r io.Reader, items ItemWriter, categories CategoryEnsurer) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		items:      items,
		categories: categories,
	}
}

// Run parses CSV rows and upserts shop items, returning the imported count.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range []string{"title", "price"} {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing required column %q", col)
		}
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		title := strings.TrimSpace(field(record, index, "title"))
		if title == "" {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(field(record, index, "price")), 64)
		if err != nil {
			return imported, fmt.Errorf("row %q: parse price: %w", title, err)
		}

		categoryIDs, err := i.ensureCategories(ctx, field(record, index, "categories"))
		if err != nil {
			return imported, fmt.Errorf("row %q: %w", title, err)
		}

		if _, err := i.items.UpsertByTitle(ctx, itemrepo.CreateInput{
			Title:       title,
			Description: strings.TrimSpace(field(record, index, "description")),
			Price:       price,
			CategoryIDs: categoryIDs,
		}); err != nil {
			return imported, fmt.Errorf("upsert item %q: %w", title, err)
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) ensureCategories(ctx context.Context, raw string) ([]int64, error) {
	var ids []int64
	for _, title := range strings.Split(raw, ";") {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		cat, err := i.categories.EnsureByTitle(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("ensure category %q: %w", title, err)
		}
		ids = append(ids, cat.ID)
	}
	return ids, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
