package importer

import (
	"context"
	"strings"
	"testing"

	"onlineshop/internal/domain"
	itemrepo "onlineshop/internal/repository/shopitem"
)

type stubItemRepo struct {
	items []itemrepo.CreateInput
}

func (s *stubItemRepo) UpsertByTitle(_ context.Context, in itemrepo.CreateInput) (*domain.ShopItem, error) {
	s.items = append(s.items, in)
	return &domain.ShopItem{ID: int64(len(s.items)), Title: in.Title}, nil
}

type stubCategoryRepo struct {
	byTitle map[string]int64
	nextID  int64
}

func (s *stubCategoryRepo) EnsureByTitle(_ context.Context, title string) (*domain.Category, error) {
	if s.byTitle == nil {
		s.byTitle = make(map[string]int64)
	}
	if id, ok := s.byTitle[title]; ok {
		return &domain.Category{ID: id, Title: title}, nil
	}
	s.nextID++
	s.byTitle[title] = s.nextID
	return &domain.Category{ID: s.nextID, Title: title}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `title,description,price,categories
Smartphone,Latest model smartphone,599.99,Electronics
Garden Hose,50ft garden hose,29.99,Home & Garden;Outdoors
,skipped row,1.00,
T-Shirt,Comfortable cotton t-shirt,19.99,`

	repo := &stubItemRepo{}
	catRepo := &stubCategoryRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo, catRepo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 items imported, got %d", count)
	}

	if len(repo.items) != 3 {
		t.Fatalf("expected 3 items saved, got %d", len(repo.items))
	}
	if repo.items[0].Title != "Smartphone" || repo.items[0].Price != 599.99 {
		t.Fatalf("unexpected item data: %+v", repo.items[0])
	}
	if len(repo.items[1].CategoryIDs) != 2 {
		t.Fatalf("expected 2 categories on garden hose, got %+v", repo.items[1].CategoryIDs)
	}
	if len(repo.items[2].CategoryIDs) != 0 {
		t.Fatalf("expected no categories on t-shirt, got %+v", repo.items[2].CategoryIDs)
	}
	if len(catRepo.byTitle) != 3 { // Electronics, Home & Garden, Outdoors
		t.Fatalf("expected 3 categories ensured, got %d", len(catRepo.byTitle))
	}
}

func TestCSVImporter_MissingColumns(t *testing.T) {
	csvData := `name,cost
Phone,10`
	imp := NewCSVImporter(strings.NewReader(csvData), &stubItemRepo{}, &stubCategoryRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestCSVImporter_BadPrice(t *testing.T) {
	csvData := `title,description,price,categories
Phone,desc,not-a-number,`
	imp := NewCSVImporter(strings.NewReader(csvData), &stubItemRepo{}, &stubCategoryRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for bad price")
	}
}
