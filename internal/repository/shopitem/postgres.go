package shopitem

import (
	"context"
	"errors"

	"onlineshop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.ShopItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id int64
	const q = `
INSERT INTO shop_items (title, description, price)
VALUES ($1, $2, $3)
RETURNING id
`
	if err := tx.QueryRow(ctx, q, in.Title, in.Description, in.Price).Scan(&id); err != nil {
		return nil, err
	}
	if err := replaceCategories(ctx, tx, id, in.CategoryIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return fetchItem(ctx, r.pool, id)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.ShopItem, error) {
	return fetchItem(ctx, r.pool, id)
}

func (r *postgresRepo) List(ctx context.Context, skip, limit int) ([]domain.ShopItem, error) {
	const q = `
SELECT id, title, description, price
FROM shop_items
ORDER BY id
OFFSET $1 LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.ShopItem, 0)
	for rows.Next() {
		var it domain.ShopItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		it.Categories = make([]domain.Category, 0)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, len(items))
	index := make(map[int64]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
		index[it.ID] = i
	}
	byItem, err := categoriesForItems(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for itemID, cats := range byItem {
		items[index[itemID]].Categories = cats
	}
	return items, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) (*domain.ShopItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE shop_items
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    price = COALESCE($4, price)
WHERE id = $1
RETURNING id
`
	var updated int64
	if err := tx.QueryRow(ctx, q, id, in.Title, in.Description, in.Price).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if in.CategoryIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM shop_item_category_links WHERE shop_item_id = $1`, id); err != nil {
			return nil, err
		}
		if err := replaceCategories(ctx, tx, id, *in.CategoryIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return fetchItem(ctx, r.pool, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) (*domain.ShopItem, error) {
	item, err := fetchItem(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM shop_items WHERE id = $1`, id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrInUse
		}
		return nil, err
	}
	return item, nil
}

// UpsertByTitle creates the item or, when one with the same title exists,
// overwrites its fields and category set. Used by the catalog importer.
func (r *postgresRepo) UpsertByTitle(ctx context.Context, in CreateInput) (*domain.ShopItem, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM shop_items WHERE title = $1 ORDER BY id LIMIT 1`, in.Title).Scan(&id)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return r.Create(ctx, in)
	}
	cats := in.CategoryIDs
	return r.Update(ctx, id, UpdateInput{
		Description: &in.Description,
		Price:       &in.Price,
		CategoryIDs: &cats,
	})
}

// replaceCategories inserts link rows for the given set after confirming every
// id resolves to an existing category.
func replaceCategories(ctx context.Context, tx pgx.Tx, itemID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	unique := make([]int64, 0, len(categoryIDs))
	seen := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM shop_item_categories WHERE id = ANY($1)`, unique).Scan(&count); err != nil {
		return err
	}
	if count != len(unique) {
		return &domain.ReferenceError{Entity: domain.EntityCategory}
	}

	for _, catID := range unique {
		if _, err := tx.Exec(ctx, `
INSERT INTO shop_item_category_links (shop_item_id, category_id)
VALUES ($1, $2)
`, itemID, catID); err != nil {
			return err
		}
	}
	return nil
}

func fetchItem(ctx context.Context, q querier, id int64) (*domain.ShopItem, error) {
	const itemQuery = `
SELECT id, title, description, price
FROM shop_items
WHERE id = $1
`
	var it domain.ShopItem
	err := q.QueryRow(ctx, itemQuery, id).Scan(&it.ID, &it.Title, &it.Description, &it.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	byItem, err := categoriesForItems(ctx, q, []int64{it.ID})
	if err != nil {
		return nil, err
	}
	it.Categories = byItem[it.ID]
	if it.Categories == nil {
		it.Categories = make([]domain.Category, 0)
	}
	return &it, nil
}

// categoriesForItems loads the category sets for the given item ids in one query.
func categoriesForItems(ctx context.Context, q querier, itemIDs []int64) (map[int64][]domain.Category, error) {
	byItem := make(map[int64][]domain.Category)
	if len(itemIDs) == 0 {
		return byItem, nil
	}
	const linksQuery = `
SELECT l.shop_item_id, c.id, c.title, c.description
FROM shop_item_category_links l
JOIN shop_item_categories c ON c.id = l.category_id
WHERE l.shop_item_id = ANY($1)
ORDER BY c.id
`
	rows, err := q.Query(ctx, linksQuery, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID int64
		var c domain.Category
		if err := rows.Scan(&itemID, &c.ID, &c.Title, &c.Description); err != nil {
			return nil, err
		}
		byItem[itemID] = append(byItem[itemID], c)
	}
	return byItem, rows.Err()
}
