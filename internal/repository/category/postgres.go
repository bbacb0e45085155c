package category

import (
	"context"
	"errors"

	"onlineshop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO shop_item_categories (title, description)
VALUES ($1, $2)
RETURNING id, title, description
`
	return scanCategory(r.pool.QueryRow(ctx, q, c.Title, c.Description))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `
SELECT id, title, description
FROM shop_item_categories
WHERE id = $1
`
	return scanCategory(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	const q = `
SELECT id, title, description
FROM shop_item_categories
ORDER BY id
OFFSET $1 LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Category, error) {
	const q = `
UPDATE shop_item_categories
SET title = COALESCE($2, title),
    description = COALESCE($3, description)
WHERE id = $1
RETURNING id, title, description
`
	return scanCategory(r.pool.QueryRow(ctx, q, id, in.Title, in.Description))
}

// Delete removes a category. Association rows to shop items are dropped by the
// store; items themselves are untouched.
func (r *postgresRepo) Delete(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `
DELETE FROM shop_item_categories
WHERE id = $1
RETURNING id, title, description
`
	return scanCategory(r.pool.QueryRow(ctx, q, id))
}

// EnsureByTitle returns the category with the given title, creating it when
// missing. Used by the catalog importer.
func (r *postgresRepo) EnsureByTitle(ctx context.Context, title string) (*domain.Category, error) {
	const q = `
SELECT id, title, description
FROM shop_item_categories
WHERE title = $1
ORDER BY id
LIMIT 1
`
	c, err := scanCategory(r.pool.QueryRow(ctx, q, title))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return r.Create(ctx, domain.Category{Title: title})
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Title, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
