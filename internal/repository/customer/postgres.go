package customer

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"onlineshop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (name, surname, email)
VALUES ($1, $2, $3)
RETURNING id, name, surname, email
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, c.Name, c.Surname, strings.ToLower(c.Email)))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `
SELECT id, name, surname, email
FROM customers
WHERE id = $1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT id, name, surname, email
FROM customers
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) List(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	const q = `
SELECT id, name, surname, email
FROM customers
ORDER BY id
OFFSET $1 LIMIT $2
`
	rows, err := r.pool.Query(ctx, q, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Email); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Customer, error) {
	var email *string
	if in.Email != nil {
		lowered := strings.ToLower(*in.Email)
		email = &lowered
	}
	const q = `
UPDATE customers
SET name = COALESCE($2, name),
    surname = COALESCE($3, surname),
    email = COALESCE($4, email)
WHERE id = $1
RETURNING id, name, surname, email
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id, in.Name, in.Surname, email))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `
DELETE FROM customers
WHERE id = $1
RETURNING id, name, surname, email
`
	c, err := r.scanCustomer(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrHasOrders
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
