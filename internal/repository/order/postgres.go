package order

import (
	"context"
	"errors"
	"io"
	"log"

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

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Create persists the order row and all its child order_items rows inside one
// transaction, so a failure on any insert leaves no partial aggregate behind.
func (r *postgresRepo) Create(ctx context.Context, customerID int64, items []ItemInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id)
VALUES ($1)
RETURNING id
`, customerID).Scan(&orderID)
	if err != nil {
		return nil, mapFKError(err, customerID)
	}

	if err := insertItems(ctx, tx, orderID, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return fetchOrder(ctx, r.pool, orderID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return fetchOrder(ctx, r.pool, id)
}

func (r *postgresRepo) List(ctx context.Context, skip, limit int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id
FROM orders
ORDER BY id
OFFSET $1 LIMIT $2
`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		o, err := fetchOrder(ctx, r.pool, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

// Update applies a partial update inside one transaction. When Items is set,
// the previous child collection is deleted and rebuilt, never merged.
func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var exists int64
	if err := tx.QueryRow(ctx, `SELECT id FROM orders WHERE id = $1`, id).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if in.CustomerID != nil {
		if _, err := tx.Exec(ctx, `
UPDATE orders
SET customer_id = $1
WHERE id = $2
`, *in.CustomerID, id); err != nil {
			return nil, mapFKError(err, *in.CustomerID)
		}
	}

	if in.Items != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
			return nil, err
		}
		if err := insertItems(ctx, tx, id, *in.Items); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return fetchOrder(ctx, r.pool, id)
}

// Delete resolves the full aggregate first, then removes the order row; child
// order_items rows go with it via the cascade.
func (r *postgresRepo) Delete(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := fetchOrder(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []ItemInput) error {
	for _, item := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, shop_item_id, quantity)
VALUES ($1, $2, $3)
`, orderID, item.ShopItemID, item.Quantity); err != nil {
			return mapFKError(err, item.ShopItemID)
		}
	}
	return nil
}

// mapFKError turns a foreign key violation into the reference error naming the
// entity the failed constraint points at. This is the backstop for references
// that were valid at validation time but deleted before the write landed.
func mapFKError(err error, refID int64) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return err
	}
	switch pgErr.ConstraintName {
	case "orders_customer_id_fkey":
		return &domain.ReferenceError{Entity: domain.EntityCustomer, ID: refID}
	case "order_items_shop_item_id_fkey":
		return &domain.ReferenceError{Entity: domain.EntityShopItem, ID: refID}
	}
	return err
}

// fetchOrder loads the aggregate eagerly: order row, its customer, every child
// item, and each item's shop item with categories.
func fetchOrder(ctx context.Context, q querier, id int64) (*domain.Order, error) {
	const orderQuery = `
SELECT o.id, o.customer_id, c.name, c.surname, c.email
FROM orders o
JOIN customers c ON c.id = o.customer_id
WHERE o.id = $1
`
	var o domain.Order
	err := q.QueryRow(ctx, orderQuery, id).Scan(
		&o.ID,
		&o.CustomerID,
		&o.Customer.Name,
		&o.Customer.Surname,
		&o.Customer.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.Customer.ID = o.CustomerID

	const itemsQuery = `
SELECT oi.id, oi.shop_item_id, oi.quantity, si.title, si.description, si.price
FROM order_items oi
JOIN shop_items si ON si.id = oi.shop_item_id
WHERE oi.order_id = $1
ORDER BY oi.id
`
	rows, err := q.Query(ctx, itemsQuery, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	o.Items = make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.ShopItemID,
			&item.Quantity,
			&item.ShopItem.Title,
			&item.ShopItem.Description,
			&item.ShopItem.Price,
		); err != nil {
			return nil, err
		}
		item.ShopItem.ID = item.ShopItemID
		item.ShopItem.Categories = make([]domain.Category, 0)
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadItemCategories(ctx, q, o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}

func loadItemCategories(ctx context.Context, q querier, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ShopItemID)
	}
	const linksQuery = `
SELECT l.shop_item_id, c.id, c.title, c.description
FROM shop_item_category_links l
JOIN shop_item_categories c ON c.id = l.category_id
WHERE l.shop_item_id = ANY($1)
ORDER BY c.id
`
	rows, err := q.Query(ctx, linksQuery, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byItem := make(map[int64][]domain.Category)
	for rows.Next() {
		var itemID int64
		var c domain.Category
		if err := rows.Scan(&itemID, &c.ID, &c.Title, &c.Description); err != nil {
			return err
		}
		byItem[itemID] = append(byItem[itemID], c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		if cats, ok := byItem[items[i].ShopItemID]; ok {
			items[i].ShopItem.Categories = cats
		}
	}
	return nil
}
