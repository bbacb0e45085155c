package order

import (
	"context"

	"onlineshop/internal/domain"
)

// ItemInput is one requested order line: a shop item reference plus quantity.
type ItemInput struct {
	ShopItemID int64
	Quantity   int
}

// UpdateInput carries a partial order update. A nil field keeps the current
// value; a non-nil Items replaces the entire child collection, even when empty.
type UpdateInput struct {
	CustomerID *int64
	Items      *[]ItemInput
}

// Repository persists order aggregates: the order row together with its owned
// order_items rows, written as one transaction.
type Repository interface {
	Create(ctx context.Context, customerID int64, items []ItemInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, skip, limit int) ([]domain.Order, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (*domain.Order, error)
}
