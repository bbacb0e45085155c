package shopitem

import (
	"context"

	"onlineshop/internal/domain"
)

// CreateInput carries fields for a new shop item. CategoryIDs is a set; every
// id must resolve to an existing category.
type CreateInput struct {
	Title       string
	Description string
	Price       float64
	CategoryIDs []int64
}

// UpdateInput carries a partial update: nil fields keep their current value.
// A non-nil CategoryIDs replaces the whole category set, even when empty.
type UpdateInput struct {
	Title       *string
	Description *string
	Price       *float64
	CategoryIDs *[]int64
}

// Repository persists and fetches shop items with their category sets.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.ShopItem, error)
	GetByID(ctx context.Context, id int64) (*domain.ShopItem, error)
	List(ctx context.Context, skip, limit int) ([]domain.ShopItem, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.ShopItem, error)
	Delete(ctx context.Context, id int64) (*domain.ShopItem, error)
	UpsertByTitle(ctx context.Context, in CreateInput) (*domain.ShopItem, error)
}
