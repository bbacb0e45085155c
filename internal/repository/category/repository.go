package category

import (
	"context"

	"onlineshop/internal/domain"
)

// UpdateInput carries a partial update: nil fields keep their current value.
type UpdateInput struct {
	Title       *string
	Description *string
}

// Repository persists and fetches shop item categories.
type Repository interface {
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, skip, limit int) ([]domain.Category, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) (*domain.Category, error)
	EnsureByTitle(ctx context.Context, title string) (*domain.Category, error)
}
