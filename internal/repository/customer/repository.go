package customer

import (
	"context"

	"onlineshop/internal/domain"
)

// UpdateInput carries a partial update: nil fields keep their current value.
type UpdateInput struct {
	Name    *string
	Surname *string
	Email   *string
}

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context, skip, limit int) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (*domain.Customer, error)
}
