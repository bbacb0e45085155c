package category

import (
	"context"

	"onlineshop/internal/domain"
	"onlineshop/internal/repository/category"
)

type Service struct {
	repo category.Repository
}

func New(repo category.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures fields for a new category.
type CreateInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateInput captures a partial category update; nil fields are untouched.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	return s.repo.Create(ctx, domain.Category{Title: in.Title, Description: in.Description})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Category, error) {
	return s.repo.Update(ctx, id, category.UpdateInput{Title: in.Title, Description: in.Description})
}

func (s *Service) Delete(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.Delete(ctx, id)
}
