package shopitem

import (
	"context"

	"onlineshop/internal/domain"
	itemrepo "onlineshop/internal/repository/shopitem"
)

type Service struct {
	repo itemrepo.Repository
}

func New(repo itemrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures fields for a new shop item.
type CreateInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryIDs []int64 `json:"category_ids"`
}

// UpdateInput captures a partial item update. A non-nil CategoryIDs replaces
// the whole category set.
type UpdateInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryIDs *[]int64 `json:"category_ids"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.ShopItem, error) {
	return s.repo.Create(ctx, itemrepo.CreateInput{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		CategoryIDs: in.CategoryIDs,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ShopItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.ShopItem, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.ShopItem, error) {
	return s.repo.Update(ctx, id, itemrepo.UpdateInput{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		CategoryIDs: in.CategoryIDs,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) (*domain.ShopItem, error) {
	return s.repo.Delete(ctx, id)
}
