package customer

import (
	"context"
	"errors"
	"strings"

	"onlineshop/internal/domain"
	custrepo "onlineshop/internal/repository/customer"
)

// Service handles customer CRUD, enforcing the unique-email rule.
type Service struct {
	repo custrepo.Repository
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures fields for a new customer.
type CreateInput struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

// UpdateInput captures a partial customer update; nil fields are untouched.
type UpdateInput struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   *string `json:"email"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, errors.New("email required")
	}
	return s.repo.Create(ctx, domain.Customer{
		Name:    in.Name,
		Surname: in.Surname,
		Email:   email,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Customer, error) {
	return s.repo.Update(ctx, id, custrepo.UpdateInput{
		Name:    in.Name,
		Surname: in.Surname,
		Email:   in.Email,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.Delete(ctx, id)
}
