package order

import (
	"context"
	"errors"

	"onlineshop/internal/domain"
	orderrepo "onlineshop/internal/repository/order"
)

// Service is the single authority for mutating an order together with its
// items. Every reference supplied by a caller is resolved before any write is
// issued; the repository then commits the whole aggregate in one transaction,
// with foreign key constraints as the backstop for races past validation.
type Service struct {
	repo      orderRepo
	customers customerGetter
	items     itemGetter
}

type orderRepo interface {
	Create(ctx context.Context, customerID int64, items []orderrepo.ItemInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, skip, limit int) ([]domain.Order, error)
	Update(ctx context.Context, id int64, in orderrepo.UpdateInput) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (*domain.Order, error)
}

type customerGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type itemGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.ShopItem, error)
}

func New(repo orderRepo, customers customerGetter, items itemGetter) *Service {
	return &Service{repo: repo, customers: customers, items: items}
}

// ItemInput is one requested order line.
type ItemInput struct {
	ShopItemID int64 `json:"shop_item_id" binding:"required"`
	Quantity   int   `json:"quantity"`
}

// CreateInput captures the order creation payload.
type CreateInput struct {
	CustomerID int64       `json:"customer_id" binding:"required"`
	Items      []ItemInput `json:"items"`
}

// UpdateInput captures a partial order update. Nil means the field was not
// supplied; a non-nil empty Items slice still replaces the child collection.
type UpdateInput struct {
	CustomerID *int64       `json:"customer_id"`
	Items      *[]ItemInput `json:"items"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if err := s.checkCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	if err := s.checkItems(ctx, in.Items); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in.CustomerID, toRepoItems(in.Items))
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.Order, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Order, error) {
	if in.CustomerID == nil && in.Items == nil {
		// A no-op update is valid: return the order unchanged.
		return s.repo.GetByID(ctx, id)
	}
	// The addressed order must exist before any reference validation, so a
	// missing order answers NotFound rather than a reference failure.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if in.CustomerID != nil {
		if err := s.checkCustomer(ctx, *in.CustomerID); err != nil {
			return nil, err
		}
	}
	if in.Items != nil {
		if err := s.checkItems(ctx, *in.Items); err != nil {
			return nil, err
		}
	}

	patch := orderrepo.UpdateInput{CustomerID: in.CustomerID}
	if in.Items != nil {
		items := toRepoItems(*in.Items)
		patch.Items = &items
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkCustomer(ctx context.Context, id int64) error {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ReferenceError{Entity: domain.EntityCustomer, ID: id}
		}
		return err
	}
	return nil
}

func (s *Service) checkItems(ctx context.Context, items []ItemInput) error {
	for _, item := range items {
		if _, err := s.items.GetByID(ctx, item.ShopItemID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return &domain.ReferenceError{Entity: domain.EntityShopItem, ID: item.ShopItemID}
			}
			return err
		}
	}
	return nil
}

func toRepoItems(items []ItemInput) []orderrepo.ItemInput {
	out := make([]orderrepo.ItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, orderrepo.ItemInput{ShopItemID: item.ShopItemID, Quantity: item.Quantity})
	}
	return out
}
