package customer

import (
	"context"
	"errors"
	"testing"

	"onlineshop/internal/domain"
	custrepo "onlineshop/internal/repository/customer"
)

type stubRepo struct {
	customer    *domain.Customer
	err         error
	lastCreated domain.Customer
	lastUpdate  custrepo.UpdateInput
}

func (s *stubRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, error) {
	s.lastCreated = c
	return s.customer, s.err
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubRepo) GetByEmail(_ context.Context, _ string) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubRepo) List(_ context.Context, _, _ int) ([]domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Customer{}, nil
}

func (s *stubRepo) Update(_ context.Context, _ int64, in custrepo.UpdateInput) (*domain.Customer, error) {
	s.lastUpdate = in
	return s.customer, s.err
}

func (s *stubRepo) Delete(_ context.Context, _ int64) (*domain.Customer, error) {
	return s.customer, s.err
}

func TestCreateNormalizesEmail(t *testing.T) {
	repo := &stubRepo{customer: &domain.Customer{ID: 1}}
	svc := New(repo)

	_, err := svc.Create(context.Background(), CreateInput{Name: "John", Surname: "Doe", Email: "  John.Doe@X.com "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreated.Email != "john.doe@x.com" {
		t.Fatalf("expected lowered trimmed email, got %q", repo.lastCreated.Email)
	}
}

func TestCreateRequiresEmail(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.Create(context.Background(), CreateInput{Name: "John", Surname: "Doe", Email: "   "})
	if err == nil {
		t.Fatalf("expected email validation error")
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := New(&stubRepo{err: domain.ErrAlreadyExists})
	_, err := svc.Create(context.Background(), CreateInput{Name: "John", Surname: "Doe", Email: "john@x.com"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestUpdatePassesPartialFields(t *testing.T) {
	repo := &stubRepo{customer: &domain.Customer{ID: 1}}
	svc := New(repo)

	name := "Jane"
	if _, err := svc.Update(context.Background(), 1, UpdateInput{Name: &name}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpdate.Name == nil || *repo.lastUpdate.Name != "Jane" {
		t.Fatalf("expected name patch, got %+v", repo.lastUpdate)
	}
	if repo.lastUpdate.Surname != nil || repo.lastUpdate.Email != nil {
		t.Fatalf("absent fields must stay nil, got %+v", repo.lastUpdate)
	}
}

func TestDeleteBlockedByOrders(t *testing.T) {
	svc := New(&stubRepo{err: domain.ErrHasOrders})
	_, err := svc.Delete(context.Background(), 1)
	if !errors.Is(err, domain.ErrHasOrders) {
		t.Fatalf("expected has-orders error, got %v", err)
	}
}
