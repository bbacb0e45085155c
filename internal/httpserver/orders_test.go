package httpserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"onlineshop/internal/domain"
	orderrepo "onlineshop/internal/repository/order"
	ordersvc "onlineshop/internal/service/order"

	"github.com/gin-gonic/gin"
)

type stubOrderRepo struct {
	order       *domain.Order
	err         error
	updateInput orderrepo.UpdateInput
}

func (s *stubOrderRepo) Create(_ context.Context, _ int64, _ []orderrepo.ItemInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderRepo) List(_ context.Context, _, _ int) ([]domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.order == nil {
		return []domain.Order{}, nil
	}
	return []domain.Order{*s.order}, nil
}

func (s *stubOrderRepo) Update(_ context.Context, _ int64, in orderrepo.UpdateInput) (*domain.Order, error) {
	s.updateInput = in
	return s.order, s.err
}

func (s *stubOrderRepo) Delete(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

type stubCustomerGetter struct {
	existing map[int64]bool
}

func (s *stubCustomerGetter) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if !s.existing[id] {
		return nil, domain.ErrNotFound
	}
	return &domain.Customer{ID: id}, nil
}

type stubItemGetter struct {
	existing map[int64]bool
}

func (s *stubItemGetter) GetByID(_ context.Context, id int64) (*domain.ShopItem, error) {
	if !s.existing[id] {
		return nil, domain.ErrNotFound
	}
	return &domain.ShopItem{ID: id}, nil
}

func orderRouter(repo *stubOrderRepo, customers *stubCustomerGetter, items *stubItemGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.New(os.Stdout, "[test] ", 0)
	return buildRouter(logger, nil, Deps{
		OrderSvc: ordersvc.New(repo, customers, items),
	})
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body["detail"]
}

func TestCreateOrder_MissingCustomer(t *testing.T) {
	router := orderRouter(&stubOrderRepo{}, &stubCustomerGetter{}, &stubItemGetter{})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customer_id": 999, "items": []}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != "Customer not found" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestCreateOrder_MissingShopItem(t *testing.T) {
	router := orderRouter(
		&stubOrderRepo{},
		&stubCustomerGetter{existing: map[int64]bool{1: true}},
		&stubItemGetter{},
	)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customer_id": 1, "items": [{"shop_item_id": 42, "quantity": 1}]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != "Shop item with id 42 not found" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestCreateOrder_Success(t *testing.T) {
	order := &domain.Order{
		ID:         7,
		CustomerID: 1,
		Customer:   domain.Customer{ID: 1, Name: "John", Surname: "Doe", Email: "john@x.com"},
		Items: []domain.OrderItem{
			{ID: 11, ShopItemID: 3, Quantity: 2, ShopItem: domain.ShopItem{ID: 3, Title: "Phone", Price: 599.99, Categories: []domain.Category{}}},
		},
	}
	router := orderRouter(
		&stubOrderRepo{order: order},
		&stubCustomerGetter{existing: map[int64]bool{1: true}},
		&stubItemGetter{existing: map[int64]bool{3: true}},
	)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"customer_id": 1, "items": [{"shop_item_id": 3, "quantity": 2}]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != 7 || got.CustomerID != 1 || got.Customer.Email != "john@x.com" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 || got.Items[0].ShopItem.Title != "Phone" {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	router := orderRouter(&stubOrderRepo{err: domain.ErrNotFound}, &stubCustomerGetter{}, &stubItemGetter{})

	req := httptest.NewRequest(http.MethodGet, "/orders/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != "Order not found" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestGetOrder_InvalidID(t *testing.T) {
	router := orderRouter(&stubOrderRepo{}, &stubCustomerGetter{}, &stubItemGetter{})

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUpdateOrder_CustomerOnlyKeepsItems(t *testing.T) {
	repo := &stubOrderRepo{order: &domain.Order{ID: 5, CustomerID: 2}}
	router := orderRouter(repo, &stubCustomerGetter{existing: map[int64]bool{2: true}}, &stubItemGetter{})

	req := httptest.NewRequest(http.MethodPut, "/orders/5", strings.NewReader(`{"customer_id": 2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if repo.updateInput.CustomerID == nil || *repo.updateInput.CustomerID != 2 {
		t.Fatalf("expected customer patch, got %+v", repo.updateInput)
	}
	if repo.updateInput.Items != nil {
		t.Fatalf("items key absent from request must not touch the item set")
	}
}

func TestListOrders(t *testing.T) {
	order := &domain.Order{ID: 1, CustomerID: 1, Items: []domain.OrderItem{}}
	router := orderRouter(&stubOrderRepo{order: order}, &stubCustomerGetter{}, &stubItemGetter{})

	req := httptest.NewRequest(http.MethodGet, "/orders?skip=0&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var got []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected orders: %+v", got)
	}
}

func TestDeleteOrder_ReturnsLastRepresentation(t *testing.T) {
	order := &domain.Order{
		ID:         5,
		CustomerID: 1,
		Customer:   domain.Customer{ID: 1, Name: "John"},
		Items:      []domain.OrderItem{{ID: 2, ShopItemID: 3, Quantity: 1}},
	}
	router := orderRouter(&stubOrderRepo{order: order}, &stubCustomerGetter{}, &stubItemGetter{})

	req := httptest.NewRequest(http.MethodDelete, "/orders/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var got domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != 5 || len(got.Items) != 1 || got.Items[0].ShopItemID != 3 {
		t.Fatalf("expected full prior representation, got %+v", got)
	}
}
