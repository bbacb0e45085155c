package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrHasOrders indicates a customer cannot be deleted while orders reference it.
	ErrHasOrders = errors.New("customer has existing orders")
	// ErrInUse indicates a shop item cannot be deleted while order items reference it.
	ErrInUse = errors.New("referenced by existing orders")
)

// Reference entity names used in ReferenceError.
const (
	EntityCustomer = "customer"
	EntityShopItem = "shop item"
	EntityCategory = "category"
)

// ReferenceError reports a cross-entity reference supplied by a caller that does
// not resolve to an existing row.
type ReferenceError struct {
	Entity string
	ID     int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}
