package httpserver

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"onlineshop/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// idParam parses the :id path segment; on failure it writes a 400 and reports
// false.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// pageParams reads skip/limit query values with the API defaults.
func pageParams(c *gin.Context) (int, int) {
	skip := defaultSkip
	if v, err := strconv.Atoi(c.DefaultQuery("skip", "0")); err == nil && v >= 0 {
		skip = v
	}
	limit := defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil && v >= 0 {
		limit = v
	}
	return skip, limit
}

// writeDomainError maps a domain error to a status code and detail message.
// notFoundMsg is used when the addressed resource itself is missing; reference
// failures carry their own entity-specific message.
func writeDomainError(c *gin.Context, logger *log.Logger, err error, notFoundMsg string) {
	var refErr *domain.ReferenceError
	switch {
	case errors.As(err, &refErr):
		detail(c, http.StatusBadRequest, referenceDetail(refErr))
	case errors.Is(err, domain.ErrNotFound):
		detail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrAlreadyExists):
		detail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, domain.ErrHasOrders):
		detail(c, http.StatusConflict, "Customer has existing orders")
	case errors.Is(err, domain.ErrInUse):
		detail(c, http.StatusConflict, "Shop item is referenced by existing orders")
	default:
		logger.Printf("request failed: %v", err)
		detail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func referenceDetail(e *domain.ReferenceError) string {
	switch e.Entity {
	case domain.EntityCustomer:
		return "Customer not found"
	case domain.EntityCategory:
		return "One or more categories not found"
	default:
		return fmt.Sprintf("Shop item with id %d not found", e.ID)
	}
}
