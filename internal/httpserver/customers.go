package httpserver

import (
	"log"
	"net/http"

	customersvc "onlineshop/internal/service/customer"

	"github.com/gin-gonic/gin"
)

type customerHandlers struct {
	svc    *customersvc.Service
	logger *log.Logger
}

func (h *customerHandlers) create(c *gin.Context) {
	var in customersvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	cust, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *customerHandlers) list(c *gin.Context) {
	skip, limit := pageParams(c)
	customers, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeDomainError(c, h.logger, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *customerHandlers) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cust, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *customerHandlers) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in customersvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	cust, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *customerHandlers) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cust, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, cust)
}
