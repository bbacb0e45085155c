package httpserver

import (
	"log"
	"net/http"

	ordersvc "onlineshop/internal/service/order"

	"github.com/gin-gonic/gin"
)

type orderHandlers struct {
	svc    *ordersvc.Service
	logger *log.Logger
}

func (h *orderHandlers) create(c *gin.Context) {
	var in ordersvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *orderHandlers) list(c *gin.Context) {
	skip, limit := pageParams(c)
	orders, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeDomainError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *orderHandlers) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	o, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *orderHandlers) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in ordersvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *orderHandlers) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	o, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}
