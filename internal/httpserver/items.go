package httpserver

import (
	"log"
	"net/http"

	shopitemsvc "onlineshop/internal/service/shopitem"

	"github.com/gin-gonic/gin"
)

type itemHandlers struct {
	svc    *shopitemsvc.Service
	logger *log.Logger
}

func (h *itemHandlers) create(c *gin.Context) {
	var in shopitemsvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *itemHandlers) list(c *gin.Context) {
	skip, limit := pageParams(c)
	items, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeDomainError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *itemHandlers) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *itemHandlers) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in shopitemsvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *itemHandlers) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}
