package httpserver

import (
	"log"
	"net/http"

	categorysvc "onlineshop/internal/service/category"

	"github.com/gin-gonic/gin"
)

type categoryHandlers struct {
	svc    *categorysvc.Service
	logger *log.Logger
}

func (h *categoryHandlers) create(c *gin.Context) {
	var in categorysvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *categoryHandlers) list(c *gin.Context) {
	skip, limit := pageParams(c)
	categories, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeDomainError(c, h.logger, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *categoryHandlers) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *categoryHandlers) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var in categorysvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeDomainError(c, h.logger, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *categoryHandlers) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, h.logger, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, cat)
}
