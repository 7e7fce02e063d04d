package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MelEUsher/Recipe-Manager/internal/dto"
	"github.com/MelEUsher/Recipe-Manager/internal/service"
)

type CategoriesHandler struct {
	svc             service.CategoryService
	defaultPageSize int
}

func NewCategoriesHandler(svc service.CategoryService, defaultPageSize int) *CategoriesHandler {
	return &CategoriesHandler{svc: svc, defaultPageSize: defaultPageSize}
}

// List GET /api/categories
func (h *CategoriesHandler) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", h.defaultPageSize)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /api/categories/:id
func (h *CategoriesHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/categories
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/categories/:id
func (h *CategoriesHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /api/categories/:id
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
