package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MelEUsher/Recipe-Manager/internal/apierror"
	"github.com/MelEUsher/Recipe-Manager/internal/dto"
	"github.com/MelEUsher/Recipe-Manager/internal/service"
)

type RecipesHandler struct {
	svc             service.RecipeService
	defaultPageSize int
}

func NewRecipesHandler(svc service.RecipeService, defaultPageSize int) *RecipesHandler {
	return &RecipesHandler{svc: svc, defaultPageSize: defaultPageSize}
}

// List GET /api/recipes?category_id=&search=&skip=&limit=
func (h *RecipesHandler) List(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", h.defaultPageSize)
	if !ok {
		return
	}
	filter := dto.RecipeFilter{
		Search: c.Query("search"),
		Skip:   skip,
		Limit:  limit,
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid category_id"))
			return
		}
		cid := uint(id)
		filter.CategoryID = &cid
	}

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /api/recipes/:id
func (h *RecipesHandler) Get(c *gin.Context) {
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

// Create POST /api/recipes
func (h *RecipesHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
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

// Update PUT /api/recipes/:id
func (h *RecipesHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateRecipeRequest
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

// Delete DELETE /api/recipes/:id
func (h *RecipesHandler) Delete(c *gin.Context) {
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
