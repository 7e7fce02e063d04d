package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type IngredientInput struct {
	Name   string           `json:"name"   validate:"required,min=1,max=200"`
	Amount *decimal.Decimal `json:"amount" validate:"omitempty,min=0"`
	Unit   *string          `json:"unit"   validate:"omitempty,max=50"`
}

type CreateRecipeRequest struct {
	Title        string            `json:"title"        validate:"required,min=1,max=200"`
	Description  *string           `json:"description"`
	Instructions string            `json:"instructions" validate:"required,min=1"`
	PrepTime     *int              `json:"prep_time"    validate:"omitempty,min=0"`
	CookTime     *int              `json:"cook_time"    validate:"omitempty,min=0"`
	Servings     *int              `json:"servings"     validate:"omitempty,min=1"`
	CategoryID   *uint             `json:"category_id"`
	Ingredients  []IngredientInput `json:"ingredients"  validate:"dive"`
}

// UpdateRecipeRequest is a partial payload. A nil Ingredients slice leaves the
// existing set untouched; a non-nil slice (even empty) replaces it entirely.
type UpdateRecipeRequest struct {
	Title        *string            `json:"title"        validate:"omitempty,min=1,max=200"`
	Description  *string            `json:"description"`
	Instructions *string            `json:"instructions" validate:"omitempty,min=1"`
	PrepTime     *int               `json:"prep_time"    validate:"omitempty,min=0"`
	CookTime     *int               `json:"cook_time"    validate:"omitempty,min=0"`
	Servings     *int               `json:"servings"     validate:"omitempty,min=1"`
	CategoryID   *uint              `json:"category_id"`
	Ingredients  *[]IngredientInput `json:"ingredients"  validate:"omitempty,dive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type IngredientResponse struct {
	ID       uint             `json:"id"`
	RecipeID uint             `json:"recipe_id"`
	Name     string           `json:"name"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Unit     *string          `json:"unit,omitempty"`
}

type RecipeResponse struct {
	ID           uint                 `json:"id"`
	Title        string               `json:"title"`
	Description  *string              `json:"description,omitempty"`
	Instructions string               `json:"instructions"`
	PrepTime     *int                 `json:"prep_time,omitempty"`
	CookTime     *int                 `json:"cook_time,omitempty"`
	Servings     *int                 `json:"servings,omitempty"`
	CategoryID   *uint                `json:"category_id,omitempty"`
	Category     *CategoryResponse    `json:"category,omitempty"`
	Ingredients  []IngredientResponse `json:"ingredients"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// RecipeListItem is the compact shape returned by the list endpoint:
// no instructions, no ingredients.
type RecipeListItem struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	PrepTime    *int              `json:"prep_time,omitempty"`
	CookTime    *int              `json:"cook_time,omitempty"`
	Servings    *int              `json:"servings,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// RecipeFilter collects the query parameters of the list endpoint.
type RecipeFilter struct {
	CategoryID *uint
	Search     string
	Skip       int
	Limit      int
}
