package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=100"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest carries a partial payload: only non-nil fields are
// applied, so "field omitted" and "field set to empty" stay distinguishable.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
