package model

import (
	"time"
)

// Recipe is the aggregate root of the domain. Its ingredients are exclusively
// owned: they are created with it, replaced through it, and removed by the
// schema's ON DELETE CASCADE when it is deleted.
type Recipe struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:200;index;not null"`
	Description  *string
	Instructions string `gorm:"type:text;not null"`
	PrepTime     *int   // minutes
	CookTime     *int   // minutes
	Servings     *int
	CategoryID   *uint `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category    *Category    `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Recipe) TableName() string { return "recipes" }
