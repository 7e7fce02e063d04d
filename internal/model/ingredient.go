package model

import (
	"github.com/shopspring/decimal"
)

// Ingredient is a line item of a recipe: a name with an optional numeric
// amount and an optional unit ("2.5" + "cups"). It has no lifecycle of its
// own outside its parent recipe.
type Ingredient struct {
	ID       uint             `gorm:"primaryKey"`
	RecipeID uint             `gorm:"index;not null"`
	Name     string           `gorm:"size:200;not null"`
	Amount   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Unit     *string          `gorm:"size:50"`
}

func (Ingredient) TableName() string { return "ingredients" }
