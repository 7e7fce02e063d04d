package model

import (
	"time"
)

// Category groups recipes. Recipes reference it but are not owned by it:
// deleting a category leaves its recipes in place with the reference cleared.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Recipes []Recipe `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Category) TableName() string { return "categories" }
