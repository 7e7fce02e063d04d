package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/MelEUsher/Recipe-Manager/internal/dto"
	"github.com/MelEUsher/Recipe-Manager/internal/model"
)

// RecipeRepository defines persistence operations for Recipe and its owned
// ingredients. Write methods take the transaction handle so the service layer
// controls the commit boundary.
type RecipeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, rec *model.Recipe) error
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	List(ctx context.Context, filter dto.RecipeFilter) ([]model.Recipe, error)
	Update(ctx context.Context, tx *gorm.DB, rec *model.Recipe) error
	ReplaceIngredients(ctx context.Context, tx *gorm.DB, recipeID uint, ingredients []model.Ingredient) error
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type recipeRepository struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) DB() *gorm.DB { return r.db }

// Create inserts the recipe together with any ingredients attached to it.
// GORM cascades the association inserts inside the caller's transaction.
func (r *recipeRepository) Create(ctx context.Context, tx *gorm.DB, rec *model.Recipe) error {
	return tx.WithContext(ctx).Create(rec).Error
}

// FindByID loads the recipe with its category and ingredients eagerly.
func (r *recipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Ingredients").
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns recipes newest first, with all supplied filters applied.
func (r *recipeRepository) List(ctx context.Context, filter dto.RecipeFilter) ([]model.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&model.Recipe{}).Preload("Category")

	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		q = q.Where("lower(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var list []model.Recipe
	err := q.Order("created_at desc").Offset(filter.Skip).Limit(filter.Limit).Find(&list).Error
	return list, err
}

// Update persists the recipe's scalar columns. Associations are managed
// explicitly via ReplaceIngredients, never saved implicitly here.
func (r *recipeRepository) Update(ctx context.Context, tx *gorm.DB, rec *model.Recipe) error {
	return tx.WithContext(ctx).Omit("Ingredients", "Category").Save(rec).Error
}

// ReplaceIngredients swaps the recipe's entire ingredient set: delete all,
// insert new. Runs inside the caller's transaction so readers never observe
// the intermediate empty state.
func (r *recipeRepository) ReplaceIngredients(ctx context.Context, tx *gorm.DB, recipeID uint, ingredients []model.Ingredient) error {
	if err := tx.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&model.Ingredient{}).Error; err != nil {
		return err
	}
	for i := range ingredients {
		ingredients[i].ID = 0
		ingredients[i].RecipeID = recipeID
	}
	if len(ingredients) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&ingredients).Error
}

// Delete removes the recipe row; the schema's ON DELETE CASCADE takes its
// ingredients with it.
func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}
