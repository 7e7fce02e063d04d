package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MelEUsher/Recipe-Manager/internal/model"
)

// CategoryRepository defines CRUD operations for Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context, skip, limit int) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// List returns categories ordered by name.
func (r *categoryRepository) List(ctx context.Context, skip, limit int) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Order("name asc").Offset(skip).Limit(limit).Find(&list).Error
	return list, err
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByName matches exactly, the same way the unique index on name does.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the row. Recipes pointing at it are detached by the FK's
// ON DELETE SET NULL, not by application code.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error
}
