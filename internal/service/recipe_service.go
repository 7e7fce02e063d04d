package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MelEUsher/Recipe-Manager/internal/dto"
	"github.com/MelEUsher/Recipe-Manager/internal/model"
	"github.com/MelEUsher/Recipe-Manager/internal/repository"
)

// RecipeService defines business operations for recipes and their ingredients.
type RecipeService interface {
	List(ctx context.Context, filter dto.RecipeFilter) ([]dto.RecipeListItem, error)
	Get(ctx context.Context, id uint) (dto.RecipeResponse, error)
	Create(ctx context.Context, req dto.CreateRecipeRequest) (dto.RecipeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateRecipeRequest) (dto.RecipeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type recipeService struct {
	repo         repository.RecipeRepository
	categoryRepo repository.CategoryRepository
}

func NewRecipeService(repo repository.RecipeRepository, categoryRepo repository.CategoryRepository) RecipeService {
	return &recipeService{repo: repo, categoryRepo: categoryRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func mapIngredient(in model.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:       in.ID,
		RecipeID: in.RecipeID,
		Name:     in.Name,
		Amount:   in.Amount,
		Unit:     in.Unit,
	}
}

func mapRecipe(rec model.Recipe) dto.RecipeResponse {
	resp := dto.RecipeResponse{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		Instructions: rec.Instructions,
		PrepTime:     rec.PrepTime,
		CookTime:     rec.CookTime,
		Servings:     rec.Servings,
		CategoryID:   rec.CategoryID,
		Ingredients:  make([]dto.IngredientResponse, 0, len(rec.Ingredients)),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.Category != nil {
		c := mapCategory(*rec.Category)
		resp.Category = &c
	}
	for _, in := range rec.Ingredients {
		resp.Ingredients = append(resp.Ingredients, mapIngredient(in))
	}
	return resp
}

func mapRecipeListItem(rec model.Recipe) dto.RecipeListItem {
	item := dto.RecipeListItem{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		PrepTime:    rec.PrepTime,
		CookTime:    rec.CookTime,
		Servings:    rec.Servings,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Category != nil {
		c := mapCategory(*rec.Category)
		item.Category = &c
	}
	return item
}

func ingredientsFromInput(inputs []dto.IngredientInput) []model.Ingredient {
	out := make([]model.Ingredient, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, model.Ingredient{
			Name:   in.Name,
			Amount: in.Amount,
			Unit:   in.Unit,
		})
	}
	return out
}

// resolveCategory checks that a supplied category id points at a real row.
func (s *recipeService) resolveCategory(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindByID(ctx, *id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

func (s *recipeService) List(ctx context.Context, filter dto.RecipeFilter) ([]dto.RecipeListItem, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RecipeListItem, 0, len(list))
	for _, rec := range list {
		result = append(result, mapRecipeListItem(rec))
	}
	return result, nil
}

func (s *recipeService) Get(ctx context.Context, id uint) (dto.RecipeResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RecipeResponse{}, ErrNotFound
		}
		return dto.RecipeResponse{}, err
	}
	return mapRecipe(*rec), nil
}

// Create inserts the recipe and its initial ingredient set atomically:
// if any ingredient insert fails the recipe row is rolled back with it.
func (s *recipeService) Create(ctx context.Context, req dto.CreateRecipeRequest) (dto.RecipeResponse, error) {
	if err := s.resolveCategory(ctx, req.CategoryID); err != nil {
		return dto.RecipeResponse{}, err
	}

	rec := &model.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		CategoryID:   req.CategoryID,
		Ingredients:  ingredientsFromInput(req.Ingredients),
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, rec)
	})
	if err != nil {
		return dto.RecipeResponse{}, fmt.Errorf("create recipe: %w", err)
	}
	return s.Get(ctx, rec.ID)
}

// Update applies only the fields present in the partial payload. When the
// payload carries an ingredients list — even an empty one — the recipe's
// entire ingredient set is replaced inside the same transaction; when the
// list is absent the existing ingredients are left untouched.
func (s *recipeService) Update(ctx context.Context, id uint, req dto.UpdateRecipeRequest) (dto.RecipeResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RecipeResponse{}, ErrNotFound
		}
		return dto.RecipeResponse{}, err
	}

	if req.CategoryID != nil {
		if err := s.resolveCategory(ctx, req.CategoryID); err != nil {
			return dto.RecipeResponse{}, err
		}
		rec.CategoryID = req.CategoryID
	}
	if req.Title != nil {
		rec.Title = *req.Title
	}
	if req.Description != nil {
		rec.Description = req.Description
	}
	if req.Instructions != nil {
		rec.Instructions = *req.Instructions
	}
	if req.PrepTime != nil {
		rec.PrepTime = req.PrepTime
	}
	if req.CookTime != nil {
		rec.CookTime = req.CookTime
	}
	if req.Servings != nil {
		rec.Servings = req.Servings
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, rec); err != nil {
			return err
		}
		if req.Ingredients != nil {
			return s.repo.ReplaceIngredients(ctx, tx, rec.ID, ingredientsFromInput(*req.Ingredients))
		}
		return nil
	})
	if err != nil {
		return dto.RecipeResponse{}, fmt.Errorf("update recipe: %w", err)
	}
	return s.Get(ctx, rec.ID)
}

func (s *recipeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	// Dependent ingredient rows are removed by the schema cascade.
	return s.repo.Delete(ctx, id)
}
