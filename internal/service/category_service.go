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

// CategoryService defines business operations for recipe categories.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id uint) (dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// mapCategory converts a model to a DTO response.
func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	// Fast-path duplicate check; the unique index remains the real guard.
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoryResponse{}, err
	}
	if existing != nil {
		return dto.CategoryResponse{}, ErrDuplicateName
	}

	c := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, ErrDuplicateName
		}
		return dto.CategoryResponse{}, fmt.Errorf("create category: %w", err)
	}
	return mapCategory(*c), nil
}

func (s *categoryService) List(ctx context.Context, skip, limit int) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) Get(ctx context.Context, id uint) (dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrNotFound
		}
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, ErrNotFound
		}
		return dto.CategoryResponse{}, err
	}

	if req.Name != nil {
		// Check uniqueness if the name is changing
		if *req.Name != c.Name {
			existing, err := s.repo.FindByName(ctx, *req.Name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.CategoryResponse{}, err
			}
			if existing != nil && existing.ID != id {
				return dto.CategoryResponse{}, ErrDuplicateName
			}
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, ErrDuplicateName
		}
		return dto.CategoryResponse{}, err
	}
	return mapCategory(*c), nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
