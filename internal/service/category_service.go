package service

import (
	"context"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/repository"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories ordered by id.
func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing categories")
		return nil, err
	}
	return categories, nil
}

// Create inserts a category under a freshly assigned id and returns the row
// as committed. Id assignment is MAX+1 with no lock: safe only under a
// single writer, which is the documented deployment model.
func (s *CategoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	id, err := s.categoryRepo.NextID(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error assigning category id")
		return nil, err
	}

	if err := s.categoryRepo.Insert(ctx, id, name); err != nil {
		logger.Error().Err(err).Msgf("Error inserting category %d", id)
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error re-reading category %d after insert", id)
		return nil, err
	}

	return category, nil
}

// Update overwrites the category name. The existence check and the update
// are separate statements; no transaction spans them.
func (s *CategoryService) Update(ctx context.Context, id int, name string) (*entity.Category, error) {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateName(ctx, id, name); err != nil {
		logger.Error().Err(err).Msgf("Error updating category %d", id)
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error re-reading category %d after update", id)
		return nil, err
	}

	return category, nil
}

// Delete removes the category and reports the number of rows removed.
// A missing id is ErrNotFound, not a zero count.
func (s *CategoryService) Delete(ctx context.Context, id int) (int, error) {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return 0, err
	}

	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting category %d", id)
		return 0, err
	}

	return deleted, nil
}
