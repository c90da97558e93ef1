package service

import (
	"context"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/repository"
)

type SupplierService struct {
	supplierRepo *repository.SupplierRepository
}

// NewSupplierService creates a new instance of SupplierService.
func NewSupplierService(supplierRepo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// List returns all suppliers ordered by id.
func (s *SupplierService) List(ctx context.Context) ([]entity.Supplier, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing suppliers")
		return nil, err
	}
	return suppliers, nil
}

// GetByID returns a single supplier.
func (s *SupplierService) GetByID(ctx context.Context, id int) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting supplier by ID %d", id)
		return nil, err
	}
	return supplier, nil
}
