package service

import (
	"context"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/repository"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// List returns all customers with their projected full addresses.
func (s *CustomerService) List(ctx context.Context) ([]entity.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing customers")
		return nil, err
	}
	return customers, nil
}
