package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/repository"
)

// ErrInvalidOrder reports an order key outside the accepted set.
var ErrInvalidOrder = errors.New("invalid order key")

// NoLimit requests all rows regardless of offset.
const NoLimit = -1

type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
}

// NewEmployeeService creates a new instance of EmployeeService.
func NewEmployeeService(employeeRepo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// List returns employees sorted by the given order key. An empty key sorts
// by employee id; anything outside the whitelist is ErrInvalidOrder with the
// permitted values spelled out.
func (s *EmployeeService) List(ctx context.Context, orderKey string, limit, offset int) ([]entity.Employee, error) {
	column, ok := repository.ResolveEmployeeOrder(orderKey)
	if !ok {
		return nil, fmt.Errorf("%w: order must be one of: %s",
			ErrInvalidOrder, strings.Join(repository.EmployeeOrderKeys(), ", "))
	}

	employees, err := s.employeeRepo.List(ctx, column, limit, offset)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing employees")
		return nil, err
	}

	return employees, nil
}
