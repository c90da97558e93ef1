package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szoz/northwind-api/internal/repository"
	"github.com/szoz/northwind-api/internal/service"
	"github.com/szoz/northwind-api/internal/testutil"
)

func newEmployeeService(t *testing.T) *service.EmployeeService {
	db := testutil.OpenFixture(t)
	return service.NewEmployeeService(repository.NewEmployeeRepository(db))
}

func TestEmployeeListDefaultOrder(t *testing.T) {
	svc := newEmployeeService(t)

	employees, err := svc.List(context.Background(), "", service.NoLimit, 0)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, 1, employees[0].ID)
	assert.Equal(t, "Davolio", employees[0].LastName)
}

func TestEmployeeListOrderByCity(t *testing.T) {
	svc := newEmployeeService(t)

	employees, err := svc.List(context.Background(), "city", service.NoLimit, 0)
	require.NoError(t, err)

	var cities []string
	for _, employee := range employees {
		cities = append(cities, employee.City)
	}
	assert.Equal(t, []string{"Kirkland", "Seattle", "Tacoma"}, cities)
}

func TestEmployeeListInvalidOrder(t *testing.T) {
	svc := newEmployeeService(t)

	_, err := svc.List(context.Background(), "invalid", service.NoLimit, 0)
	require.ErrorIs(t, err, service.ErrInvalidOrder)
	assert.Contains(t, err.Error(), "city, first_name, last_name")
}
