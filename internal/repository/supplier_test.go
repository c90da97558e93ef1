package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szoz/northwind-api/internal/repository"
	"github.com/szoz/northwind-api/internal/testutil"
)

func TestSupplierList(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewSupplierRepository(db)

	suppliers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 1)

	supplier := suppliers[0]
	assert.Equal(t, 1, supplier.ID)
	assert.Equal(t, "Exotic Liquids", supplier.CompanyName)
	require.NotNil(t, supplier.ContactName)
	assert.Equal(t, "Charlotte Cooper", *supplier.ContactName)
	assert.Nil(t, supplier.Region)
	assert.Nil(t, supplier.Fax)
	assert.Nil(t, supplier.HomePage)
}

func TestSupplierGetByID(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewSupplierRepository(db)
	ctx := context.Background()

	supplier, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Exotic Liquids", supplier.CompanyName)

	_, err = repo.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
