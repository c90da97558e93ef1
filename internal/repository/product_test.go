package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szoz/northwind-api/internal/repository"
	"github.com/szoz/northwind-api/internal/testutil"
)

func TestProductListNames(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewProductRepository(db)

	names, err := repo.ListNames(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Chai", "Chang", "Ikura"}, names)
}

func TestProductListNamesDropsInvalidUTF8(t *testing.T) {
	db := testutil.OpenFixture(t)
	_, err := db.Exec(`INSERT INTO Products (ProductID, ProductName) VALUES (99, ?)`, "Caf\xe9")
	require.NoError(t, err)

	repo := repository.NewProductRepository(db)
	names, err := repo.ListNames(context.Background())
	require.NoError(t, err)

	assert.Contains(t, names, "Caf")
}

func TestProductGetByID(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewProductRepository(db)

	product, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Chai", product.Name)

	_, err = repo.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductListExtended(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewProductRepository(db)

	products, err := repo.ListExtended(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	chai := products[0]
	assert.Equal(t, "Chai", chai.Name)
	require.NotNil(t, chai.Category)
	assert.Equal(t, "Beverages", *chai.Category)
	require.NotNil(t, chai.Supplier)
	assert.Equal(t, "Exotic Liquids", *chai.Supplier)

	// Ikura has no category and an unmatched supplier foreign key.
	ikura := products[2]
	assert.Equal(t, "Ikura", ikura.Name)
	assert.Nil(t, ikura.Category)
	assert.Nil(t, ikura.Supplier)
}

func TestProductOrders(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewProductRepository(db)

	lines, err := repo.Orders(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	assert.Equal(t, 10273, line.OrderID)
	assert.Equal(t, "QUICK-Stop", line.Customer)
	assert.Equal(t, 24, line.Quantity)
	assert.InDelta(t, 23.56, line.UnitPrice, 1e-9)
	assert.Zero(t, line.Discount)
}

func TestProductOrdersNotFound(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewProductRepository(db)

	_, err := repo.Orders(context.Background(), 999999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
