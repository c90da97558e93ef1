package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/repository"
	"github.com/szoz/northwind-api/internal/testutil"
)

func TestCategoryList(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewCategoryRepository(db)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entity.Category{
		{ID: 1, Name: "Beverages"},
		{ID: 2, Name: "Condiments"},
	}, categories)
}

func TestCategoryNextID(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewCategoryRepository(db)
	ctx := context.Background()

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	// An empty table starts over at 1.
	_, err = db.Exec(`DELETE FROM Categories`)
	require.NoError(t, err)
	id, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestCategoryInsertUpdateDelete(t *testing.T) {
	db := testutil.OpenFixture(t)
	repo := repository.NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, 3, "Confections"))

	category, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Confections", category.Name)

	require.NoError(t, repo.UpdateName(ctx, 3, "Seafood"))
	category, err = repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Seafood", category.Name)

	deleted, err := repo.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting an absent row is a zero count at this layer; the service
	// turns it into a 404 before ever getting here.
	deleted, err = repo.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
