package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRepo(db)
	ctx := context.Background()

	biz := testutil.NewTestBusiness("Corner Bistro", testutil.WithPreferredMode(domain.ModeFull))
	require.NoError(t, repo.Create(ctx, biz))

	fetched, err := repo.GetByID(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, biz.ID, fetched.ID)
	assert.Equal(t, "Corner Bistro", fetched.Name)
	assert.Equal(t, "gastro", fetched.Category)
	assert.Equal(t, domain.ModeFull, fetched.PreferredMode)
	assert.Equal(t, 0, fetched.PrecisionScore)
}

func TestBusinessRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBusinessRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestBusiness("One")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestBusiness("Two", testutil.WithCategory("gym"))))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBusinessRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRepo(db)
	ctx := context.Background()

	biz := testutil.NewTestBusiness("OrigName")
	require.NoError(t, repo.Create(ctx, biz))

	biz.Name = "NewName"
	biz.Category = "pet_shop"
	biz.PreferredMode = domain.ModeFull
	require.NoError(t, repo.Update(ctx, biz))

	fetched, err := repo.GetByID(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, "NewName", fetched.Name)
	assert.Equal(t, "pet_shop", fetched.Category)
	assert.Equal(t, domain.ModeFull, fetched.PreferredMode)
}

func TestBusinessRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRepo(db)

	ghost := testutil.NewTestBusiness("Ghost")
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBusinessRepo_UpdateScore(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRepo(db)
	ctx := context.Background()

	biz := testutil.NewTestBusiness("Scored")
	require.NoError(t, repo.Create(ctx, biz))

	require.NoError(t, repo.UpdateScore(ctx, biz.ID, 42))
	fetched, err := repo.GetByID(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, fetched.PrecisionScore)

	// Out-of-range scores violate the schema check.
	err = repo.UpdateScore(ctx, biz.ID, 150)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestBusinessRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteBusinessRepo(db)
	ctx := context.Background()

	biz := testutil.NewTestBusiness("Doomed")
	require.NoError(t, repo.Create(ctx, biz))
	require.NoError(t, repo.Delete(ctx, biz.ID))

	_, err := repo.GetByID(ctx, biz.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, biz.ID), ErrNotFound)
}
