package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusinessService(t *testing.T) (context.Context, BusinessService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return context.Background(), NewBusinessService(
		repository.NewSQLiteBusinessRepo(database),
		repository.NewSQLiteProfileRepo(database))
}

func TestBusinessService_Create_SetsDefaults(t *testing.T) {
	ctx, svc := newBusinessService(t)

	biz := &domain.Business{Name: "New Place", Category: "gastro"}
	require.NoError(t, svc.Create(ctx, biz))

	assert.NotEmpty(t, biz.ID)
	assert.Equal(t, domain.ModeQuick, biz.PreferredMode)
	assert.False(t, biz.CreatedAt.IsZero())

	fetched, err := svc.GetByID(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Place", fetched.Name)
}

func TestBusinessService_Create_RejectsNonRequestableMode(t *testing.T) {
	ctx, svc := newBusinessService(t)

	biz := &domain.Business{Name: "Bad Mode", Category: "gastro", PreferredMode: domain.ModeBoth}
	assert.Error(t, svc.Create(ctx, biz))
}

func TestBusinessService_Update(t *testing.T) {
	ctx, svc := newBusinessService(t)

	biz := &domain.Business{Name: "Before", Category: "gastro"}
	require.NoError(t, svc.Create(ctx, biz))

	biz.Name = "After"
	biz.PreferredMode = domain.ModeFull
	require.NoError(t, svc.Update(ctx, biz))

	fetched, err := svc.GetByID(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", fetched.Name)
	assert.Equal(t, domain.ModeFull, fetched.PreferredMode)
}

func TestBusinessService_Profile_UnknownBusiness(t *testing.T) {
	ctx, svc := newBusinessService(t)

	_, err := svc.Profile(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBusinessService_Delete(t *testing.T) {
	ctx, svc := newBusinessService(t)

	biz := &domain.Business{Name: "Gone", Category: "gastro"}
	require.NoError(t, svc.Create(ctx, biz))
	require.NoError(t, svc.Delete(ctx, biz.ID))

	_, err := svc.GetByID(ctx, biz.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
