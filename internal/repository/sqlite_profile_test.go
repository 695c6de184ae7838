package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) (context.Context, *SQLiteProfileRepo, *domain.Business) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	biz := testutil.NewTestBusiness("Profile Test")
	require.NoError(t, NewSQLiteBusinessRepo(db).Create(ctx, biz))
	return ctx, NewSQLiteProfileRepo(db), biz
}

func TestProfileRepo_EmptyProfile(t *testing.T) {
	ctx, repo, biz := newProfileFixture(t)

	profile, err := repo.Get(ctx, biz.ID)
	require.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Empty(t, profile)
}

func TestProfileRepo_UpsertAndGet(t *testing.T) {
	ctx, repo, biz := newProfileFixture(t)

	require.NoError(t, repo.UpsertEntry(ctx, biz.ID, "business.channels", []string{"dine_in", "takeaway"}))
	require.NoError(t, repo.UpsertEntry(ctx, biz.ID, "ops.dine_in.capacity", 40))
	require.NoError(t, repo.UpsertEntry(ctx, biz.ID, "marketing.google_profile", true))

	profile, err := repo.Get(ctx, biz.ID)
	require.NoError(t, err)
	assert.Len(t, profile, 3)

	// JSON round-trip shapes: slices come back []any, numbers float64.
	assert.Equal(t, []string{"dine_in", "takeaway"}, profile.Strings("business.channels"))
	assert.Equal(t, float64(40), profile["ops.dine_in.capacity"])
	assert.Equal(t, true, profile["marketing.google_profile"])
}

func TestProfileRepo_UpsertOverwritesWholeValue(t *testing.T) {
	ctx, repo, biz := newProfileFixture(t)

	require.NoError(t, repo.UpsertEntry(ctx, biz.ID, "business.channels", []string{"dine_in"}))
	require.NoError(t, repo.UpsertEntry(ctx, biz.ID, "business.channels", []string{"delivery_apps"}))

	profile, err := repo.Get(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"delivery_apps"}, profile.Strings("business.channels"))
}

func TestProfileRepo_UpsertEmptyPath(t *testing.T) {
	ctx, repo, biz := newProfileFixture(t)

	err := repo.UpsertEntry(ctx, biz.ID, "", "value")
	assert.ErrorIs(t, err, domain.ErrEmptyStorePath)
}

func TestProfileRepo_DeleteEntry(t *testing.T) {
	ctx, repo, biz := newProfileFixture(t)

	require.NoError(t, repo.UpsertEntry(ctx, biz.ID, "finance.sales_tracking", "pos_system"))
	require.NoError(t, repo.DeleteEntry(ctx, biz.ID, "finance.sales_tracking"))

	profile, err := repo.Get(ctx, biz.ID)
	require.NoError(t, err)
	assert.Empty(t, profile)

	// Deleting a missing entry is a no-op.
	assert.NoError(t, repo.DeleteEntry(ctx, biz.ID, "finance.sales_tracking"))
}
