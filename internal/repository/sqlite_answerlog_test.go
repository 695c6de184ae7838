package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerLogRepo_AppendAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	biz := testutil.NewTestBusiness("Log Test")
	require.NoError(t, NewSQLiteBusinessRepo(db).Create(ctx, biz))
	repo := NewSQLiteAnswerLogRepo(db)

	base := time.Now().UTC().Add(-time.Hour)
	first := testutil.NewTestAnswer(biz.ID, "G01_CHANNELS", "business.channels",
		[]string{"dine_in"}, testutil.WithAnswerCreatedAt(base))
	second := testutil.NewTestAnswer(biz.ID, "G30_SEATING_CAPACITY", "ops.dine_in.capacity",
		40, testutil.WithAnswerCreatedAt(base.Add(time.Minute)))
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	records, err := repo.ListByBusiness(ctx, biz.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "G01_CHANNELS", records[0].QuestionID)
	assert.Equal(t, []any{"dine_in"}, records[0].Value)
	assert.Equal(t, "G30_SEATING_CAPACITY", records[1].QuestionID)
	assert.Equal(t, float64(40), records[1].Value)
}

func TestAnswerLogRepo_RepeatedAnswersKeepHistory(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	biz := testutil.NewTestBusiness("History Test")
	require.NoError(t, NewSQLiteBusinessRepo(db).Create(ctx, biz))
	repo := NewSQLiteAnswerLogRepo(db)

	base := time.Now().UTC().Add(-time.Hour)
	for i, v := range []int{20, 30, 40} {
		rec := testutil.NewTestAnswer(biz.ID, "G20_STAFF_COUNT", "team.staff_count", v,
			testutil.WithAnswerCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Append(ctx, rec))
	}

	records, err := repo.ListByBusiness(ctx, biz.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, float64(20), records[0].Value)
	assert.Equal(t, float64(40), records[2].Value)
}

func TestAnswerLogRepo_EmptyLog(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAnswerLogRepo(db)

	records, err := repo.ListByBusiness(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, records)
}
