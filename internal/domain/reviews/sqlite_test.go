package reviews

import (
	"context"
	"testing"

	"feedbackdesk/internal/db"
	"feedbackdesk/internal/params"
	"feedbackdesk/internal/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo, err := NewSQLiteRepository(context.Background(), conn)
	require.NoError(t, err)
	return repo
}

func TestSQLiteAppendBetweenList(t *testing.T) {
	ctx := context.Background()
	repo := newSQLite(t)

	ok, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Append(ctx, Record{Date: day(1, 9), Review: "first", Sentiment: sentiment.Positive}))
	require.NoError(t, repo.Append(ctx, Record{Date: day(4, 9), Review: "second", Sentiment: sentiment.Negative}))
	require.NoError(t, repo.Append(ctx, Record{Date: day(8, 9), Review: "third", Sentiment: sentiment.Neutral}))

	recs, err := repo.Between(ctx, day(1, 9), day(4, 9))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "first", recs[0].Review)
	assert.Equal(t, sentiment.Negative, recs[1].Sentiment)
	assert.True(t, recs[0].Date.Equal(day(1, 9)))

	list, total, err := repo.List(ctx, params.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, "third", list[0].Review)
}

func TestValidateDriver(t *testing.T) {
	assert.NoError(t, ValidateDriver(DriverCSV))
	assert.NoError(t, ValidateDriver(DriverSQLite))
	assert.NoError(t, ValidateDriver(DriverPostgres))
	assert.ErrorIs(t, ValidateDriver("mongo"), ErrUnknownDriver)
}
