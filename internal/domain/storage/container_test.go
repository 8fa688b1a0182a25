package storage

import (
	"context"
	"path/filepath"
	"testing"

	"feedbackdesk/internal/domain/reviews"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewContainerCSV(t *testing.T) {
	c, err := NewContainer(context.Background(), Config{
		Driver:  reviews.DriverCSV,
		CSVPath: filepath.Join(t.TempDir(), "reviews.csv"),
	}, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Reviews.(*reviews.CSVStore)
	assert.True(t, ok)
}

func TestNewContainerSQLite(t *testing.T) {
	c, err := NewContainer(context.Background(), Config{
		Driver:     reviews.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "reviews.db"),
	}, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Reviews.(*reviews.SQLiteRepository)
	assert.True(t, ok)
}

func TestNewContainerUnknownDriver(t *testing.T) {
	_, err := NewContainer(context.Background(), Config{Driver: "redis"}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, reviews.ErrUnknownDriver)
}
