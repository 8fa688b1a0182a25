package storage

import (
	"context"
	"fmt"

	"feedbackdesk/internal/db"
	"feedbackdesk/internal/domain/reviews"

	"go.uber.org/zap"
)

type Config struct {
	Driver      string
	CSVPath     string
	SQLitePath  string
	PostgresDSN string
	MaxConns    int32
	MaxIdleTime string
}

// Container holds the review store for the configured driver and whatever
// connections it owns.
type Container struct {
	Reviews reviews.Store
	closers []func()
}

func NewContainer(ctx context.Context, cfg Config, logger *zap.SugaredLogger) (*Container, error) {
	if err := reviews.ValidateDriver(cfg.Driver); err != nil {
		return nil, err
	}

	c := &Container{}

	switch cfg.Driver {
	case reviews.DriverCSV:
		s, err := reviews.NewCSVStore(cfg.CSVPath, logger)
		if err != nil {
			return nil, err
		}
		c.Reviews = s

	case reviews.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		c.closers = append(c.closers, func() { _ = conn.Close() })

		repo, err := reviews.NewSQLiteRepository(ctx, conn)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Reviews = repo

	case reviews.DriverPostgres:
		pool, err := db.New(cfg.PostgresDSN, cfg.MaxConns, cfg.MaxIdleTime)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		c.closers = append(c.closers, pool.Close)

		repo, err := reviews.NewPostgresRepository(ctx, pool)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Reviews = repo
	}

	return c, nil
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
