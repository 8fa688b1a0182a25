package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedbackdesk/internal/params"
)

var ErrUnknownDriver = errors.New("unknown store driver")

type Store interface {
	Append(ctx context.Context, rec Record) error
	Between(ctx context.Context, start, end time.Time) ([]Record, error)
	List(ctx context.Context, p params.Pagination) ([]Record, int, error)
	// Exists reports whether the backing file or table is present at all.
	Exists(ctx context.Context) (bool, error)
}

const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func ValidateDriver(driver string) error {
	switch driver {
	case DriverCSV, DriverSQLite, DriverPostgres:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}

// page slices newest-first records for the requested page.
func page(newestFirst []Record, p params.Pagination) []Record {
	if p.Offset >= len(newestFirst) {
		return []Record{}
	}
	end := p.Offset + p.Limit
	if end > len(newestFirst) {
		end = len(newestFirst)
	}
	return newestFirst[p.Offset:end]
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
