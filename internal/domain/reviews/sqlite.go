package reviews

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"feedbackdesk/internal/params"
	"feedbackdesk/internal/sentiment"

	"github.com/google/uuid"
)

// sqlite has no native timestamp; fixed-width UTC text keeps range
// comparisons lexicographic.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, db *sql.DB) (*SQLiteRepository, error) {
	query := `
        CREATE TABLE IF NOT EXISTS reviews (
            id        TEXT PRIMARY KEY,
            date      TEXT NOT NULL,
            review    TEXT NOT NULL,
            sentiment TEXT NOT NULL
        )
    `
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("create reviews table: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_reviews_date ON reviews(date)`); err != nil {
		return nil, fmt.Errorf("create reviews index: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Append(ctx context.Context, rec Record) error {
	query := `INSERT INTO reviews (id, date, review, sentiment) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(),
		rec.Date.UTC().Format(sqliteTimeLayout),
		rec.Review,
		string(rec.Sentiment),
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Between(ctx context.Context, start, end time.Time) ([]Record, error) {
	query := `
        SELECT date, review, sentiment
        FROM reviews
        WHERE date >= ? AND date <= ?
        ORDER BY rowid
    `
	rows, err := r.db.QueryContext(ctx, query,
		start.UTC().Format(sqliteTimeLayout),
		end.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()
	return scanSQLiteRows(rows)
}

func (r *SQLiteRepository) List(ctx context.Context, p params.Pagination) ([]Record, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `
        SELECT date, review, sentiment
        FROM reviews
        ORDER BY rowid DESC
        LIMIT ? OFFSET ?
    `
	rows, err := r.db.QueryContext(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	recs, err := scanSQLiteRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'reviews'`,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanSQLiteRows(rows *sql.Rows) ([]Record, error) {
	recs := []Record{}
	for rows.Next() {
		var date, review, sent string
		if err := rows.Scan(&date, &review, &sent); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		t, err := time.Parse(sqliteTimeLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse review date %q: %w", date, err)
		}
		s, err := sentiment.Parse(sent)
		if err != nil {
			return nil, err
		}
		recs = append(recs, Record{Date: t.Local(), Review: review, Sentiment: s})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
