package reviews

import (
	"context"
	"fmt"
	"time"

	"feedbackdesk/internal/params"
	"feedbackdesk/internal/sentiment"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, db *pgxpool.Pool) (*PostgresRepository, error) {
	query := `
        CREATE TABLE IF NOT EXISTS reviews (
            seq        BIGSERIAL,
            id         UUID PRIMARY KEY,
            date       TIMESTAMPTZ NOT NULL,
            review     TEXT NOT NULL,
            sentiment  TEXT NOT NULL
        )
    `
	if _, err := db.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("create reviews table: %w", err)
	}
	if _, err := db.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_reviews_date ON reviews(date)`); err != nil {
		return nil, fmt.Errorf("create reviews index: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Append(ctx context.Context, rec Record) error {
	query := `
        INSERT INTO reviews (id, date, review, sentiment)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, uuid.New(), rec.Date, rec.Review, string(rec.Sentiment)); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Between(ctx context.Context, start, end time.Time) ([]Record, error) {
	query := `
        SELECT date, review, sentiment
        FROM reviews
        WHERE date >= $1 AND date <= $2
        ORDER BY seq
    `
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()
	return scanPgRows(rows)
}

func (r *PostgresRepository) List(ctx context.Context, p params.Pagination) ([]Record, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `
        SELECT date, review, sentiment
        FROM reviews
        ORDER BY seq DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	recs, err := scanPgRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func (r *PostgresRepository) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT to_regclass('reviews') IS NOT NULL`).Scan(&exists)
	return exists, err
}

func scanPgRows(rows pgx.Rows) ([]Record, error) {
	recs := []Record{}
	for rows.Next() {
		var (
			rec  Record
			sent string
		)
		if err := rows.Scan(&rec.Date, &rec.Review, &sent); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		s, err := sentiment.Parse(sent)
		if err != nil {
			return nil, err
		}
		rec.Sentiment = s
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
