package reviews

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"feedbackdesk/internal/params"
	"feedbackdesk/internal/sentiment"

	"go.uber.org/zap"
)

var header = []string{"date", "review", "sentiment"}

// CSVStore appends rows to a flat file with a date,review,sentiment header.
type CSVStore struct {
	mu     sync.Mutex
	path   string
	loc    *time.Location
	logger *zap.SugaredLogger
}

// NewCSVStore creates the parent directory and, when missing, the file with
// only its header row.
func NewCSVStore(path string, logger *zap.SugaredLogger) (*CSVStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	s := &CSVStore{path: path, loc: time.Local, logger: logger}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := s.writeHeader(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *CSVStore) Path() string { return s.path }

func (s *CSVStore) writeHeader() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// the file may have been removed since startup
	needHeader := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		needHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	row := []string{rec.Date.In(s.loc).Format(DateLayout), rec.Review, string(rec.Sentiment)}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *CSVStore) Between(ctx context.Context, start, end time.Time) ([]Record, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(all))
	for _, rec := range all {
		if inRange(rec.Date, start, end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *CSVStore) List(ctx context.Context, p params.Pagination) ([]Record, int, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, 0, err
	}

	reversed := make([]Record, len(all))
	for i, rec := range all {
		reversed[len(all)-1-i] = rec
	}
	return page(reversed, p), len(all), nil
}

func (s *CSVStore) readAll() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var out []Record
	line := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if line == 1 && len(row) > 0 && row[0] == header[0] {
			continue
		}
		rec, err := s.parseRow(row)
		if err != nil {
			if s.logger != nil {
				s.logger.Warnw("skipping malformed review row", "line", line, "error", err)
			}
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *CSVStore) parseRow(row []string) (Record, error) {
	if len(row) < 3 {
		return Record{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}
	date, err := time.ParseInLocation(DateLayout, row[0], s.loc)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, row[0]); err != nil {
			return Record{}, fmt.Errorf("parse date %q: %w", row[0], err)
		}
	}
	sent, err := sentiment.Parse(row[2])
	if err != nil {
		return Record{}, err
	}
	return Record{Date: date, Review: row[1], Sentiment: sent}, nil
}
