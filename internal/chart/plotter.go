package chart

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"feedbackdesk/internal/daterange"
	"feedbackdesk/internal/domain/reviews"

	"go.uber.org/zap"
)

const HelpText = "Sorry, I couldn't understand that date range.\n" +
	"Try formats like:\n" +
	"- 'last 7 days'\n" +
	"- '2025-08-01 to 2025-08-10'\n" +
	"- '2025-08-01 , 2025-08-10'\n" +
	"- 'August 1 to August 7'"

// MaxDays bounds the number of calendar days one chart may cover.
const MaxDays = 1000

var (
	ErrRangeTooLarge    = errors.New("date range is too large")
	ErrUnparseableRange = errors.New("could not understand date range")
	ErrNoData           = errors.New("no data found to plot")
	ErrNoReviews        = errors.New("no reviews found for the selected date range")
	ErrUnknownPlot      = errors.New("plot not found")
)

// UserMessage is the text shown to a person for the plotter's sentinel errors.
func UserMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrUnparseableRange):
		return HelpText, true
	case errors.Is(err, ErrNoData):
		return "No data found to plot. Please add some reviews first.", true
	case errors.Is(err, ErrNoReviews):
		return "No reviews found for the selected date range.", true
	case errors.Is(err, ErrRangeTooLarge):
		return fmt.Sprintf("That date range is too long. Please pick at most %d days.", MaxDays), true
	}
	return "", false
}

// Uploader publishes a rendered plot and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, path, publicID string) (string, error)
}

type Plot struct {
	Number int       `json:"number"`
	Path   string    `json:"path"`
	URL    string    `json:"url,omitempty"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Total  int       `json:"total"`
	Counts Counts    `json:"counts"`
}

type Config struct {
	Dir      string
	Uploader Uploader
	Logger   *zap.SugaredLogger
	Now      func() time.Time
}

// Plotter renders numbered sentiment charts: sentimentplot1.png,
// sentimentplot2.png, ... The counter lives for the life of the process.
type Plotter struct {
	mu       sync.Mutex
	counter  int
	store    reviews.Store
	dir      string
	parser   *daterange.Parser
	uploader Uploader
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewPlotter(store reviews.Store, cfg Config) (*Plotter, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create plot dir: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Plotter{
		counter:  1,
		store:    store,
		dir:      cfg.Dir,
		parser:   daterange.New(),
		uploader: cfg.Uploader,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}, nil
}

func FileName(number int) string {
	return fmt.Sprintf("sentimentplot%d.png", number)
}

// PlotRange parses a natural-language range and plots it.
func (p *Plotter) PlotRange(ctx context.Context, input string) (*Plot, error) {
	start, end, err := p.parser.Parse(input, p.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparseableRange, input)
	}
	return p.Plot(ctx, start, end)
}

func (p *Plotter) Plot(ctx context.Context, start, end time.Time) (*Plot, error) {
	if n := spanDays(start, end); n > MaxDays {
		return nil, fmt.Errorf("%w: %d days", ErrRangeTooLarge, n)
	}

	exists, err := p.store.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check review store: %w", err)
	}
	if !exists {
		return nil, ErrNoData
	}

	recs, err := p.store.Between(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoReviews
	}

	counts := Aggregate(recs, start, end)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	number := p.counter
	path := filepath.Join(p.dir, FileName(number))
	if err := Render(counts, path); err != nil {
		return nil, fmt.Errorf("render plot: %w", err)
	}
	p.counter++

	plot := &Plot{
		Number: number,
		Path:   path,
		Start:  start,
		End:    end,
		Total:  len(recs),
		Counts: counts,
	}

	if p.uploader != nil {
		url, err := p.uploader.Upload(ctx, path, fmt.Sprintf("sentimentplot%d", number))
		if err != nil {
			// the local file is still usable
			p.logger.Warnw("plot upload failed", "plot", number, "error", err)
		} else {
			plot.URL = url
		}
	}

	p.logger.Infow("sentiment plot rendered", "plot", number, "path", path, "reviews", len(recs))
	return plot, nil
}

// spanDays counts the calendar days in [start, end]. Durations saturate, so
// spans beyond a few centuries still compare as too large.
func spanDays(start, end time.Time) int {
	first := truncateDay(start)
	last := truncateDay(end.In(start.Location()))
	return int(last.Sub(first).Round(time.Hour).Hours()/24) + 1
}

// Lookup returns the file for a plot number rendered by this process.
func (p *Plotter) Lookup(number int) (string, error) {
	p.mu.Lock()
	issued := number >= 1 && number < p.counter
	p.mu.Unlock()
	if !issued {
		return "", ErrUnknownPlot
	}

	path := filepath.Join(p.dir, FileName(number))
	if _, err := os.Stat(path); err != nil {
		return "", ErrUnknownPlot
	}
	return path, nil
}
