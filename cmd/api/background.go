package main

import (
	"context"
	"expvar"
	"time"

	"feedbackdesk/internal/params"
)

const defaultStatsInterval = 5 * time.Minute

var reviewsTotal = expvar.NewInt("reviews_total")

// refreshReviewStatsEvery keeps the reviews_total metric in step with the
// store until ctx is cancelled. Non-positive intervals use the default.
func (app *application) refreshReviewStatsEvery(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultStatsInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Run once immediately
		app.refreshReviewStats(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.refreshReviewStats(ctx)
			}
		}
	}()
}

func (app *application) refreshReviewStats(ctx context.Context) {
	_, total, err := app.store.Reviews.List(ctx, params.New(1, 1))
	if err != nil {
		app.logger.Errorw("error counting reviews", "error", err)
		return
	}
	reviewsTotal.Set(int64(total))
	app.logger.Debugw("review stats refreshed", "total", total)
}
