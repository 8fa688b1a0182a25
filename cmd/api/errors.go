package main

import (
	"errors"
	"fmt"
	"net/http"

	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/feedback"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusNotFound, message)
}

func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("upstream model error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadGateway, "the language model is unavailable, please try again later")
}

func (app *application) unprocessableEntityResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unprocessable entity", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// serviceErrorResponse maps feedback and plotting errors onto status codes.
func (app *application) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, feedback.ErrEmptyFeedback):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, chart.ErrUnparseableRange), errors.Is(err, chart.ErrRangeTooLarge):
		msg, _ := chart.UserMessage(err)
		app.badRequestResponse(w, r, errors.New(msg))
	case errors.Is(err, chart.ErrNoData), errors.Is(err, chart.ErrNoReviews):
		msg, _ := chart.UserMessage(err)
		app.notFoundResponse(w, r, msg)
	case errors.Is(err, chart.ErrUnknownPlot):
		app.notFoundResponse(w, r, err.Error())
	case errors.Is(err, feedback.ErrModel):
		app.badGatewayResponse(w, r, err)
	default:
		app.internalServerError(w, r, fmt.Errorf("%s %s: %w", r.Method, r.URL.Path, err))
	}
}
