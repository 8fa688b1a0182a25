package main

import (
	"errors"
	"net/http"
	"time"

	"feedbackdesk/internal/chart"

	"github.com/go-chi/chi/v5"
)

type plotPayload struct {
	Range string `json:"range" validate:"required,notblank,max=200"`
}

type plotResponse struct {
	ID       string       `json:"id"`
	Number   int          `json:"number"`
	File     string       `json:"file"`
	ImageURL string       `json:"image_url"`
	CloudURL string       `json:"cloud_url,omitempty"`
	Start    time.Time    `json:"start"`
	End      time.Time    `json:"end"`
	Total    int          `json:"total"`
	Counts   chart.Counts `json:"counts"`
}

// createPlotHandler godoc
//
//	@Summary		Plot sentiment over a date range
//	@Description	Accepts ranges like "last 7 days", "2025-08-01 to 2025-08-10" or "August 1 to August 7".
//	@Tags			plots
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		plotPayload	true	"Date range"
//	@Success		201		{object}	plotResponse
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Router			/plots [post]
func (app *application) createPlotHandler(w http.ResponseWriter, r *http.Request) {
	var payload plotPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(&payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	plot, err := app.plotter.PlotRange(r.Context(), payload.Range)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	id, err := app.plotIDs.Encode(plot.Number)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, plotResponse{
		ID:       id,
		Number:   plot.Number,
		File:     chart.FileName(plot.Number),
		ImageURL: "/v1/plots/" + id,
		CloudURL: plot.URL,
		Start:    plot.Start,
		End:      plot.End,
		Total:    plot.Total,
		Counts:   plot.Counts,
	})
}

// getPlotHandler godoc
//
//	@Summary		Fetch a rendered plot
//	@Tags			plots
//	@Produce		png
//	@Param			plotID	path	string	true	"Plot ID"
//	@Success		200
//	@Failure		404	{object}	error
//	@Router			/plots/{plotID} [get]
func (app *application) getPlotHandler(w http.ResponseWriter, r *http.Request) {
	number, err := app.plotIDs.Decode(chi.URLParam(r, "plotID"))
	if err != nil {
		app.notFoundResponse(w, r, chart.ErrUnknownPlot.Error())
		return
	}

	path, err := app.plotter.Lookup(number)
	if err != nil {
		if errors.Is(err, chart.ErrUnknownPlot) {
			app.notFoundResponse(w, r, err.Error())
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="`+chart.FileName(number)+`"`)
	http.ServeFile(w, r, path)
}
