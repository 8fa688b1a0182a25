package main

import (
	"net/http"

	"feedbackdesk/internal/domain/reviews"
	"feedbackdesk/internal/params"
	"feedbackdesk/internal/sentiment"
)

type feedbackPayload struct {
	Feedback string `json:"feedback" validate:"required,notblank,max=5000"`
}

type sentimentResponse struct {
	Feedback  string              `json:"feedback"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
}

type feedbackListResponse struct {
	Reviews    []reviews.Record  `json:"reviews"`
	Pagination params.Pagination `json:"pagination"`
}

// detectSentimentHandler godoc
//
//	@Summary		Detect sentiment
//	@Description	Classifies feedback as Positive, Negative or Neutral. Nothing is stored.
//	@Tags			feedback
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		feedbackPayload	true	"Feedback text"
//	@Success		200		{object}	sentimentResponse
//	@Failure		400		{object}	error
//	@Failure		502		{object}	error
//	@Router			/feedback/sentiment [post]
func (app *application) detectSentimentHandler(w http.ResponseWriter, r *http.Request) {
	var payload feedbackPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(&payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	label, err := app.feedback.DetectSentiment(r.Context(), payload.Feedback)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, sentimentResponse{Feedback: payload.Feedback, Sentiment: label})
}

// generateReplyHandler godoc
//
//	@Summary		Generate a reply
//	@Description	Classifies the feedback, drafts a reply and records the review.
//	@Tags			feedback
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		feedbackPayload	true	"Feedback text"
//	@Success		201		{object}	feedback.Reply
//	@Failure		400		{object}	error
//	@Failure		502		{object}	error
//	@Router			/feedback/reply [post]
func (app *application) generateReplyHandler(w http.ResponseWriter, r *http.Request) {
	var payload feedbackPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(&payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reply, err := app.feedback.GenerateReply(r.Context(), payload.Feedback)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, reply)
}

// listFeedbackHandler godoc
//
//	@Summary		List recorded feedback
//	@Description	Returns recorded reviews, newest first.
//	@Tags			feedback
//	@Produce		json
//	@Param			page	query		int	false	"Page number"		default(1)
//	@Param			limit	query		int	false	"Items per page"	default(20)
//	@Success		200		{object}	feedbackListResponse
//	@Router			/feedback [get]
func (app *application) listFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	recs, total, err := app.store.Reviews.List(r.Context(), p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	if recs == nil {
		recs = []reviews.Record{}
	}

	app.jsonResponse(w, http.StatusOK, feedbackListResponse{Reviews: recs, Pagination: p})
}
