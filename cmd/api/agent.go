package main

import (
	"errors"
	"net/http"

	"feedbackdesk/internal/agent"
)

type agentPayload struct {
	Question string `json:"question" validate:"required,notblank,max=5000"`
}

type agentResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// agentHandler godoc
//
//	@Summary		Ask the feedback assistant
//	@Description	Free-form request; the assistant picks the sentiment, reply or plot tool.
//	@Tags			agent
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		agentPayload	true	"Question"
//	@Success		200		{object}	agentResponse
//	@Failure		400		{object}	error
//	@Failure		502		{object}	error
//	@Router			/agent [post]
func (app *application) agentHandler(w http.ResponseWriter, r *http.Request) {
	var payload agentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(&payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	answer, err := app.agent.Run(r.Context(), payload.Question)
	if err != nil {
		if errors.Is(err, agent.ErrMaxIterations) {
			app.unprocessableEntityResponse(w, r, err)
			return
		}
		app.badGatewayResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, agentResponse{Question: payload.Question, Answer: answer})
}
