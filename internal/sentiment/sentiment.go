package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"feedbackdesk/internal/llm"
)

type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

var ErrInvalid = errors.New("invalid sentiment")

// All is in the alphabetical order used for chart series.
var All = []Sentiment{Negative, Neutral, Positive}

func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// Parse accepts the persisted spelling, case-insensitively.
func Parse(s string) (Sentiment, error) {
	for _, v := range All {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalid, s)
}

// Normalize maps a free-form model answer onto a label. Positive wins over
// negative, negative over neutral, and anything unrecognised is Neutral.
func Normalize(answer string) Sentiment {
	a := strings.ToLower(strings.TrimSpace(answer))
	switch {
	case strings.Contains(a, "positive"):
		return Positive
	case strings.Contains(a, "negative"):
		return Negative
	default:
		return Neutral
	}
}

const classifyPrompt = "Classify the sentiment of the following feedback as Positive, Negative, or Neutral ONLY. No extra words:\n\n%s"

func Prompt(feedback string) string {
	return fmt.Sprintf(classifyPrompt, feedback)
}

// Classify asks the model for a label and normalizes its answer.
func Classify(ctx context.Context, client llm.Client, feedback string) (Sentiment, error) {
	answer, err := client.Complete(ctx, Prompt(feedback))
	if err != nil {
		return "", fmt.Errorf("classify sentiment: %w", err)
	}
	return Normalize(answer), nil
}
