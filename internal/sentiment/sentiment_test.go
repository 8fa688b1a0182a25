package sentiment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"feedbackdesk/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		answer string
		want   Sentiment
	}{
		{"Positive", Positive},
		{"  negative.\n", Negative},
		{"NEUTRAL", Neutral},
		{"The sentiment is Positive", Positive},
		{"not negative, rather positive", Positive},
		{"mixed", Neutral},
		{"", Neutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.answer), tt.answer)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("negative")
	require.NoError(t, err)
	assert.Equal(t, Negative, s)

	_, err = Parse("angry")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestClassifyUsesPrompt(t *testing.T) {
	var prompt string
	client := llm.Func(func(ctx context.Context, p string) (string, error) {
		prompt = p
		return "Negative", nil
	})

	got, err := Classify(context.Background(), client, "The service was very slow yesterday.")
	require.NoError(t, err)
	assert.Equal(t, Negative, got)
	assert.True(t, strings.HasPrefix(prompt, "Classify the sentiment of the following feedback as Positive, Negative, or Neutral ONLY."))
	assert.True(t, strings.HasSuffix(prompt, "\n\nThe service was very slow yesterday."))
}

func TestClassifyPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	client := llm.Func(func(ctx context.Context, p string) (string, error) {
		return "", boom
	})

	_, err := Classify(context.Background(), client, "x")
	assert.ErrorIs(t, err, boom)
}
