package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"feedbackdesk/internal/agent"
	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/domain/reviews"
	"feedbackdesk/internal/feedback"
	"feedbackdesk/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scriptedModel(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.HasPrefix(prompt, "Classify the sentiment"):
		if strings.Contains(prompt, "slow") {
			return "Negative", nil
		}
		return "Positive", nil
	case strings.HasPrefix(prompt, "A customer left this"):
		return "Thanks for the feedback!", nil
	case strings.Contains(prompt, "\nObservation: Positive"):
		return " I now know the final answer\nFinal Answer: The sentiment is Positive.", nil
	}
	return " I should classify it.\nAction: SentimentDetector\nAction Input: The noodles were delicious", nil
}

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer, string) {
	t.Helper()

	logger := zap.NewNop().Sugar()
	dir := t.TempDir()
	store, err := reviews.NewCSVStore(filepath.Join(dir, "reviews.csv"), logger)
	require.NoError(t, err)

	model := llm.Func(scriptedModel)
	svc := feedback.NewService(model, store, nil, logger)
	plotter, err := chart.NewPlotter(store, chart.Config{Dir: dir, Logger: logger})
	require.NoError(t, err)

	var out bytes.Buffer
	return &cli{
		out:     &out,
		svc:     svc,
		plotter: plotter,
		agent:   agent.New(model, agent.NewTools(svc, plotter), agent.Config{Logger: logger}),
	}, &out, dir
}

func TestCLICommands(t *testing.T) {
	ctx := context.Background()

	t.Run("sentiment", func(t *testing.T) {
		c, out, _ := newTestCLI(t)
		require.NoError(t, c.run(ctx, "sentiment", "The service was slow"))
		assert.Equal(t, "Negative\n", out.String())
	})

	t.Run("reply", func(t *testing.T) {
		c, out, _ := newTestCLI(t)
		require.NoError(t, c.run(ctx, "reply", "Lovely staff"))
		assert.Contains(t, out.String(), "Sentiment: Positive")
		assert.Contains(t, out.String(), "Reply: Thanks for the feedback!")
	})

	t.Run("plot prints help for bad range", func(t *testing.T) {
		c, out, _ := newTestCLI(t)
		require.NoError(t, c.run(ctx, "plot", "blah blah"))
		assert.Equal(t, chart.HelpText+"\n", out.String())
	})

	t.Run("agent", func(t *testing.T) {
		c, out, _ := newTestCLI(t)
		require.NoError(t, c.run(ctx, "agent", "Detect sentiment for: The noodles were delicious"))
		assert.Equal(t, "The sentiment is Positive.\n", out.String())
	})

	t.Run("unknown command", func(t *testing.T) {
		c, _, _ := newTestCLI(t)
		assert.ErrorIs(t, c.run(ctx, "frobnicate", ""), errUnknownCommand)
	})
}

func TestCLIDemo(t *testing.T) {
	c, out, dir := newTestCLI(t)
	require.NoError(t, c.run(context.Background(), "demo", ""))

	text := out.String()
	assert.Contains(t, text, "Example 1: Detect Sentiment")
	assert.Contains(t, text, "Feedback: The service was very slow yesterday.")
	// the fixed August range holds none of the freshly recorded reviews
	assert.Contains(t, text, "No reviews found for the selected date range.")
	assert.Contains(t, text, "Plot saved as: "+filepath.Join(dir, "sentimentplot1.png"))

	_, err := os.Stat(filepath.Join(dir, "sentimentplot1.png"))
	assert.NoError(t, err)
}
