package agent

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/domain/reviews"
	"feedbackdesk/internal/feedback"
	"feedbackdesk/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scripted answers prompts in order and remembers them.
type scripted struct {
	answers []string
	prompts []string
}

func (s *scripted) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", errors.New("script exhausted")
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func echoTool(calls *[]string) Tool {
	return Tool{
		Name:        "Echo",
		Description: "Repeat the input.",
		Run: func(ctx context.Context, input string) (string, error) {
			*calls = append(*calls, input)
			return "echo:" + input, nil
		},
	}
}

func TestRunCallsToolThenAnswers(t *testing.T) {
	var calls []string
	model := &scripted{answers: []string{
		" I should echo it.\nAction: Echo\nAction Input: \"hello\"\nObservation: made up",
		" I now know the final answer\nFinal Answer: it said echo:hello",
	}}
	a := New(model, []Tool{echoTool(&calls)}, Config{})

	answer, err := a.Run(context.Background(), "What does echo say?")
	require.NoError(t, err)
	assert.Equal(t, "it said echo:hello", answer)
	assert.Equal(t, []string{"hello"}, calls)

	require.Len(t, model.prompts, 2)
	assert.Contains(t, model.prompts[0], "Echo: Repeat the input.")
	assert.Contains(t, model.prompts[0], "should be one of [Echo]")
	assert.Contains(t, model.prompts[1], "Observation: echo:hello\nThought:")
	assert.NotContains(t, model.prompts[1], "made up")
}

func TestRunUnknownToolAndBadFormat(t *testing.T) {
	var calls []string
	model := &scripted{answers: []string{
		" hmm\nAction: Shout\nAction Input: hi",
		" let me think without acting",
		"Final Answer: done",
	}}
	a := New(model, []Tool{echoTool(&calls)}, Config{Verbose: true, Logger: zap.NewNop().Sugar()})

	answer, err := a.Run(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "done", answer)
	assert.Empty(t, calls)
	assert.Contains(t, model.prompts[1], "Shout is not a valid tool, try one of [Echo].")
	assert.Contains(t, model.prompts[2], "Invalid Format")
}

func TestRunStopsAtLimit(t *testing.T) {
	var calls []string
	loop := " again\nAction: Echo\nAction Input: x"
	model := &scripted{answers: []string{loop, loop, loop}}
	a := New(model, []Tool{echoTool(&calls)}, Config{MaxIterations: 3})

	_, err := a.Run(context.Background(), "q")
	assert.ErrorIs(t, err, ErrMaxIterations)
	assert.Len(t, calls, 3)
}

func TestRunToolErrorBecomesObservation(t *testing.T) {
	failing := Tool{Name: "Fail", Description: "always fails", Run: func(ctx context.Context, input string) (string, error) {
		return "", errors.New("kaput")
	}}
	model := &scripted{answers: []string{"Action: Fail\nAction Input: x", "Final Answer: sorry"}}
	a := New(model, []Tool{failing}, Config{})

	answer, err := a.Run(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "sorry", answer)
	assert.Contains(t, model.prompts[1], "Observation: Error: kaput")
}

func TestRunEmptyQuestion(t *testing.T) {
	_, err := New(&scripted{}, nil, Config{}).Run(context.Background(), "  ")
	assert.Error(t, err)
}

func TestNewToolsWiring(t *testing.T) {
	dir := t.TempDir()
	store, err := reviews.NewCSVStore(filepath.Join(dir, "reviews.csv"), zap.NewNop().Sugar())
	require.NoError(t, err)

	model := llm.Func(func(ctx context.Context, prompt string) (string, error) {
		if strings.HasPrefix(prompt, "Classify") {
			return "Positive", nil
		}
		return "Thank you for the kind words!", nil
	})
	svc := feedback.NewService(model, store, nil, nil)
	plotter, err := chart.NewPlotter(store, chart.Config{Dir: filepath.Join(dir, "plots")})
	require.NoError(t, err)

	tools := NewTools(svc, plotter)
	require.Len(t, tools, 3)
	byName := map[string]Tool{}
	for _, tl := range tools {
		byName[tl.Name] = tl
	}
	ctx := context.Background()

	out, err := byName[SentimentDetectorTool].Run(ctx, "The noodles were delicious and the staff was friendly.")
	require.NoError(t, err)
	assert.Equal(t, "Positive", out)

	out, err = byName[SentimentPlotterTool].Run(ctx, "today")
	require.NoError(t, err)
	assert.Equal(t, "No reviews found for the selected date range.", out)

	out, err = byName[ReplyGeneratorTool].Run(ctx, "The foods are mouth watering.")
	require.NoError(t, err)
	assert.Equal(t, "Thank you for the kind words!", out)

	out, err = byName[SentimentPlotterTool].Run(ctx, "today")
	require.NoError(t, err)
	assert.Equal(t, "sentimentplot1.png", filepath.Base(out))

	out, err = byName[SentimentPlotterTool].Run(ctx, "whenever")
	require.NoError(t, err)
	assert.Equal(t, chart.HelpText, out)

}
