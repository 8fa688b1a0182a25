package agent

import (
	"context"

	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/feedback"
)

const (
	SentimentDetectorTool = "SentimentDetector"
	ReplyGeneratorTool    = "ReplyGenerator"
	SentimentPlotterTool  = "SentimentPlotter"
)

// NewTools exposes the feedback operations to the agent. Expected plotter
// outcomes (bad range, no data) come back as text for the model to relay.
func NewTools(svc *feedback.Service, plotter *chart.Plotter) []Tool {
	return []Tool{
		{
			Name:        SentimentDetectorTool,
			Description: "Detect sentiment from customer feedback text.",
			Run: func(ctx context.Context, input string) (string, error) {
				s, err := svc.DetectSentiment(ctx, input)
				if err != nil {
					return "", err
				}
				return string(s), nil
			},
		},
		{
			Name:        ReplyGeneratorTool,
			Description: "Generate polite, professional reply to customer feedback.",
			Run: func(ctx context.Context, input string) (string, error) {
				r, err := svc.GenerateReply(ctx, input)
				if err != nil {
					return "", err
				}
				return r.Text, nil
			},
		},
		{
			Name:        SentimentPlotterTool,
			Description: "Generate a sentiment trend plot for a given date range.",
			Run: func(ctx context.Context, input string) (string, error) {
				p, err := plotter.PlotRange(ctx, input)
				if err != nil {
					if msg, ok := chart.UserMessage(err); ok {
						return msg, nil
					}
					return "", err
				}
				if p.URL != "" {
					return p.URL, nil
				}
				return p.Path, nil
			},
		},
	}
}
