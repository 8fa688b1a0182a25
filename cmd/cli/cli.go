package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"feedbackdesk/internal/agent"
	"feedbackdesk/internal/chart"
	"feedbackdesk/internal/feedback"
)

var errUnknownCommand = errors.New("unknown command")

type cli struct {
	out     io.Writer
	svc     *feedback.Service
	plotter *chart.Plotter
	agent   *agent.Agent
}

func (c *cli) run(ctx context.Context, cmd, text string) error {
	switch cmd {
	case "sentiment":
		return c.sentiment(ctx, text)
	case "reply":
		return c.reply(ctx, text)
	case "plot":
		return c.plot(ctx, text)
	case "agent":
		return c.ask(ctx, text)
	case "demo":
		return c.demo(ctx)
	}
	return fmt.Errorf("%w %q", errUnknownCommand, cmd)
}

func (c *cli) sentiment(ctx context.Context, text string) error {
	label, err := c.svc.DetectSentiment(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, label)
	return nil
}

func (c *cli) reply(ctx context.Context, text string) error {
	reply, err := c.svc.GenerateReply(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Feedback: %s\n", reply.Feedback)
	fmt.Fprintf(c.out, "Sentiment: %s\n", reply.Sentiment)
	fmt.Fprintf(c.out, "Reply: %s\n", reply.Text)
	return nil
}

// plot prints the user-facing message for range and data problems instead of
// failing, the way the assistant's plotting tool reports them.
func (c *cli) plot(ctx context.Context, text string) error {
	plot, err := c.plotter.PlotRange(ctx, text)
	if err != nil {
		if msg, ok := chart.UserMessage(err); ok {
			fmt.Fprintln(c.out, msg)
			return nil
		}
		return err
	}
	fmt.Fprintf(c.out, "Plot saved as: %s\n", plot.Path)
	if plot.URL != "" {
		fmt.Fprintf(c.out, "Uploaded to: %s\n", plot.URL)
	}
	return nil
}

func (c *cli) ask(ctx context.Context, question string) error {
	answer, err := c.agent.Run(ctx, question)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, answer)
	return nil
}

func (c *cli) demo(ctx context.Context) error {
	fmt.Fprintln(c.out, "Example 1: Detect Sentiment")
	if err := c.ask(ctx, "Detect sentiment for: The noodles were delicious and the staff was friendly."); err != nil {
		return err
	}

	for _, text := range []string{
		"The service was very slow yesterday.",
		"The foods are mouth watering.",
	} {
		fmt.Fprintln(c.out, "\nExample 2: Generate Reply")
		if err := c.reply(ctx, text); err != nil {
			return err
		}
	}

	for _, r := range []string{"2025-08-01 , 2025-08-10", "Today"} {
		fmt.Fprintln(c.out, "\nExample 3: Generate Sentiment Plot")
		if err := c.plot(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
