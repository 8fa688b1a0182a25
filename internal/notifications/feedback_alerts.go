package notifications

import (
	"context"
	"errors"
	"fmt"

	"feedbackdesk/internal/domain/reviews"
	"feedbackdesk/internal/mailer"

	"github.com/9ssi7/exponent"
	"go.uber.org/zap"
)

const maxPushBody = 140

// Alerter tells the team about negative feedback by email and push. Either
// channel may be left unconfigured.
type Alerter struct {
	mailer     mailer.Client
	recipients []string
	push       PushSender
	pushTokens []string
	logger     *zap.SugaredLogger
}

type AlerterConfig struct {
	Mailer     mailer.Client
	Recipients []string
	Push       PushSender
	PushTokens []string
	Logger     *zap.SugaredLogger
}

func NewAlerter(cfg AlerterConfig) *Alerter {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return &Alerter{
		mailer:     cfg.Mailer,
		recipients: cfg.Recipients,
		push:       cfg.Push,
		pushTokens: cfg.PushTokens,
		logger:     cfg.Logger,
	}
}

func (a *Alerter) Enabled() bool {
	return a.emailEnabled() || a.pushEnabled()
}

func (a *Alerter) emailEnabled() bool { return a.mailer != nil && len(a.recipients) > 0 }
func (a *Alerter) pushEnabled() bool  { return a.push != nil && len(a.pushTokens) > 0 }

// NegativeFeedback fans the alert out to every configured channel and
// returns the joined delivery errors.
func (a *Alerter) NegativeFeedback(ctx context.Context, rec reviews.Record, reply string) error {
	var errs []error

	if a.emailEnabled() {
		data := map[string]string{
			"Date":     rec.Date.Format(reviews.DateLayout),
			"Feedback": rec.Review,
			"Reply":    reply,
		}
		for _, to := range a.recipients {
			if err := a.mailer.Send(mailer.NegativeFeedbackTemplate, to, data); err != nil {
				errs = append(errs, err)
				continue
			}
			a.logger.Debugw("negative feedback email sent", "to", to)
		}
	}

	if a.pushEnabled() {
		if _, err := a.push.Publish(ctx, a.pushMessages(rec)); err != nil {
			errs = append(errs, fmt.Errorf("publish push: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (a *Alerter) pushMessages(rec reviews.Record) []*exponent.Message {
	body := rec.Review
	if r := []rune(body); len(r) > maxPushBody {
		body = string(r[:maxPushBody-1]) + "…"
	}

	msgs := make([]*exponent.Message, 0, len(a.pushTokens))
	for _, t := range a.pushTokens {
		// wrap the string token in exponent.Token
		token := exponent.Token(t)
		msgs = append(msgs, &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: "Negative feedback received",
			Body:  body,
			Data: map[string]string{
				"type":      "feedback",
				"sentiment": string(rec.Sentiment),
				"date":      rec.Date.Format(reviews.DateLayout),
			},
		})
	}
	return msgs
}
