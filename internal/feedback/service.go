// Package feedback classifies customer feedback, drafts replies and records
// the outcome.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"feedbackdesk/internal/domain/reviews"
	"feedbackdesk/internal/llm"
	"feedbackdesk/internal/sentiment"

	"go.uber.org/zap"
)

var (
	ErrEmptyFeedback = errors.New("feedback must not be empty")
	ErrModel         = errors.New("language model request failed")
)

const replyPrompt = "A customer left this %s feedback:\n'%s'\nWrite a short, polite, and professional response."

// Notifier is told about negative feedback after it has been recorded.
type Notifier interface {
	NegativeFeedback(ctx context.Context, rec reviews.Record, reply string) error
}

type Reply struct {
	Feedback  string              `json:"feedback"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
	Text      string              `json:"reply"`
	Date      time.Time           `json:"date"`
}

type Service struct {
	llm      llm.Client
	store    reviews.Store
	notifier Notifier
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// NewService wires the service. notifier may be nil.
func NewService(client llm.Client, store reviews.Store, notifier Notifier, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		llm:      client,
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// DetectSentiment classifies text without recording it.
func (s *Service) DetectSentiment(ctx context.Context, text string) (sentiment.Sentiment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyFeedback
	}

	label, err := sentiment.Classify(ctx, s.llm, text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModel, err)
	}
	return label, nil
}

// GenerateReply classifies text, drafts a reply and appends the feedback to
// the store. Nothing is recorded unless both model calls succeed.
func (s *Service) GenerateReply(ctx context.Context, text string) (*Reply, error) {
	label, err := s.DetectSentiment(ctx, text)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)

	answer, err := s.llm.Complete(ctx, ReplyPrompt(label, text))
	if err != nil {
		return nil, fmt.Errorf("%w: draft reply: %w", ErrModel, err)
	}

	rec := reviews.Record{Date: s.now(), Review: text, Sentiment: label}
	if err := s.store.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("record feedback: %w", err)
	}

	reply := &Reply{
		Feedback:  text,
		Sentiment: label,
		Text:      strings.TrimSpace(answer),
		Date:      rec.Date,
	}

	if label == sentiment.Negative && s.notifier != nil {
		if err := s.notifier.NegativeFeedback(ctx, rec, reply.Text); err != nil {
			s.logger.Warnw("negative feedback alert failed", "error", err)
		}
	}

	s.logger.Infow("feedback recorded", "sentiment", label)
	return reply, nil
}

func ReplyPrompt(label sentiment.Sentiment, text string) string {
	return fmt.Sprintf(replyPrompt, label, text)
}
