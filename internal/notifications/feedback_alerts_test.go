package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"feedbackdesk/internal/domain/reviews"
	"feedbackdesk/internal/mailer"
	"feedbackdesk/internal/sentiment"

	"github.com/9ssi7/exponent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	template string
	to       string
	data     any
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(templateFile, email string, data any) error {
	f.sent = append(f.sent, sentMail{templateFile, email, data})
	return f.err
}

type fakePush struct {
	msgs []*exponent.Message
	err  error
}

func (f *fakePush) Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error) {
	f.msgs = append(f.msgs, msgs...)
	return nil, f.err
}

var negative = reviews.Record{
	Date:      time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC),
	Review:    "The service was very slow yesterday.",
	Sentiment: sentiment.Negative,
}

func TestAlerterSendsEveryChannel(t *testing.T) {
	m := &fakeMailer{}
	p := &fakePush{}
	a := NewAlerter(AlerterConfig{
		Mailer:     m,
		Recipients: []string{"ops@example.com", "owner@example.com"},
		Push:       p,
		PushTokens: []string{"ExponentPushToken[a]", "ExponentPushToken[b]"},
	})
	require.True(t, a.Enabled())

	require.NoError(t, a.NegativeFeedback(context.Background(), negative, "We are sorry."))

	require.Len(t, m.sent, 2)
	assert.Equal(t, mailer.NegativeFeedbackTemplate, m.sent[0].template)
	assert.Equal(t, "owner@example.com", m.sent[1].to)

	require.Len(t, p.msgs, 2)
	assert.Equal(t, "Negative feedback received", p.msgs[0].Title)
	assert.Equal(t, negative.Review, p.msgs[0].Body)
	assert.Equal(t, exponent.Token("ExponentPushToken[b]"), *p.msgs[1].To[0])
}

func TestAlerterJoinsErrors(t *testing.T) {
	mailErr := errors.New("smtp down")
	pushErr := errors.New("expo down")
	a := NewAlerter(AlerterConfig{
		Mailer:     &fakeMailer{err: mailErr},
		Recipients: []string{"ops@example.com"},
		Push:       &fakePush{err: pushErr},
		PushTokens: []string{"ExponentPushToken[a]"},
	})

	err := a.NegativeFeedback(context.Background(), negative, "sorry")
	assert.ErrorIs(t, err, mailErr)
	assert.ErrorIs(t, err, pushErr)
}

func TestAlerterDisabled(t *testing.T) {
	a := NewAlerter(AlerterConfig{Mailer: &fakeMailer{}})
	assert.False(t, a.Enabled())
	assert.NoError(t, a.NegativeFeedback(context.Background(), negative, ""))
}

func TestPushBodyTruncated(t *testing.T) {
	a := NewAlerter(AlerterConfig{PushTokens: []string{"t"}, Push: &fakePush{}})
	rec := negative
	rec.Review = strings.Repeat("slow ", 60)

	msgs := a.pushMessages(rec)
	require.Len(t, msgs, 1)
	assert.Equal(t, maxPushBody, len([]rune(msgs[0].Body)))
}
