package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNegativeFeedback(t *testing.T) {
	subject, body, err := Render(NegativeFeedbackTemplate, map[string]string{
		"Date":     "2025-08-12 10:00:00",
		"Feedback": "The service was very slow yesterday.",
		"Reply":    "We are sorry to hear that.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Negative feedback received on 2025-08-12 10:00:00", subject)
	assert.Contains(t, body, `"The service was very slow yesterday."`)
	assert.Contains(t, body, "We are sorry to hear that.")
}

func TestRenderMissingTemplate(t *testing.T) {
	_, _, err := Render("nope.tmpl", nil)
	assert.Error(t, err)
}

func TestNewSMTPMailerRequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(SMTPConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587})
	assert.Error(t, err)

	m, err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "desk@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "desk@example.com", m.fromEmail)
}
