package reviews

import (
	"time"

	"feedbackdesk/internal/sentiment"
)

// DateLayout is how dates are written to the flat file.
const DateLayout = "2006-01-02 15:04:05"

type Record struct {
	Date      time.Time           `json:"date"`
	Review    string              `json:"review"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
}
