package ensaios

import (
	"fmt"
	"strconv"
	"time"
)

// SessionStatus tracks where a photo session stands in the sales pipeline.
// It is driven by sale recording, never edited directly.
type SessionStatus string

const (
	// StatusPending means no sale attempt has been recorded yet.
	StatusPending SessionStatus = "pending"
	// StatusInProgress means the client was seen but gave up (a "D" sale).
	StatusInProgress SessionStatus = "in_progress"
	// StatusCompleted means the photos were sold (a "VD" sale).
	StatusCompleted SessionStatus = "completed"
)

// ParseSessionStatus parses a string into a SessionStatus.
func ParseSessionStatus(s string) (SessionStatus, error) {
	switch SessionStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return SessionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown session status: %q", s)
	}
}

// Session is a photo shoot booking: a photographer shooting a model on a day.
type Session struct {
	ID           string        `json:"id"`
	Photographer string        `json:"photographer"`
	Model        string        `json:"model"`
	Date         Date          `json:"date"`
	Status       SessionStatus `json:"status"`
}

// NewSessionID derives an opaque identifier from the creation instant.
// Millisecond resolution is enough for a single front desk.
func NewSessionID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
