package join

import (
	"time"

	"crease/internal/models"
)

// Request carries everything needed to enter a contest.
type Request struct {
	AccountID     uint
	ContestID     uint
	Players       []models.TeamPlayer
	CaptainID     string
	ViceCaptainID string
}

// Config holds configuration for join processing
type Config struct {
	// AllowMultipleEntries permits more than one team per account per
	// contest. Off by default.
	AllowMultipleEntries bool

	// MaxRetries bounds internal retries on concurrency conflicts before
	// the error surfaces to the caller.
	MaxRetries int

	// RetryBackoff is the base delay between retries, doubled per attempt.
	RetryBackoff time.Duration
}

// DefaultRetries and DefaultRetryBackoff fill zero-valued Config fields.
const (
	DefaultRetries      = 3
	DefaultRetryBackoff = 25 * time.Millisecond
)
