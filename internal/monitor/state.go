// Package monitor implements the dashboard's monitoring core: the shared
// display state, keyboard dispatch, and the cooperative event loop.
//
// # Concurrency model
//
// The loop is a single logical actor. State has exactly one writer (the
// loop's own turn) and is handed to the renderer read-only, so no locking
// is needed. The only goroutine besides the loop is the stdin reader, which
// owns nothing but the file descriptor and forwards bytes into a buffered
// channel; the loop drains that channel with a non-blocking receive at the
// start of every tick, so input is always applied before the refresh and a
// status message set this tick is visible in this tick's frame.
package monitor

import (
	"time"

	"github.com/miaudev/miaumon/internal/stats"
)

// StatusMessageTTL is how long a transient status message stays visible.
const StatusMessageTTL = 5 * time.Second

// StatusMessage is a transient footer message. Expiry is a read-time check:
// stale messages are suppressed by Visible, not eagerly cleared.
type StatusMessage struct {
	Text      string
	CreatedAt time.Time
}

// Visible reports whether the message should be shown at the given instant.
func (m StatusMessage) Visible(now time.Time) bool {
	return m.Text != "" && now.Sub(m.CreatedAt) < StatusMessageTTL
}

// State is the mutable snapshot of everything rendered. The event loop owns
// it; everyone else reads.
type State struct {
	Services []stats.ServiceStatus
	System   stats.SystemSample
	DB       stats.DBStats
	LogLines []string
	HasError bool
	Status   StatusMessage
}

// SetStatus replaces the current status message. Messages never stack.
func (s *State) SetStatus(text string, now time.Time) {
	s.Status = StatusMessage{Text: text, CreatedAt: now}
}
