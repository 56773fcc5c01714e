package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessageVisibility(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	msg := StatusMessage{Text: "Error copied to clipboard", CreatedAt: start}

	assert.True(t, msg.Visible(start))
	assert.True(t, msg.Visible(start.Add(4999*time.Millisecond)))
	assert.False(t, msg.Visible(start.Add(5*time.Second)))
	assert.False(t, msg.Visible(start.Add(time.Minute)))
}

func TestStatusMessageZeroValueHidden(t *testing.T) {
	var msg StatusMessage
	assert.False(t, msg.Visible(time.Now()))
}

func TestSetStatusReplaces(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	t10 := t0.Add(10 * time.Second)

	var s State
	s.SetStatus("first", t0)
	s.SetStatus("second", t10)

	assert.Equal(t, "second", s.Status.Text)
	assert.True(t, s.Status.Visible(t10))
	assert.False(t, s.Status.Visible(t10.Add(5*time.Second)))
}
