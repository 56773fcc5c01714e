package monitor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/miaudev/miaumon/internal/logger"
	"github.com/miaudev/miaumon/internal/logtail"
	"github.com/miaudev/miaumon/internal/stats"
)

// Renderer draws a full frame from a read-only view of the state. The core
// never depends on how the frame is composed.
type Renderer interface {
	Render(s *State, width int, now time.Time) string
}

// Options configures a Loop.
type Options struct {
	LogFile   string
	TailLines int
	DBPath    string
	Interval  time.Duration

	Aggregator *stats.Aggregator
	Dispatcher *Dispatcher
	Renderer   Renderer

	// Keys receives raw input bytes; nil means no keyboard.
	Keys <-chan byte
	// Out receives rendered frames.
	Out io.Writer
	// Width returns the current terminal width.
	Width func() int
	// Now is the clock; defaults to time.Now.
	Now func() time.Time

	Log logger.Logger
}

// Loop is the cooperative scheduler. Every tick it polls for at most one
// pending keypress, dispatches it, recomputes the state from the providers,
// and renders. Provider latency is taken on the loop's turn rather than
// hidden behind concurrency; a correct snapshot matters more than strict
// timing.
type Loop struct {
	opts  Options
	state State
}

// NewLoop creates an event loop. The zero State is valid until the first
// refresh fills it.
func NewLoop(opts Options) *Loop {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logger.Noop()
	}
	if opts.Width == nil {
		opts.Width = func() int { return 100 }
	}
	return &Loop{opts: opts}
}

// Run drives the loop until ctx is cancelled or the interrupt key arrives.
// The first frame is rendered immediately; subsequent frames follow the
// fixed tick.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.opts.Interval)
	defer ticker.Stop()

	if stop := l.step(l.opts.Now()); stop {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			l.opts.Log.Debug("loop interrupted")
			return nil
		case <-ticker.C:
			if stop := l.step(l.opts.Now()); stop {
				return nil
			}
		}
	}
}

// step runs one tick: input first, then refresh, then render. Returns true
// when the interrupt key asks the loop to stop.
func (l *Loop) step(now time.Time) bool {
	if stop := l.poll(now); stop {
		return true
	}
	l.refresh()
	l.render(now)
	return false
}

// poll applies at most one pending keypress without ever blocking. Further
// buffered keys wait for subsequent ticks.
func (l *Loop) poll(now time.Time) bool {
	if l.opts.Keys == nil {
		return false
	}
	select {
	case key, ok := <-l.opts.Keys:
		if !ok {
			return false
		}
		if key == KeyInterrupt {
			return true
		}
		l.opts.Dispatcher.HandleKey(key, now, &l.state)
	default:
	}
	return false
}

// refresh recomputes the state snapshot from the providers.
func (l *Loop) refresh() {
	l.state.Services = l.opts.Aggregator.Collect()
	l.state.System = l.opts.Aggregator.System()
	l.state.DB = stats.ProbeDB(l.opts.DBPath)
	l.state.LogLines = logtail.Tail(l.opts.LogFile, l.opts.TailLines)
	l.state.HasError = logtail.HasError(l.state.LogLines)
}

// render hands the snapshot to the rendering surface. Raw mode disables
// output post-processing, so the terminal no longer expands LF to CRLF;
// the frame's line breaks are rewritten here so renderers can stay
// terminal-mode agnostic.
func (l *Loop) render(now time.Time) {
	if l.opts.Renderer == nil || l.opts.Out == nil {
		return
	}
	frame := l.opts.Renderer.Render(&l.state, l.opts.Width(), now)
	fmt.Fprint(l.opts.Out, cursorHome+clearScreen+strings.ReplaceAll(frame, "\n", "\r\n"))
}
