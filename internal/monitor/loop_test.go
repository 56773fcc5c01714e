package monitor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miaudev/miaumon/internal/logger"
	"github.com/miaudev/miaumon/internal/stats"
)

// loopProvider is a canned stats.Provider for loop tests.
type loopProvider struct {
	samples map[int32]stats.ProcessSample
	system  stats.SystemSample
}

func (p *loopProvider) SampleByPID(pid int32) (stats.ProcessSample, bool) {
	s, ok := p.samples[pid]
	return s, ok
}

func (p *loopProvider) FindPIDByPattern(string) (int32, bool) { return 0, false }

func (p *loopProvider) System() stats.SystemSample { return p.system }

// frameRecorder captures every rendered snapshot.
type frameRecorder struct {
	frames []State
	nows   []time.Time
}

func (r *frameRecorder) Render(s *State, width int, now time.Time) string {
	r.frames = append(r.frames, *s)
	r.nows = append(r.nows, now)
	return fmt.Sprintf("frame %d", len(r.frames))
}

func newTestLoop(t *testing.T, logContent string, keys <-chan byte) (*Loop, *frameRecorder, string) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "dev.log")
	require.NoError(t, os.WriteFile(logPath, []byte(logContent), 0o644))

	provider := &loopProvider{
		samples: map[int32]stats.ProcessSample{42: {CPUPercent: 5}},
		system:  stats.SystemSample{CPUPercent: 10, MemUsedMB: 1024, MemTotalMB: 8192},
	}
	agg := stats.NewAggregator(provider, []stats.ServiceSpec{
		{Name: "wails3 dev", PID: 42},
		{Name: "vite", Pattern: "vite"},
	})

	recorder := &frameRecorder{}
	loop := NewLoop(Options{
		LogFile:    logPath,
		TailLines:  18,
		DBPath:     filepath.Join(dir, "miau.db"),
		Interval:   time.Second,
		Aggregator: agg,
		Dispatcher: NewDispatcher(logPath, filepath.Join(dir, "err.txt"), &fakeCopier{}, logger.Noop()),
		Renderer:   recorder,
		Keys:       keys,
		Out:        &bytes.Buffer{},
		Log:        logger.Noop(),
	})
	return loop, recorder, logPath
}

func TestStepRefreshesState(t *testing.T) {
	loop, recorder, _ := newTestLoop(t, "INFO starting\nERROR boom\n", nil)

	stop := loop.step(time.Now())
	assert.False(t, stop)

	require.Len(t, recorder.frames, 1)
	frame := recorder.frames[0]
	assert.Equal(t, []string{"INFO starting", "ERROR boom"}, frame.LogLines)
	assert.True(t, frame.HasError)
	assert.False(t, frame.DB.Exists)

	require.Len(t, frame.Services, 2)
	assert.True(t, frame.Services[0].Running)
	assert.False(t, frame.Services[1].Running)
	assert.True(t, frame.System.Known())
}

func TestStepAppliesInputBeforeRefresh(t *testing.T) {
	keys := make(chan byte, 1)
	keys <- KeyCopyError
	loop, recorder, _ := newTestLoop(t, "ERROR boom\n", keys)

	now := time.Now()
	loop.step(now)

	// The status message set by this tick's keypress is visible in this
	// tick's frame.
	require.Len(t, recorder.frames, 1)
	assert.Equal(t, "Error copied to clipboard", recorder.frames[0].Status.Text)
	assert.True(t, recorder.frames[0].Status.Visible(now))
}

func TestStepOneKeyPerTick(t *testing.T) {
	keys := make(chan byte, 2)
	keys <- 'x'
	keys <- KeyCopyError
	loop, recorder, _ := newTestLoop(t, "ERROR boom\n", keys)

	loop.step(time.Now())
	require.Len(t, recorder.frames, 1)
	assert.Empty(t, recorder.frames[0].Status.Text, "second key must wait for next tick")

	loop.step(time.Now())
	require.Len(t, recorder.frames, 2)
	assert.Equal(t, "Error copied to clipboard", recorder.frames[1].Status.Text)
}

func TestStepNoPendingInput(t *testing.T) {
	keys := make(chan byte, 1)
	loop, recorder, _ := newTestLoop(t, "INFO ok\n", keys)

	// Must not block on the empty channel.
	done := make(chan struct{})
	go func() {
		loop.step(time.Now())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("step blocked waiting for input")
	}
	assert.Len(t, recorder.frames, 1)
}

func TestStepInterruptKeyStops(t *testing.T) {
	keys := make(chan byte, 1)
	keys <- KeyInterrupt
	loop, recorder, _ := newTestLoop(t, "INFO ok\n", keys)

	stop := loop.step(time.Now())
	assert.True(t, stop)
	assert.Empty(t, recorder.frames, "no frame after interrupt")
}

func TestStepPicksUpLogGrowth(t *testing.T) {
	loop, recorder, logPath := newTestLoop(t, "INFO one\n", nil)

	loop.step(time.Now())
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("INFO two\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	loop.step(time.Now())

	require.Len(t, recorder.frames, 2)
	assert.Equal(t, []string{"INFO one"}, recorder.frames[0].LogLines)
	assert.Equal(t, []string{"INFO one", "INFO two"}, recorder.frames[1].LogLines)
}

func TestRunStopsOnCancel(t *testing.T) {
	loop, recorder, _ := newTestLoop(t, "INFO ok\n", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancellation")
	}
	assert.NotEmpty(t, recorder.frames, "initial frame renders before the first tick")
}

func TestRunStopsOnInterruptKey(t *testing.T) {
	keys := make(chan byte, 1)
	keys <- KeyInterrupt
	loop, _, _ := newTestLoop(t, "INFO ok\n", keys)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on interrupt key")
	}
}

// multilineRenderer emits a frame with LF-joined lines, as the lipgloss
// renderer does.
type multilineRenderer struct{}

func (multilineRenderer) Render(*State, int, time.Time) string {
	return "header\nservices\nlogs\nfooter\n"
}

func TestRenderRewritesLineBreaksForRawMode(t *testing.T) {
	out := &bytes.Buffer{}
	loop := NewLoop(Options{Renderer: multilineRenderer{}, Out: out})

	loop.render(time.Now())

	got := out.String()
	assert.Contains(t, got, "header\r\nservices\r\n")
	// The terminal is in raw mode when frames are written, so a bare LF
	// would leave the cursor mid-line.
	assert.Equal(t, strings.Count(got, "\n"), strings.Count(got, "\r\n"),
		"every line feed must carry a carriage return")
}

func TestStepClosedKeyChannel(t *testing.T) {
	keys := make(chan byte)
	close(keys)
	loop, recorder, _ := newTestLoop(t, "INFO ok\n", keys)

	stop := loop.step(time.Now())
	assert.False(t, stop)
	assert.Len(t, recorder.frames, 1)
}
