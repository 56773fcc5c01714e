package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/miaudev/miaumon/internal/clipboard"
	"github.com/miaudev/miaumon/internal/logger"
	"github.com/miaudev/miaumon/internal/logtail"
)

// Recognized keys. The terminal is in raw mode, so Ctrl+C arrives as a
// byte rather than a signal and is treated as the interrupt.
const (
	KeyCopyError      = 'e'
	KeyCopyErrorUpper = 'E'
	KeyInterrupt      = 0x03 // Ctrl+C
)

// Dispatcher maps keypresses to state mutations. The only action in this
// tool is "extract the last error": re-read the full log, run extraction,
// copy to the clipboard, and fall back to a dump file when the copy fails.
// Each press re-reads and re-extracts independently; extraction is cheap
// and stateless, so rapid repeats need no debouncing.
type Dispatcher struct {
	logPath   string
	errorPath string
	copier    clipboard.Copier
	log       logger.Logger
}

// NewDispatcher creates a dispatcher reading the log at logPath and dumping
// to errorPath when the clipboard is unavailable.
func NewDispatcher(logPath, errorPath string, copier clipboard.Copier, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		logPath:   logPath,
		errorPath: errorPath,
		copier:    copier,
		log:       log,
	}
}

// HandleKey applies the action bound to key, mutating s. Unrecognized keys
// are no-ops. Every recognized branch stamps a status message with now.
func (d *Dispatcher) HandleKey(key byte, now time.Time, s *State) {
	switch key {
	case KeyCopyError, KeyCopyErrorUpper:
		d.copyLastError(now, s)
	}
}

func (d *Dispatcher) copyLastError(now time.Time, s *State) {
	text := logtail.ReadFull(d.logPath)
	block, found := logtail.ExtractLastError(text)
	if !found {
		s.SetStatus("No error found", now)
		return
	}

	joined := strings.Join(block, "\n")
	if err := d.copier.Copy(joined); err == nil {
		s.SetStatus("Error copied to clipboard", now)
		return
	}

	d.log.Debug("clipboard copy failed, saving to %s", d.errorPath)
	if path := clipboard.SaveToFile(d.errorPath, joined); path != "" {
		s.SetStatus(fmt.Sprintf("Error saved to %s", path), now)
		return
	}
	s.SetStatus("Could not copy or save error", now)
}
