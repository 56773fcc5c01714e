package monitor

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/miaudev/miaumon/internal/errors"
)

// ANSI control sequences for the dashboard's full-screen frames.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"

	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
)

// Terminal is the scoped raw-mode acquisition: raw mode and the alternate
// screen are entered once at startup and released exactly once on every
// exit path via Restore.
type Terminal struct {
	fd      int
	prev    *term.State
	out     io.Writer
	restore sync.Once
}

// EnterRaw puts the input terminal into raw mode and switches the frame
// writer to the alternate screen. The caller must defer Restore.
func EnterRaw(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerm,
			"Cannot put terminal into raw mode",
			"Run miaumon in an interactive terminal")
	}
	fmt.Fprint(out, enterAltScreen+hideCursor)
	return &Terminal{fd: fd, prev: prev, out: out}, nil
}

// Restore leaves the alternate screen and returns the terminal to its
// previous mode. Safe to call more than once; only the first call acts.
func (t *Terminal) Restore() {
	t.restore.Do(func() {
		fmt.Fprint(t.out, showCursor+exitAltScreen)
		_ = term.Restore(t.fd, t.prev)
	})
}

// Width returns the terminal width for out, or fallback when the size
// cannot be determined.
func Width(f *os.File, fallback int) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Keys starts the stdin reader goroutine and returns its channel. The
// reader forwards one byte per pending keypress; when the buffer is full,
// extra presses are dropped rather than ever blocking the reader. The
// channel closes when r reaches EOF or fails.
//
// The goroutine stays blocked in Read after the loop stops, so a byte
// typed during shutdown may be consumed here instead of reaching the
// restored terminal. The process exits immediately after, so the lost
// byte is accepted rather than plumbing a cancellable reader through.
func Keys(r io.Reader) <-chan byte {
	ch := make(chan byte, 8)
	go func() {
		defer close(ch)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			select {
			case ch <- buf[0]:
			default:
			}
		}
	}()
	return ch
}
