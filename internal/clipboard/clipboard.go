// Package clipboard writes text to the system clipboard over OSC 52.
//
// The viewer runs inside a terminal, so clipboard access goes through the
// terminal's escape-sequence channel rather than a desktop API. Whether
// the write actually lands is up to the emulator and its permission
// settings; failures the terminal swallows silently are invisible here,
// which matches the best-effort contract of the copy feature.
package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no terminal is attached to write the
// sequence to.
var ErrUnavailable = errors.New("clipboard unavailable: no terminal")

// Copier writes whole strings to a clipboard. The TUI depends on this
// interface so tests can substitute a recorder.
type Copier interface {
	Copy(text string) error
}

// OSC52Copier emits OSC 52 sequences to a terminal writer, wrapping them
// for tmux or screen when the environment says the session is multiplexed.
type OSC52Copier struct {
	out  io.Writer
	term string
}

// New creates a Copier writing to stderr, which stays attached to the
// terminal while bubbletea drives stdout.
func New() *OSC52Copier {
	return &OSC52Copier{out: os.Stderr, term: os.Getenv("TERM")}
}

// NewWriter creates a Copier with an explicit writer and TERM value.
func NewWriter(w io.Writer, term string) *OSC52Copier {
	return &OSC52Copier{out: w, term: term}
}

// Copy writes text to the system clipboard.
func (c *OSC52Copier) Copy(text string) error {
	if c.out == nil {
		return ErrUnavailable
	}
	seq := osc52.New(text)
	switch {
	case strings.HasPrefix(c.term, "screen"):
		seq = seq.Screen()
	case strings.HasPrefix(c.term, "tmux"), os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		return err
	}
	return nil
}
