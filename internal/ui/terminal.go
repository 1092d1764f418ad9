package ui

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const defaultWidth = 80

// Terminal is the console surface backed by a writer, normally stdout.
// Line clearing only happens on a real terminal; redirected output gets
// plain lines.
type Terminal struct {
	out   io.Writer
	tty   bool
	width func() int
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithTTY overrides terminal detection.
func WithTTY(tty bool) TerminalOption {
	return func(t *Terminal) {
		t.tty = tty
	}
}

// WithWidth overrides the width used when blanking a line.
func WithWidth(width int) TerminalOption {
	return func(t *Terminal) {
		t.width = func() int { return width }
	}
}

// NewTerminal creates a Terminal that writes to stdout.
func NewTerminal(opts ...TerminalOption) *Terminal {
	return NewTerminalTo(os.Stdout, opts...)
}

// NewTerminalTo creates a Terminal that writes to out.
func NewTerminalTo(out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{out: out, width: func() int { return defaultWidth }}

	if f, ok := out.(*os.File); ok {
		fd := int(f.Fd())
		t.tty = term.IsTerminal(fd)
		t.width = func() int {
			w, _, err := term.GetSize(fd)
			if err != nil || w <= 0 {
				return defaultWidth
			}
			return w
		}
	}

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsTTY reports whether the surface is an interactive terminal.
func (t *Terminal) IsTTY() bool {
	return t.tty
}

// Write implements io.Writer.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ClearLine blanks the current line and returns the cursor to column 0.
func (t *Terminal) ClearLine() {
	if !t.tty {
		return
	}
	width := t.width()
	if width < 1 {
		width = defaultWidth
	}
	_, _ = io.WriteString(t.out, "\r"+strings.Repeat(" ", width-1)+"\r")
}
