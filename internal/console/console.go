// Package console arbitrates the shared terminal between the dispatch loop's
// prompt and output written by commands.
//
// While the loop is running and no command is executing, any line written
// is unsolicited: the prompt already drawn is erased, the line is written
// and the prompt is redrawn under it. While a command executes it owns the
// terminal and lines go straight through.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// Surface is the terminal the console draws on.
type Surface interface {
	io.Writer
	// ClearLine erases the line the cursor is on and returns to column 0.
	ClearLine()
}

// Printer is what commands and actions write through.
type Printer interface {
	Println(a ...any)
	Printf(format string, a ...any)
}

// Console is the output mediator. It is safe for concurrent use; whole
// writes are serialised so concurrent actions never split each other's
// lines.
type Console struct {
	mu        sync.Mutex
	surface   Surface
	prompt    string
	drawn     bool // prompt on screen and no line submitted since
	running   atomic.Bool
	executing atomic.Bool
}

// New creates a Console drawing prompt on surface.
func New(surface Surface, prompt string) *Console {
	return &Console{surface: surface, prompt: prompt}
}

// PromptSymbol returns the prompt drawn before each read.
func (c *Console) PromptSymbol() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prompt
}

// SetPrompt replaces the prompt from the next redraw on.
func (c *Console) SetPrompt(prompt string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompt = prompt
}

// SetRunning marks the lifetime of the read loop.
func (c *Console) SetRunning(running bool) { c.running.Store(running) }

// Running reports whether the read loop is active.
func (c *Console) Running() bool { return c.running.Load() }

// BeginExecution hands the terminal to a command.
func (c *Console) BeginExecution() { c.executing.Store(true) }

// EndExecution takes the terminal back from a command.
func (c *Console) EndExecution() { c.executing.Store(false) }

// Executing reports whether a command currently owns the terminal.
func (c *Console) Executing() bool { return c.executing.Load() }

// Prompt draws the prompt symbol unless unsolicited output already
// redrew it.
func (c *Console) Prompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drawn {
		return
	}
	_, _ = io.WriteString(c.surface, c.prompt)
	c.drawn = true
}

// Submitted records that the line typed at the prompt has been read.
func (c *Console) Submitted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drawn = false
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...any) {
	c.emit(fmt.Sprintln(a...))
}

// Printf writes formatted text. Unsolicited text is always terminated with a
// newline before the prompt is redrawn.
func (c *Console) Printf(format string, a ...any) {
	c.emit(fmt.Sprintf(format, a...))
}

// Write implements io.Writer with the same mediation as Printf.
func (c *Console) Write(p []byte) (int, error) {
	c.emit(string(p))
	return len(p), nil
}

func (c *Console) emit(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running.Load() || c.executing.Load() {
		_, _ = io.WriteString(c.surface, text)
		return
	}

	c.surface.ClearLine()
	_, _ = io.WriteString(c.surface, text)
	if !strings.HasSuffix(text, "\n") {
		_, _ = io.WriteString(c.surface, "\n")
	}
	_, _ = io.WriteString(c.surface, c.prompt)
	c.drawn = true
}

// Verify Console implements Printer and io.Writer
var (
	_ Printer   = (*Console)(nil)
	_ io.Writer = (*Console)(nil)
)
