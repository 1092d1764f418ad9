// Package dispatchers implements the interactive command loop: commands are
// registered by name, each input line is tokenized, the first token selects
// the command and the rest are bound to its arguments.
package dispatchers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/repl/internal/console"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/tokenize"
	"github.com/footprint-tools/repl/internal/ui"
	"github.com/footprint-tools/repl/internal/ui/style"
	"github.com/footprint-tools/repl/internal/usage"
)

const (
	DefaultPrompt           = "> "
	defaultSuggestionsCount = 3
	helpCommandName         = "help"
	helpCommandSummary      = "display the available commands"
)

// UnrecognizedFunc is called when a line's first token matches no command.
type UnrecognizedFunc func(out console.Printer, token string)

// Options configures a Dispatcher. Zero values pick the defaults noted on
// each field.
type Options struct {
	Prompt         string       // "> "
	ExitOn         []string     // lines that end Run; none by default
	GlobalHelpFlag string       // replaces every command's help flag when set
	HelpCommand    *CommandSpec // replaces the built-in "help" command
	OnUnrecognized UnrecognizedFunc

	Input   io.Reader       // os.Stdin
	Surface console.Surface // ui.NewTerminal()
	Logger  domain.Logger   // log.NopLogger{}
	Styler  domain.Styler   // style.NopStyler{}
	History domain.HistoryStore
}

// Dispatcher owns the registered commands and runs the read loop.
type Dispatcher struct {
	mu       sync.RWMutex
	commands []*Command

	exitOn         map[string]struct{}
	helpFlag       string
	onUnrecognized UnrecognizedFunc
	input          io.Reader
	console        *console.Console
	logger         domain.Logger
	styler         domain.Styler
	history        domain.HistoryStore
}

// New creates a Dispatcher with the built-in help command registered.
func New(opts Options) (*Dispatcher, error) {
	d := &Dispatcher{
		exitOn:         make(map[string]struct{}, len(opts.ExitOn)),
		helpFlag:       opts.GlobalHelpFlag,
		onUnrecognized: opts.OnUnrecognized,
		input:          opts.Input,
		logger:         opts.Logger,
		styler:         opts.Styler,
		history:        opts.History,
	}

	for _, e := range opts.ExitOn {
		d.exitOn[e] = struct{}{}
	}
	if d.input == nil {
		d.input = os.Stdin
	}
	if d.logger == nil {
		d.logger = log.NopLogger{}
	}
	if d.styler == nil {
		d.styler = style.NopStyler{}
	}
	if d.onUnrecognized == nil {
		d.onUnrecognized = d.suggest
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	surface := opts.Surface
	if surface == nil {
		surface = ui.NewTerminal()
	}
	d.console = console.New(surface, prompt)

	help := d.helpCommand()
	if opts.HelpCommand != nil {
		help = *opts.HelpCommand
	}
	if err := d.Register(help); err != nil {
		return nil, fmt.Errorf("register help command: %w", err)
	}

	return d, nil
}

func (d *Dispatcher) helpCommand() CommandSpec {
	return CommandSpec{
		Name:    helpCommandName,
		Summary: helpCommandSummary,
		Actions: []Action{
			func(inv *Invocation) error {
				inv.Out.Println(d.styler.Muted(d.Usage()))
				return nil
			},
		},
	}
}

// Register builds and adds a command. A command whose name is already
// registered is ignored; the only error is an invalid declaration.
func (d *Dispatcher) Register(spec CommandSpec) error {
	cmd, err := newCommand(spec, d.helpFlag, d.styler)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.commands {
		if c.name == cmd.name {
			d.logger.Debug("dispatch: %s already registered, ignoring", cmd.name)
			return nil
		}
	}
	d.commands = append(d.commands, cmd)
	return nil
}

// Commands returns the registered commands in registration order.
func (d *Dispatcher) Commands() []*Command {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*Command(nil), d.commands...)
}

// Lookup finds a command by exact name.
func (d *Dispatcher) Lookup(name string) (*Command, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.commands {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Console returns the output mediator shared by the loop and the commands.
// Code running outside a command should write through it too.
func (d *Dispatcher) Console() *console.Console {
	return d.console
}

// Usage lists every registered command's usage.
func (d *Dispatcher) Usage() string {
	cmds := d.Commands()

	var sb strings.Builder
	for i, c := range cmds {
		sb.WriteString("\n")
		sb.WriteString(c.Usage())
		if i < len(cmds)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Run reads lines until an exit line, end of input or an action error.
// A context cancelled between lines stops the loop; a line already being
// read or executed is not interrupted.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.console.SetRunning(true)
	defer d.console.SetRunning(false)

	d.logger.Debug("dispatch: loop started")
	defer d.logger.Debug("dispatch: loop stopped")

	scanner := bufio.NewScanner(d.input)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.console.Prompt()
		ok := scanner.Scan()
		d.console.Submitted()
		if !ok {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if d.isExit(line) {
			return nil
		}

		if err := d.Dispatch(ctx, line); err != nil {
			return err
		}
	}
}

func (d *Dispatcher) isExit(line string) bool {
	_, ok := d.exitOn[line]
	return ok
}

// Dispatch evaluates one line. Usage problems are reported on the console
// and return nil; only action errors are returned.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) error {
	tokens := tokenize.Split(line)
	if len(tokens) == 0 {
		return nil
	}

	start := time.Now()
	d.console.BeginExecution()
	defer d.console.EndExecution()

	cmd, ok := d.Lookup(tokens[0])
	if !ok {
		d.logger.Debug("dispatch: unknown command %q", tokens[0])
		d.onUnrecognized(d.console, tokens[0])
		d.record(domain.HistoryEntry{
			ID:      uuid.New(),
			Line:    line,
			Outcome: domain.OutcomeUnknown,
		}, start)
		return nil
	}

	res, err := cmd.Execute(ctx, d.console, tokens[1:])
	d.record(domain.HistoryEntry{
		ID:      res.ID,
		Line:    line,
		Command: cmd.name,
		Outcome: res.Outcome,
	}, start)

	if err != nil {
		d.logger.Error("dispatch: %s [%s] failed: %v", cmd.name, res.ID, err)
		return fmt.Errorf("%s: %w", cmd.name, err)
	}

	d.logger.Debug("dispatch: %s [%s] %s in %s", cmd.name, res.ID, res.Outcome, time.Since(start))
	return nil
}

func (d *Dispatcher) record(entry domain.HistoryEntry, start time.Time) {
	if d.history == nil {
		return
	}
	entry.Timestamp = start
	entry.Duration = time.Since(start)
	if err := d.history.Record(entry); err != nil {
		d.logger.Warn("dispatch: could not record history: %v", err)
	}
}

func (d *Dispatcher) suggest(out console.Printer, token string) {
	suggestions := FindSimilarCommands(token, d.Commands(), defaultSuggestionsCount)
	out.Println(d.styler.Error(usage.UnknownCommand(token, suggestions...).Error()))
}
