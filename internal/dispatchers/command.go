package dispatchers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/footprint-tools/repl/internal/arguments"
	"github.com/footprint-tools/repl/internal/console"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/ui/style"
)

// DefaultHelpFlag prints a command's usage instead of running it.
const DefaultHelpFlag = "-h"

// Invocation is what every action of one Execute call receives.
type Invocation struct {
	ID      uuid.UUID
	Command string
	Args    *arguments.Bound
	Out     console.Printer
}

// Action runs on the dispatch goroutine, in declaration order.
type Action func(inv *Invocation) error

// AsyncAction runs concurrently with the other async actions of the same
// invocation.
type AsyncAction func(ctx context.Context, inv *Invocation) error

// UsageFunc renders a custom usage text for a command.
type UsageFunc func(c *Command) string

// CommandSpec declares a command.
type CommandSpec struct {
	Name         string
	Summary      string
	Args         arguments.Options
	HelpFlag     string // defaults to DefaultHelpFlag
	Usage        UsageFunc
	Actions      []Action
	AsyncActions []AsyncAction
}

// Command is a named unit of arguments and actions. It is immutable once
// built; each Execute binds into a fresh snapshot.
type Command struct {
	name         string
	summary      string
	binder       *arguments.Binder
	helpFlag     string
	usage        UsageFunc
	actions      []Action
	asyncActions []AsyncAction
	styler       domain.Styler
}

// Result describes how one Execute call ended.
type Result struct {
	ID      uuid.UUID
	Outcome domain.Outcome
	Fit     arguments.FitResult
}

// NewCommand builds a command with unstyled output.
func NewCommand(spec CommandSpec) (*Command, error) {
	return newCommand(spec, "", style.NopStyler{})
}

func newCommand(spec CommandSpec, helpFlag string, styler domain.Styler) (*Command, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("command has no name")
	}

	if helpFlag == "" {
		helpFlag = spec.HelpFlag
	}
	if helpFlag == "" {
		helpFlag = DefaultHelpFlag
	}

	opts := spec.Args
	opts.Flags = append(append([]arguments.ArgSpec(nil), opts.Flags...), arguments.ArgSpec{
		Key:         helpFlag,
		Description: "help",
	})

	binder, err := arguments.New(opts)
	if err != nil {
		return nil, fmt.Errorf("command %s: %w", spec.Name, err)
	}

	c := &Command{
		name:     spec.Name,
		summary:  spec.Summary,
		binder:   binder,
		helpFlag: helpFlag,
		usage:    spec.Usage,
		styler:   styler,
	}
	for _, a := range spec.Actions {
		if a != nil {
			c.actions = append(c.actions, a)
		}
	}
	for _, a := range spec.AsyncActions {
		if a != nil {
			c.asyncActions = append(c.asyncActions, a)
		}
	}
	return c, nil
}

// Name returns the key the command is dispatched on.
func (c *Command) Name() string { return c.name }

// Summary returns the one-line description.
func (c *Command) Summary() string { return c.summary }

// HelpFlag returns the flag that prints usage.
func (c *Command) HelpFlag() string { return c.helpFlag }

// Binder returns the argument declarations.
func (c *Command) Binder() *arguments.Binder { return c.binder }

// Usage renders the command's usage text.
func (c *Command) Usage() string {
	if c.usage != nil {
		return c.usage(c)
	}
	return "█ " + c.name + "\t" + c.summary + "\n" + c.binder.Usage()
}

// Execute binds tokens and runs the command.
//
// With the help flag present only the usage is printed. When the arguments
// do not fit, the reason, each rejected value and the usage are printed and
// no action runs. Neither case is an error.
//
// Otherwise the sync actions run in order, then the async actions are
// started together and Execute waits for all of them. An error from any
// action is returned as is; the first sync error stops the invocation.
func (c *Command) Execute(ctx context.Context, out console.Printer, tokens []string) (Result, error) {
	res := Result{ID: uuid.New()}
	bound := c.binder.Bind(tokens)

	if bound.HasFlag(c.helpFlag) {
		out.Println(c.styler.Muted(c.Usage()))
		res.Outcome = domain.OutcomeHelp
		return res, nil
	}

	res.Fit = c.binder.Fits(bound)
	if !res.Fit.OK {
		out.Println(c.styler.Error(res.Fit.Reason))
		for _, f := range res.Fit.Failures {
			out.Println(c.styler.Error(f.String()))
		}
		out.Println(c.styler.Muted("\nUsage: "))
		out.Println(c.styler.Muted(c.Usage()))
		res.Outcome = domain.OutcomeInvalid
		return res, nil
	}

	inv := &Invocation{
		ID:      res.ID,
		Command: c.name,
		Args:    bound,
		Out:     out,
	}
	if err := c.run(ctx, inv); err != nil {
		res.Outcome = domain.OutcomeFailed
		return res, err
	}

	res.Outcome = domain.OutcomeOK
	return res, nil
}

func (c *Command) run(ctx context.Context, inv *Invocation) error {
	for _, action := range c.actions {
		if err := action(inv); err != nil {
			return err
		}
	}

	var g errgroup.Group
	for _, action := range c.asyncActions {
		g.Go(func() error {
			return action(ctx, inv)
		})
	}
	return g.Wait()
}
