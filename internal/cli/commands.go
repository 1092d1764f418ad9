package cli

import (
	"time"

	"github.com/footprint-tools/repl/internal/actions"
	"github.com/footprint-tools/repl/internal/arguments"
	"github.com/footprint-tools/repl/internal/dispatchers"
)

const (
	parallelWorkers = 3
	parallelStep    = 300 * time.Millisecond
)

// BuildCommands declares the sample commands of the repl binary.
func BuildCommands() []dispatchers.CommandSpec {
	return []dispatchers.CommandSpec{
		{
			Name:    "version",
			Summary: "show the repl version",
			Actions: []dispatchers.Action{actions.ShowVersion},
		},
		{
			Name:    "echo",
			Summary: "print the text",
			Args: arguments.Options{
				Positionals: []arguments.ArgSpec{TextArg},
				Keyed:       []arguments.ArgSpec{TimesArg},
				Flags:       []arguments.ArgSpec{UpperFlag},
			},
			Actions: []dispatchers.Action{actions.Echo},
		},
		{
			Name:    "sum",
			Summary: "add two integers",
			Args: arguments.Options{
				Positionals: []arguments.ArgSpec{IntegerArg, IntegerArg},
			},
			Actions: []dispatchers.Action{actions.Sum},
		},
		{
			Name:    "paint",
			Summary: "label the text with a colour",
			Args: arguments.Options{
				Positionals: []arguments.ArgSpec{ColorArg, TextArg},
			},
			Actions: []dispatchers.Action{actions.Paint},
		},
		{
			Name:         "wait",
			Summary:      "hold the prompt for a while",
			Args:         arguments.Options{Positionals: []arguments.ArgSpec{MillisecondsArg}},
			AsyncActions: []dispatchers.AsyncAction{actions.Wait},
		},
		{
			Name:         "parallel",
			Summary:      "run three workers concurrently",
			AsyncActions: actions.Workers(parallelWorkers, parallelStep),
		},
		{
			Name:    "remind",
			Summary: "print a message later, without blocking the prompt",
			Args: arguments.Options{
				Positionals: []arguments.ArgSpec{TextArg},
				Keyed:       []arguments.ArgSpec{SecondsArg},
			},
			Actions: []dispatchers.Action{actions.Remind},
		},
	}
}
