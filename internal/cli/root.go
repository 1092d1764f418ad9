// Package cli builds the repl process: flags, configuration and the sample
// commands around the interactive dispatcher.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/footprint-tools/repl/internal/app"
	"github.com/footprint-tools/repl/internal/config"
	"github.com/footprint-tools/repl/internal/console"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/paths"
	"github.com/footprint-tools/repl/internal/ui"
)

type rootFlags struct {
	configPath string
	prompt     string
	helpFlag   string
	logLevel   string
	noColor    bool
	noHistory  bool
	noSamples  bool
}

// streams lets tests run the loop on in-memory input and output.
type streams struct {
	in      io.Reader
	surface console.Surface
	tty     bool
}

// NewRootCommand returns the repl command reading from stdin.
func NewRootCommand() *cobra.Command {
	term := ui.NewTerminal()
	return newRootCommand(streams{surface: term, tty: term.IsTTY()})
}

func newRootCommand(s streams) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "repl",
		Short:         "Interactive command prompt",
		Long:          "repl reads one command per line, validates its arguments and runs it.\nType 'help' at the prompt to list the commands.",
		Version:       app.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f, s)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "config file (default ~/.replrc)")
	fs.StringVar(&f.prompt, "prompt", "", "prompt symbol")
	fs.StringVar(&f.helpFlag, "help-flag", "", "flag that prints a command's usage")
	fs.StringVar(&f.logLevel, "log-level", "", "log to file at this level: debug, info, warn, error")
	fs.BoolVar(&f.noColor, "no-color", false, "disable coloured output")
	fs.BoolVar(&f.noHistory, "no-history", false, "do not record or list history")
	fs.BoolVar(&f.noSamples, "no-samples", false, "register only the built-in commands")

	return cmd
}

func run(cmd *cobra.Command, f rootFlags, s streams) error {
	configPath := f.configPath
	if configPath == "" {
		p, err := paths.ConfigFilePath()
		if err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
		configPath = p
	}

	opts := app.DefaultOptions(config.NewProvider(configPath))
	applyFlags(cmd.Flags(), f, &opts)
	if !s.tty {
		opts.StyleEnabled = false
	}
	opts.Input = s.in
	opts.Surface = s.surface

	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(a) }()

	if !f.noSamples {
		for _, spec := range BuildCommands() {
			if err := a.Dispatcher.Register(spec); err != nil {
				return fmt.Errorf("register %s: %w", spec.Name, err)
			}
		}
	}

	return a.Dispatcher.Run(cmd.Context())
}

// applyFlags lets explicitly given flags win over the config file.
func applyFlags(fs *pflag.FlagSet, f rootFlags, opts *app.Options) {
	if fs.Changed("prompt") {
		opts.Prompt = f.prompt
		opts.WatchConfig = false
	}
	if fs.Changed("help-flag") {
		opts.HelpFlag = f.helpFlag
	}
	if fs.Changed("log-level") {
		opts.LogEnabled = true
		opts.LogLevel = log.ParseLevel(f.logLevel)
	}
	if f.noColor {
		opts.StyleEnabled = false
	}
	if f.noHistory {
		opts.HistoryEnabled = false
	}
}

// Execute runs the repl command.
func Execute() error {
	return NewRootCommand().Execute()
}
