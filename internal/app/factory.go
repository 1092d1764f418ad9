// Package app wires configuration, logging, styling and the history store
// into a ready-to-run dispatcher.
package app

import (
	"errors"
	"io"

	"github.com/footprint-tools/repl/internal/config"
	"github.com/footprint-tools/repl/internal/console"
	"github.com/footprint-tools/repl/internal/dispatchers"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/paths"
	"github.com/footprint-tools/repl/internal/store"
	"github.com/footprint-tools/repl/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	Prompt   string
	ExitOn   []string
	HelpFlag string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string // paths.LogFilePath() when empty

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// History options
	HistoryEnabled bool
	HistoryPath    string // paths.HistoryDBPath() when empty

	// Config is the file edited by the config command. Nil disables it.
	Config *config.Provider
	// WatchConfig reloads the prompt when Config's file changes.
	WatchConfig bool

	Input   io.Reader
	Surface console.Surface
}

// DefaultOptions reads the options from cfg. Malformed booleans keep their
// documented default.
func DefaultOptions(cfg *config.Provider) Options {
	all, _ := cfg.GetAll()

	prompt, _ := cfg.Get("prompt")
	helpFlag, _ := cfg.Get("help_flag")
	level, _ := cfg.Get("log_level")

	return Options{
		Prompt:         prompt,
		ExitOn:         config.List(cfg, "exit"),
		HelpFlag:       helpFlag,
		LogEnabled:     boolOr(cfg, "enable_log", false),
		LogLevel:       log.ParseLevel(level),
		StyleEnabled:   boolOr(cfg, "color", true),
		StyleConfig:    all,
		HistoryEnabled: boolOr(cfg, "history", true),
		Config:         cfg,
		WatchConfig:    boolOr(cfg, "reload", true),
	}
}

func boolOr(cfg domain.ConfigProvider, key string, def bool) bool {
	v, err := config.Bool(cfg, key)
	if err != nil {
		return def
	}
	return v
}

// Application is a dispatcher together with the resources it owns.
type Application struct {
	Dispatcher *dispatchers.Dispatcher
	Config     *config.Provider
	Logger     domain.Logger
	Styler     domain.Styler
	History    domain.HistoryStore // nil when history is disabled

	stopWatch func()
}

// New creates an Application with the built-in commands registered.
func New(opts Options) (*Application, error) {
	a := &Application{
		Config: opts.Config,
		Logger: newLogger(opts),
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)
	if style.Enabled() {
		a.Styler = style.NewStyler()
	} else {
		a.Styler = style.NopStyler{}
	}

	if opts.HistoryEnabled {
		dbPath := opts.HistoryPath
		if dbPath == "" {
			dbPath = paths.HistoryDBPath()
		}
		s, err := store.New(dbPath)
		if err != nil {
			_ = a.Logger.Close()
			return nil, err
		}
		a.History = s
	}

	d, err := dispatchers.New(dispatchers.Options{
		Prompt:         opts.Prompt,
		ExitOn:         opts.ExitOn,
		GlobalHelpFlag: opts.HelpFlag,
		Input:          opts.Input,
		Surface:        opts.Surface,
		Logger:         a.Logger,
		Styler:         a.Styler,
		History:        a.History,
	})
	if err != nil {
		_ = Close(a)
		return nil, err
	}
	a.Dispatcher = d

	if err := a.registerBuiltins(); err != nil {
		_ = Close(a)
		return nil, err
	}

	if opts.WatchConfig && a.Config != nil {
		a.watchConfig()
	}

	a.Logger.Debug("app: ready (history=%t, log level %s)", a.History != nil, opts.LogLevel)
	return a, nil
}

func newLogger(opts Options) domain.Logger {
	if !opts.LogEnabled {
		return log.NopLogger{}
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = paths.LogFilePath()
	}
	l, err := log.New(logPath, opts.LogLevel)
	if err != nil {
		return log.NopLogger{}
	}
	return l
}

// Close releases the logger and the history store.
func Close(a *Application) error {
	if a == nil {
		return nil
	}

	if a.stopWatch != nil {
		a.stopWatch()
	}

	var errs []error
	if a.History != nil {
		errs = append(errs, a.History.Close())
	}
	if a.Logger != nil {
		errs = append(errs, a.Logger.Close())
	}
	return errors.Join(errs...)
}
