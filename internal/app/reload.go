package app

import (
	"context"

	"github.com/footprint-tools/repl/internal/config"
)

// watchConfig follows the config file until Close. A watcher that cannot
// start only costs live reloading.
func (a *Application) watchConfig() {
	w, err := config.NewWatcher(a.Config.Path())
	if err != nil {
		a.Logger.Warn("app: config reload disabled: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Run(ctx, a.reloadConfig); err != nil {
			a.Logger.Warn("app: config watcher stopped: %v", err)
		}
	}()

	a.stopWatch = func() {
		cancel()
		<-done
	}
}

func (a *Application) reloadConfig() {
	prompt, _ := a.Config.Get("prompt")
	c := a.Dispatcher.Console()
	if prompt == "" || prompt == c.PromptSymbol() {
		return
	}

	a.Logger.Info("app: prompt reloaded from %s", a.Config.Path())
	c.SetPrompt(prompt)
	c.Println(a.Styler.Muted("prompt reloaded from " + a.Config.Path()))
}
