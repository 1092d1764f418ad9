// Package actions holds the actions behind the sample commands of the repl
// binary.
package actions

import (
	"context"
	"time"

	"github.com/footprint-tools/repl/internal/app"
	"github.com/footprint-tools/repl/internal/dispatchers"
)

// maxDelay bounds every wait a sample command schedules.
const maxDelay = 24 * time.Hour

type actionDependencies struct {
	Version func() string
	Sleep   func(ctx context.Context, d time.Duration) error
	Now     func() time.Time
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Version: func() string { return app.Version },
		Sleep:   sleep,
		Now:     time.Now,
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// delayOf converts n units to a duration. It fails for negative values and
// for anything past maxDelay, before the multiplication could overflow.
func delayOf(n int, unit time.Duration) (time.Duration, bool) {
	if n < 0 || n > int(maxDelay/unit) {
		return 0, false
	}
	return time.Duration(n) * unit, true
}

// reject prints why a value cannot be used and lets the session carry on.
func reject(inv *dispatchers.Invocation, msg string) error {
	inv.Out.Println(msg)
	return nil
}
