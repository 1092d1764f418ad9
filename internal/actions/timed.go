package actions

import (
	"context"
	"strconv"
	"time"

	"github.com/footprint-tools/repl/internal/dispatchers"
	"github.com/footprint-tools/repl/internal/format"
)

// Wait blocks the prompt for the given number of milliseconds.
func Wait(ctx context.Context, inv *dispatchers.Invocation) error {
	return wait(ctx, inv, defaultDeps())
}

func wait(ctx context.Context, inv *dispatchers.Invocation, deps actionDependencies) error {
	ms, err := strconv.Atoi(inv.Args.Positional(0))
	if err != nil {
		return reject(inv, err.Error())
	}
	d, ok := delayOf(ms, time.Millisecond)
	if !ok {
		return reject(inv, "cannot wait longer than 24h")
	}

	start := deps.Now()
	if err := deps.Sleep(ctx, d); err != nil {
		return err
	}
	inv.Out.Println("waited " + format.Duration(deps.Now().Sub(start)))
	return nil
}

// Workers returns n async actions. Worker i sleeps i*step and reports;
// the prompt returns once the slowest is done.
func Workers(n int, step time.Duration) []dispatchers.AsyncAction {
	return workers(n, step, defaultDeps())
}

func workers(n int, step time.Duration, deps actionDependencies) []dispatchers.AsyncAction {
	out := make([]dispatchers.AsyncAction, n)
	for i := range n {
		delay := time.Duration(i+1) * step
		out[i] = func(ctx context.Context, inv *dispatchers.Invocation) error {
			if err := deps.Sleep(ctx, delay); err != nil {
				return err
			}
			inv.Out.Printf("worker %d done after %s\n", i+1, format.Duration(delay))
			return nil
		}
	}
	return out
}

// Remind returns immediately and prints a message after -in seconds,
// while the prompt is idle or busy.
func Remind(inv *dispatchers.Invocation) error {
	return remind(inv, defaultDeps())
}

func remind(inv *dispatchers.Invocation, deps actionDependencies) error {
	seconds, err := strconv.Atoi(inv.Args.KeyedOr("-in", "5"))
	if err != nil {
		return reject(inv, err.Error())
	}
	delay, ok := delayOf(seconds, time.Second)
	if !ok {
		return reject(inv, "cannot remind more than 24h ahead")
	}
	message := inv.Args.Positional(0)

	inv.Out.Println("reminder set for " + format.Duration(delay) + " from now")
	go func() {
		if err := deps.Sleep(context.Background(), delay); err != nil {
			return
		}
		inv.Out.Println("reminder: " + message)
	}()
	return nil
}
