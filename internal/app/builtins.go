package app

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/footprint-tools/repl/internal/arguments"
	"github.com/footprint-tools/repl/internal/dispatchers"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/format"
)

const (
	defaultHistoryCount = "20"
	configKeyPattern    = `^[a-z_]+$`
)

func (a *Application) registerBuiltins() error {
	if a.History != nil {
		if err := a.Dispatcher.Register(a.historyCommand()); err != nil {
			return fmt.Errorf("register history command: %w", err)
		}
	}
	if a.Config != nil {
		if err := a.Dispatcher.Register(a.configCommand()); err != nil {
			return fmt.Errorf("register config command: %w", err)
		}
	}
	return nil
}

func (a *Application) historyCommand() dispatchers.CommandSpec {
	return dispatchers.CommandSpec{
		Name:    "history",
		Summary: "list recently dispatched lines",
		Args: arguments.Options{
			Keyed: []arguments.ArgSpec{
				{Key: "-n", Description: "number of lines (default " + defaultHistoryCount + ")", Pattern: `^[0-9]{1,9}$`},
			},
			Flags: []arguments.ArgSpec{
				{Key: "-clear", Description: "delete the recorded history"},
			},
		},
		Actions: []dispatchers.Action{a.showHistory},
	}
}

func (a *Application) showHistory(inv *dispatchers.Invocation) error {
	if inv.Args.HasFlag("-clear") {
		n, err := a.History.Clear()
		if err != nil {
			return err
		}
		inv.Out.Println(a.Styler.Success(fmt.Sprintf("cleared %d entries", n)))
		return nil
	}

	limit, err := strconv.Atoi(inv.Args.KeyedOr("-n", defaultHistoryCount))
	if err != nil {
		return err
	}

	entries, err := a.History.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		inv.Out.Println(a.Styler.Muted("no history"))
		return nil
	}

	now := time.Now()
	for _, e := range entries {
		inv.Out.Println(fmt.Sprintf("%s  %s  %s  %s",
			a.Styler.Muted(format.Stamp(e.Timestamp, now)),
			a.styleOutcome(e.Outcome),
			a.Styler.Muted(fmt.Sprintf("%6s", format.Duration(e.Duration))),
			e.Line,
		))
	}
	return nil
}

func (a *Application) styleOutcome(o domain.Outcome) string {
	label := fmt.Sprintf("%-7s", o)
	switch o {
	case domain.OutcomeOK:
		return a.Styler.Success(label)
	case domain.OutcomeHelp:
		return a.Styler.Info(label)
	case domain.OutcomeInvalid, domain.OutcomeUnknown:
		return a.Styler.Warning(label)
	default:
		return a.Styler.Error(label)
	}
}

func (a *Application) configCommand() dispatchers.CommandSpec {
	return dispatchers.CommandSpec{
		Name:    "config",
		Summary: "show or edit settings; with reload on, prompt changes apply at once",
		Args: arguments.Options{
			Keyed: []arguments.ArgSpec{
				{Key: "-get", Description: "print one setting", Pattern: configKeyPattern},
				{Key: "-set", Description: "store key=value", Pattern: `^[a-z_]+=`},
				{Key: "-unset", Description: "remove a setting", Pattern: configKeyPattern},
			},
		},
		Actions: []dispatchers.Action{a.editConfig},
	}
}

func (a *Application) editConfig(inv *dispatchers.Invocation) error {
	if key, ok := inv.Args.Keyed("-get"); ok {
		value, found := a.Config.Get(key)
		if !found {
			inv.Out.Println(a.Styler.Warning(key + " is not set"))
			return nil
		}
		inv.Out.Println(key + "=" + value)
		return nil
	}

	if pair, ok := inv.Args.Keyed("-set"); ok {
		key, value, _ := strings.Cut(pair, "=")
		if err := a.Config.Set(key, value); err != nil {
			return err
		}
		inv.Out.Println(a.Styler.Success(key + " saved to " + a.Config.Path()))
		return nil
	}

	if key, ok := inv.Args.Keyed("-unset"); ok {
		removed, err := a.Config.Unset(key)
		if err != nil {
			return err
		}
		if removed {
			inv.Out.Println(a.Styler.Success(key + " removed"))
		} else {
			inv.Out.Println(a.Styler.Muted(key + " was not set"))
		}
		return nil
	}

	all, err := a.Config.GetAll()
	if err != nil {
		inv.Out.Println(a.Styler.Warning(err.Error()))
	}
	for _, key := range configKeyOrder(all) {
		inv.Out.Println(key + "=" + all[key])
	}
	return nil
}

// configKeyOrder lists declared keys first, in declaration order, then any
// other keys found in the file sorted by name.
func configKeyOrder(all map[string]string) []string {
	keys := make([]string, 0, len(all))
	for _, k := range domain.ConfigKeys {
		keys = append(keys, k.Name)
	}

	var extra []string
	for k := range all {
		if _, declared := domain.ConfigKeyByName(k); !declared {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}
