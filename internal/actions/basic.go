package actions

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/repl/internal/dispatchers"
)

func ShowVersion(inv *dispatchers.Invocation) error {
	return showVersion(inv, defaultDeps())
}

func showVersion(inv *dispatchers.Invocation, deps actionDependencies) error {
	inv.Out.Printf("repl version %s\n", deps.Version())
	return nil
}

// Echo prints its text, upper-cased with -upper, repeated -times times.
func Echo(inv *dispatchers.Invocation) error {
	text := inv.Args.Positional(0)
	if inv.Args.HasFlag("-upper") {
		text = strings.ToUpper(text)
	}

	times, err := strconv.Atoi(inv.Args.KeyedOr("-times", "1"))
	if err != nil {
		return reject(inv, err.Error())
	}
	for range times {
		inv.Out.Println(text)
	}
	return nil
}

// Sum adds its two integer operands.
func Sum(inv *dispatchers.Invocation) error {
	a, err := strconv.ParseInt(inv.Args.Positional(0), 10, 64)
	if err != nil {
		return reject(inv, err.Error())
	}
	b, err := strconv.ParseInt(inv.Args.Positional(1), 10, 64)
	if err != nil {
		return reject(inv, err.Error())
	}
	if sum := a + b; (sum > a) == (b > 0) {
		inv.Out.Println(strconv.FormatInt(sum, 10))
		return nil
	}
	return reject(inv, "sum does not fit in 64 bits")
}

// Paint prints its text prefixed with the chosen colour name, normalised
// to lower case.
func Paint(inv *dispatchers.Invocation) error {
	inv.Out.Println(strings.ToLower(inv.Args.Positional(0)) + ": " + inv.Args.Positional(1))
	return nil
}
