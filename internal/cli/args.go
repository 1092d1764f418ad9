package cli

import "github.com/footprint-tools/repl/internal/arguments"

var (
	TextArg = arguments.ArgSpec{
		Description: "text to print",
	}

	// Eighteen digits keep any sum of two operands inside int64.
	IntegerArg = arguments.ArgSpec{
		Description: "an integer of up to 18 digits",
		Pattern:     `^-?[0-9]{1,18}$`,
	}

	MillisecondsArg = arguments.ArgSpec{
		Description: "milliseconds, up to 8 digits",
		Pattern:     `^[0-9]{1,8}$`,
	}

	ColorArg = arguments.ArgSpec{
		Description: "colour name",
		Allowed:     []string{"red", "green", "blue"},
		IgnoreCase:  true,
	}

	TimesArg = arguments.ArgSpec{
		Key:         "-times",
		Description: "repeat count",
		Pattern:     `^[1-9][0-9]?$`,
	}

	UpperFlag = arguments.ArgSpec{
		Key:         "-upper",
		Description: "upper-case the text",
	}

	SecondsArg = arguments.ArgSpec{
		Key:         "-in",
		Description: "delay in seconds, up to 5 digits (default 5)",
		Pattern:     `^[0-9]{1,5}$`,
	}
)
