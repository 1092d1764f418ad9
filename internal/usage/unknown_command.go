package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the first token of a line matches no
// registered command. Suggestions, when present, are listed git-style.
func UnknownCommand(command string, suggestions ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s' is not a command. See 'help'.", command)

	switch len(suggestions) {
	case 0:
	case 1:
		b.WriteString("\n\nThe most similar command is\n")
		fmt.Fprintf(&b, "\t%s", suggestions[0])
	default:
		b.WriteString("\n\nThe most similar commands are")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "\n\t%s", s)
		}
	}

	return &Error{
		Kind:    ErrUnknownCommand,
		Message: b.String(),
	}
}
