// Package tokenize splits a raw input line into arguments.
//
// The grammar is deliberately lenient: spaces separate tokens unless a
// double or single quote is open, quote characters never survive into a
// token, and an unterminated quote simply runs to the end of the line.
package tokenize

import "strings"

// Split returns the tokens of line. Blank input yields an empty slice.
func Split(line string) []string {
	tokens := []string{}
	if strings.TrimSpace(line) == "" {
		return tokens
	}

	var (
		current      strings.Builder
		insideDouble bool
		insideSingle bool
	)

	flush := func() {
		if tok, ok := clean(current.String()); ok {
			tokens = append(tokens, tok)
		}
		current.Reset()
	}

	for _, r := range line {
		switch {
		case r == ' ' && !insideDouble && !insideSingle:
			flush()
			continue
		case r == '"':
			insideDouble = !insideDouble
		case r == '\'':
			insideSingle = !insideSingle
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}

// clean strips quote characters and surrounding whitespace. A quoted empty
// string ("") is still a token.
func clean(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}
	return strings.TrimSpace(quotes.Replace(raw)), true
}

var quotes = strings.NewReplacer(`"`, "", `'`, "")
