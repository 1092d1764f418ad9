package config

import "strings"

// Set replaces the first line assigning key, or appends a new one. It
// reports whether the key was already present.
func Set(lines []string, key, value string) ([]string, bool) {
	value = quote(value)

	for i, line := range lines {
		if k, ok := keyOf(line); ok && k == key {
			lines[i] = key + "=" + value
			return lines, true
		}
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line that assigns key.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if k, ok := keyOf(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

func keyOf(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	key, _, ok := strings.Cut(trimmed, "=")
	return strings.TrimSpace(key), ok
}
