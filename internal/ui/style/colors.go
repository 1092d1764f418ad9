package style

import (
	"os"
	"strings"
)

// ColorConfig holds the ANSI color (or "bold") of each semantic style.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Help    string
	Header  string
}

// DefaultColors is used when nothing is configured.
var DefaultColors = ColorConfig{
	Success: "10",
	Warning: "11",
	Error:   "9",
	Info:    "14",
	Help:    "8",
	Header:  "bold",
}

// colorConfigKeys maps config keys to ColorConfig fields.
var colorConfigKeys = map[string]func(*ColorConfig) *string{
	"color_success": func(c *ColorConfig) *string { return &c.Success },
	"color_warning": func(c *ColorConfig) *string { return &c.Warning },
	"color_error":   func(c *ColorConfig) *string { return &c.Error },
	"color_info":    func(c *ColorConfig) *string { return &c.Info },
	"color_help":    func(c *ColorConfig) *string { return &c.Help },
	"color_header":  func(c *ColorConfig) *string { return &c.Header },
}

// LoadColorConfig applies overrides on top of DefaultColors. Environment
// variables (REPL_COLOR_HELP, ...) win over config values.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	result := DefaultColors

	for key, field := range colorConfigKeys {
		if v := os.Getenv("REPL_" + strings.ToUpper(key)); v != "" {
			*field(&result) = v
			continue
		}
		if v, ok := cfg[key]; ok && v != "" {
			*field(&result) = v
		}
	}

	return result
}
