// Package style renders prompt output in semantic roles (success, warning,
// muted usage text) using lipgloss. Nothing else in the module imports
// lipgloss.
//
// With styling off every role returns its input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
	roleCount
)

var (
	enabled bool
	styles  [roleCount]lipgloss.Style
)

// Init turns styling on or off and loads colour overrides from cfg
// (color_success, color_help, ...). A non-empty NO_COLOR or REPL_NO_COLOR
// keeps styling off whatever enable says.
func Init(enable bool, cfg map[string]string) {
	enabled = enable && os.Getenv("NO_COLOR") == "" && os.Getenv("REPL_NO_COLOR") == ""
	if !enabled {
		return
	}

	lipgloss.SetColorProfile(termenv.ANSI256)

	c := LoadColorConfig(cfg)
	for r, value := range [roleCount]string{
		roleSuccess: c.Success,
		roleWarning: c.Warning,
		roleError:   c.Error,
		roleInfo:    c.Info,
		roleMuted:   c.Help,
		roleHeader:  c.Header,
	} {
		styles[r] = styleFor(value)
	}
}

// styleFor turns "bold" or an ANSI palette index into a style.
func styleFor(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(r role, text string) string {
	if !enabled {
		return text
	}
	return styles[r].Render(text)
}

// Enabled reports whether Init left styling on.
func Enabled() bool { return enabled }

// Success marks a completed change, such as a saved setting.
func Success(text string) string { return render(roleSuccess, text) }

func Warning(text string) string { return render(roleWarning, text) }

// Error styles failure reasons and rejected values.
func Error(text string) string { return render(roleError, text) }

func Info(text string) string { return render(roleInfo, text) }

// Muted styles help and usage text.
func Muted(text string) string { return render(roleMuted, text) }

// Header styles command names in listings.
func Header(text string) string { return render(roleHeader, text) }
