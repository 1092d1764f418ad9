package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in listings
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
var ConfigKeys = []ConfigKey{
	// Prompt
	{
		Name:        "prompt",
		Default:     "> ",
		Description: "Prompt symbol drawn before each line",
		Section:     "Prompt",
	},
	{
		Name:        "exit",
		Default:     "exit,quit",
		Description: "Comma separated lines that end the session",
		Section:     "Prompt",
	},
	{
		Name:        "help_flag",
		Default:     "-h",
		Description: "Flag that prints a command's usage instead of running it",
		Section:     "Prompt",
	},
	{
		Name:        "reload",
		Default:     "true",
		Description: "Apply prompt changes to the config file without restarting",
		Section:     "Prompt",
	},
	// Display
	{
		Name:        "color",
		Default:     "true",
		Description: "Colorize help and error output",
		Section:     "Display",
	},
	{
		Name:        "color_help",
		Default:     "",
		Description: "ANSI color for help and usage text (0-255 or bold)",
		Section:     "Display",
	},
	{
		Name:        "color_error",
		Default:     "",
		Description: "ANSI color for failure reasons (0-255 or bold)",
		Section:     "Display",
	},
	// History
	{
		Name:        "history",
		Default:     "true",
		Description: "Record dispatched lines and enable the history command",
		Section:     "History",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Write a debug log file",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
}

// ConfigKeyByName returns the key metadata for name.
func ConfigKeyByName(name string) (ConfigKey, bool) {
	for _, k := range ConfigKeys {
		if k.Name == name {
			return k, true
		}
	}
	return ConfigKey{}, false
}
