package config

const (
	defaultConfigPath  = "~/.config/mojifix/config.toml"
	projectConfigName  = "mojifix.toml"
	defaultTarget      = "src/pages/Designer.jsx"
	defaultEncoding    = "utf-8"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultJournalPath = "~/.local/share/mojifix/journal.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Targets:  []string{defaultTarget},
		Encoding: defaultEncoding,
		Repair: Repair{
			Lenient: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Journal: Journal{
			Enabled: false,
			Path:    defaultJournalPath,
		},
	}
}
