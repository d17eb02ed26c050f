package config

const (
	defaultConfigPath          = "~/.config/recetin/config.toml"
	projectConfigName          = "recetin.toml"
	defaultDataDir             = "~/.local/share/recetin"
	defaultLogDir              = "~/.local/share/recetin/logs"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultNotifyTimeout       = 10
	defaultDisplayColor        = "auto"
	defaultDisplayPreviewChars = 48
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
			Saved:          true,
			Deleted:        true,
			Imported:       true,
			Errors:         true,
		},
		Display: Display{
			Color:         defaultDisplayColor,
			PreviewLength: defaultDisplayPreviewChars,
		},
	}
}
