package config

const (
	defaultLogDir           = "~/.local/share/phototime/logs"
	defaultJournalPath      = "~/.local/share/phototime/journal.db"
	defaultSidecarExtension = ".json"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			JournalPath: defaultJournalPath,
		},
		Sidecar: Sidecar{
			Extension: defaultSidecarExtension,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
