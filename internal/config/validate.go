package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.JournalPath) == "" {
		return errors.New("paths.journal_path must not be empty")
	}
	if c.Sidecar.Extension == "" {
		return errors.New("sidecar.extension must not be empty")
	}
	if c.Sidecar.Extension == "." {
		return errors.New("sidecar.extension must name an extension, not a bare dot")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	return nil
}
