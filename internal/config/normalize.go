package config

import "strings"

func (c *Config) normalize() error {
	var err error

	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	if c.Paths.JournalPath, err = expandPath(strings.TrimSpace(c.Paths.JournalPath)); err != nil {
		return err
	}

	c.Sidecar.Extension = strings.TrimSpace(c.Sidecar.Extension)
	if c.Sidecar.Extension != "" && !strings.HasPrefix(c.Sidecar.Extension, ".") {
		c.Sidecar.Extension = "." + c.Sidecar.Extension
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	return nil
}
