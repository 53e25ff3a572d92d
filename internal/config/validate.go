package config

import (
	"fmt"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}
	if c.Dictionary.Watch && c.Dictionary.Debounce <= 0 {
		return fmt.Errorf("dictionary.debounce must be > 0 when watching (got %s)", c.Dictionary.Debounce)
	}
	switch strings.ToLower(c.Gloss.Precision) {
	case "regular", "short", "full":
	default:
		return fmt.Errorf("gloss.precision must be regular, short or full (got %q)", c.Gloss.Precision)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}
