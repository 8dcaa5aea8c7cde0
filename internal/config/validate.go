package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns must be >= min_conns (got %d < %d)", c.Database.MaxConns, c.Database.MinConns)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Check.validate(); err != nil {
		return fmt.Errorf("check: %w", err)
	}

	return nil
}

func (c *CheckConfig) validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}

	c.Samples = ParseSamples(c.SamplesRaw)
	if len(c.Samples) == 0 {
		return errors.New("samples must contain at least one value")
	}

	return nil
}

// ParseSamples splits a comma-separated list of sample values. Surrounding
// whitespace is trimmed and empty items are skipped; casing is kept.
func ParseSamples(raw string) []string {
	parts := strings.Split(raw, ",")
	samples := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		samples = append(samples, p)
	}

	return samples
}
