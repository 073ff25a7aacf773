package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const redacted = "[REDACTED]"

// Redacted returns a copy of cfg with every secret replaced.
func (c Config) Redacted() Config {
	out := c
	out.Dashboard.Queries = append([]string(nil), c.Dashboard.Queries...)
	if out.GitHub.ClientSecret != "" {
		out.GitHub.ClientSecret = redacted
	}
	if out.Session.Secret != "" {
		out.Session.Secret = redacted
	}
	return out
}

// Dump writes the redacted configuration to w as YAML.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Redacted()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
