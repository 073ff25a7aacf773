package config

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the configuration from path (optional, "" skips the file) and the
// environment, then validates it.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// Clean the path to prevent directory traversal attacks
		if err := cleanenv.ReadConfig(filepath.Clean(path), &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Usage writes the environment variable reference to w, after header.
func Usage(w io.Writer, header string) {
	var cfg Config
	cleanenv.FUsage(w, &cfg, &header)()
}
