package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/sysmlgraph/internal/config"
)

// Config holds the command-line inputs of an App. Non-empty log fields
// override the values from the configuration file.
type Config struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// resolve loads the configuration file, if any, applies the overrides and
// validates the result.
func (c *Config) resolve(ctx context.Context) (*config.Model, error) {
	m := config.Default()
	if c.ConfigPath != "" {
		loaded, err := config.Load(ctx, c.ConfigPath)
		if err != nil {
			return nil, err
		}
		m = loaded
	}

	if c.LogLevel != "" {
		m.Log.Level = strings.ToLower(c.LogLevel)
	}
	if c.LogFormat != "" {
		m.Log.Format = strings.ToLower(c.LogFormat)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return m, nil
}
