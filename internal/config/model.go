package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/sysmlgraph/internal/validate"
)

// Model is the unified, format-agnostic representation of the tool's
// configuration.
type Model struct {
	Log        LogConfig        `yaml:"log"`
	Validation ValidationConfig `yaml:"validation"`
	Schema     SchemaConfig     `yaml:"schema"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// ValidationConfig maps onto validate options.
type ValidationConfig struct {
	UnknownProperties bool     `yaml:"unknown_properties"`
	Orphans           bool     `yaml:"orphans"`
	DisabledChecks    []string `yaml:"disabled_checks"`
}

// SchemaConfig lists property manifests layered over the built-in schema,
// in order.
type SchemaConfig struct {
	Manifests []string `yaml:"manifests"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is given.
func Default() *Model {
	return &Model{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Validation: ValidationConfig{
			UnknownProperties: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks that every field holds an allowed value. All problems are
// reported together.
func (m *Model) Validate() error {
	var errs []error
	switch m.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q: must be 'debug', 'info', 'warn', or 'error'", m.Log.Level))
	}
	if m.Log.Format != "text" && m.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format %q: must be 'text' or 'json'", m.Log.Format))
	}
	for _, name := range m.Validation.DisabledChecks {
		if !slices.Contains(validate.Codes(), validate.Code(name)) {
			errs = append(errs, fmt.Errorf("validation.disabled_checks: unknown check %q", name))
		}
	}
	for i, path := range m.Schema.Manifests {
		if path == "" {
			errs = append(errs, fmt.Errorf("schema.manifests[%d]: empty path", i))
		}
	}
	return errors.Join(errs...)
}

// ValidatorOptions translates the validation section into validate options.
func (m *Model) ValidatorOptions() []validate.Option {
	opts := []validate.Option{
		validate.WithUnknownProperties(m.Validation.UnknownProperties),
		validate.WithOrphanCheck(m.Validation.Orphans),
	}
	if len(m.Validation.DisabledChecks) > 0 {
		codes := make([]validate.Code, len(m.Validation.DisabledChecks))
		for i, name := range m.Validation.DisabledChecks {
			codes[i] = validate.Code(name)
		}
		opts = append(opts, validate.WithDisabledChecks(codes...))
	}
	return opts
}
