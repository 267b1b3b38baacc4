package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/sysmlgraph/internal/ctxlog"
)

// ErrUnsupportedFormat is returned for files that no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and returns the resulting model. The
	// model is not validated.
	Load(ctx context.Context, path string) (*Model, error)
}

// LoaderFor picks a loader by file extension: .hcl for HCL, .yaml or .yml
// for YAML.
func LoaderFor(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return NewHCLLoader(), nil
	case ".yaml", ".yml":
		return NewYAMLLoader(), nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads path with the loader matching its extension and validates the
// result.
func Load(ctx context.Context, path string) (*Model, error) {
	loader, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	m, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Configuration loaded.", "path", path)
	return m, nil
}

// resolveManifests makes relative manifest paths relative to the directory
// of the configuration file.
func resolveManifests(m *Model, configPath string) {
	dir := filepath.Dir(configPath)
	for i, p := range m.Schema.Manifests {
		if p != "" && !filepath.IsAbs(p) {
			m.Schema.Manifests[i] = filepath.Join(dir, p)
		}
	}
}
