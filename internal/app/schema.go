package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/sysmlgraph/internal/ctxlog"
	"github.com/specialistvlad/sysmlgraph/internal/fsutil"
	"github.com/specialistvlad/sysmlgraph/internal/props"
)

// loadSchema layers the given manifests over the built-in schema, in order.
// A directory stands for every .hcl file below it.
func loadSchema(ctx context.Context, manifests []string) (*props.Schema, error) {
	logger := ctxlog.FromContext(ctx)

	s, err := props.LoadDefault()
	if err != nil {
		return nil, err
	}
	files, err := fsutil.ExpandPaths(manifests, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to read property manifest: %w", err)
	}
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read property manifest: %w", err)
		}
		extended, diags := s.Extend(src, path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to load property manifest %s: %w", path, diags)
		}
		s = extended
		logger.Debug("Property manifest loaded.", "path", path)
	}
	return s, nil
}
