package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/sysmlgraph/internal/ctxlog"
)

// hclFile mirrors the block layout of an HCL configuration file. Every
// field is optional; unset fields keep their defaults.
type hclFile struct {
	Log        *hclLog        `hcl:"log,block"`
	Validation *hclValidation `hcl:"validation,block"`
	Schema     *hclSchema     `hcl:"schema,block"`
	Metrics    *hclMetrics    `hcl:"metrics,block"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclValidation struct {
	UnknownProperties *bool    `hcl:"unknown_properties,optional"`
	Orphans           *bool    `hcl:"orphans,optional"`
	DisabledChecks    []string `hcl:"disabled_checks,optional"`
}

type hclSchema struct {
	Manifests []string `hcl:"manifests,optional"`
}

type hclMetrics struct {
	Enabled *bool `hcl:"enabled,optional"`
}

// HCLLoader reads HCL configuration files.
type HCLLoader struct{}

func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load implements Loader. Syntax and decoding problems are returned as
// hcl.Diagnostics wrapped with the file name.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL configuration.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	m := Default()
	if raw.Log != nil {
		setIf(&m.Log.Level, raw.Log.Level)
		setIf(&m.Log.Format, raw.Log.Format)
	}
	if raw.Validation != nil {
		setIf(&m.Validation.UnknownProperties, raw.Validation.UnknownProperties)
		setIf(&m.Validation.Orphans, raw.Validation.Orphans)
		m.Validation.DisabledChecks = raw.Validation.DisabledChecks
	}
	if raw.Schema != nil {
		m.Schema.Manifests = raw.Schema.Manifests
	}
	if raw.Metrics != nil {
		setIf(&m.Metrics.Enabled, raw.Metrics.Enabled)
	}
	resolveManifests(m, path)

	logger.Debug("HCL configuration decoded.", "path", path, "manifests", len(m.Schema.Manifests))
	return m, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
