// Package config defines the format-agnostic configuration model for the
// sysmlgraph tool, along with the Loader interface and its HCL and YAML
// implementations.
//
// The `config.Model` is the single source of truth for the app layer. A
// loader starts from Default, overlays whatever the file sets, and resolves
// relative manifest paths against the file's directory. Command-line flags
// are applied on top by the caller.
package config
