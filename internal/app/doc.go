// Package app wires configuration, logging, the property schema, the
// validator and metrics into one App. It is decoupled from any specific
// entrypoint; the cli package drives it.
package app
