package props

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed schema.hcl
var builtinManifest []byte

var (
	defaultOnce   sync.Once
	defaultSchema *Schema
	defaultErr    error
)

// Default returns the built-in schema. It is parsed on first use and shared
// afterwards. Default panics if the embedded manifest does not parse.
func Default() *Schema {
	s, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return s
}

// LoadDefault is Default with the parse error returned instead of raised.
func LoadDefault() (*Schema, error) {
	defaultOnce.Do(func() {
		s, diags := Parse(builtinManifest, "schema.hcl")
		if diags.HasErrors() {
			defaultErr = fmt.Errorf("built-in property schema: %w", diags)
			return
		}
		defaultSchema = s
	})
	return defaultSchema, defaultErr
}
