package query

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
	"github.com/zclconf/go-cty/cty"
)

// SupertypeFiltered lists the elements whose kind is k or a subtype of k.
func SupertypeFiltered(g modelgraph.Reader, k kind.Kind) []element.ID {
	var out []element.ID
	for _, id := range g.Elements() {
		if e, _ := g.Get(id); e.Kind().IsSubtypeOf(k) {
			out = append(out, id)
		}
	}
	return out
}

// FindByName lists elements whose declared name equals name. When kinds are
// given, only elements conforming to one of them are listed.
func FindByName(g modelgraph.Reader, name string, kinds ...kind.Kind) []element.ID {
	return findNamed(g, kinds, func(n string) bool { return n == name })
}

// FindByNameContains is FindByName with substring matching.
func FindByNameContains(g modelgraph.Reader, substr string, kinds ...kind.Kind) []element.ID {
	return findNamed(g, kinds, func(n string) bool { return strings.Contains(n, substr) })
}

func findNamed(g modelgraph.Reader, kinds []kind.Kind, match func(string) bool) []element.ID {
	var out []element.ID
	for _, id := range g.Elements() {
		e, _ := g.Get(id)
		name, named := e.Name()
		if !named || !match(name) || !conformsToAny(e.Kind(), kinds) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func conformsToAny(k kind.Kind, kinds []kind.Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k.IsSubtypeOf(want) {
			return true
		}
	}
	return false
}

// FindByProperty lists elements whose property key holds a value equal to
// want. Equality is cty.Value.RawEquals.
func FindByProperty(g modelgraph.Reader, key string, want cty.Value) []element.ID {
	var out []element.ID
	for _, id := range g.Elements() {
		e, _ := g.Get(id)
		if v, ok := e.Property(key); ok && v.RawEquals(want) {
			out = append(out, id)
		}
	}
	return out
}

// MatchQualifiedName lists elements whose qualified name matches a glob
// pattern. Patterns use "::" between segments, "*" within a segment and
// "**" across any number of segments, e.g. "Vehicle::**::engine". A "/"
// inside a name is an ordinary character, so "Units::*" matches "Units::km/h".
func MatchQualifiedName(g modelgraph.Reader, pattern string) ([]element.ID, error) {
	glob := globPath(strings.Split(pattern, "::"))
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("invalid qualified name pattern %q", pattern)
	}

	var out []element.ID
	for _, id := range g.Elements() {
		qn, ok := QualifiedName(g, id)
		if !ok {
			continue
		}
		matched, err := doublestar.Match(glob, globPath(qn.Segments()))
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if matched {
			out = append(out, id)
		}
	}
	return out, nil
}

// slashStandIn replaces "/" within a segment before segments are joined
// into a doublestar path. U+FFFF is a noncharacter and never appears in
// declared names.
const slashStandIn = "\uFFFF"

func globPath(segments []string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = strings.ReplaceAll(s, "/", slashStandIn)
	}
	return strings.Join(escaped, "/")
}
