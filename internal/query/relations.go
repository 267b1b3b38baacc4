package query

import (
	"slices"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
	"github.com/zclconf/go-cty/cty"
)

// RelationshipsBetween lists relationships from source to target. A non-nil
// k keeps only relationships whose kind is k or a subtype of it.
func RelationshipsBetween(g modelgraph.Reader, source, target element.ID, k *kind.Kind) []element.ID {
	var out []element.ID
	for _, rid := range g.RelationshipsTouching(source) {
		r, _ := g.Relationship(rid)
		if r.Source() != source || r.Target() != target {
			continue
		}
		if k != nil && !r.Kind().IsSubtypeOf(*k) {
			continue
		}
		out = append(out, rid)
	}
	return out
}

// CountElementsByKind tallies elements by exact kind.
func CountElementsByKind(g modelgraph.Reader) map[kind.Kind]int {
	out := make(map[kind.Kind]int)
	for _, id := range g.Elements() {
		e, _ := g.Get(id)
		out[e.Kind()]++
	}
	return out
}

// CountRelationshipsByKind tallies relationships by exact kind.
func CountRelationshipsByKind(g modelgraph.Reader) map[kind.Kind]int {
	out := make(map[kind.Kind]int)
	for _, id := range g.Relationships() {
		r, _ := g.Relationship(id)
		out[r.Kind()]++
	}
	return out
}

// requirements lists requirement usages other than satisfy usages, which
// assert a requirement rather than state one.
func requirements(g modelgraph.Reader) []element.ID {
	var out []element.ID
	for _, id := range SupertypeFiltered(g, kind.RequirementUsage) {
		if e, _ := g.Get(id); !e.Kind().IsSubtypeOf(kind.SatisfyRequirementUsage) {
			out = append(out, id)
		}
	}
	return out
}

// ApplicableRequirements lists requirement usages whose "applicability"
// property is absent or reads "applicable" in either capitalization.
func ApplicableRequirements(g modelgraph.Reader) []element.ID {
	var out []element.ID
	for _, id := range requirements(g) {
		e, _ := g.Get(id)
		v, ok := e.Property("applicability")
		if !ok || v.IsNull() {
			out = append(out, id)
			continue
		}
		if v.IsKnown() && v.Type().Equals(cty.String) {
			if s := v.AsString(); s == "applicable" || s == "Applicable" {
				out = append(out, id)
			}
		}
	}
	return out
}

// UnverifiedRequirements lists requirement usages that no
// RequirementVerificationMembership targets.
func UnverifiedRequirements(g modelgraph.Reader) []element.ID {
	var out []element.ID
	for _, id := range requirements(g) {
		if len(VerifiersOf(g, id)) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// VerifiersOf lists the sources of the RequirementVerificationMemberships
// that target req.
func VerifiersOf(g modelgraph.Reader, req element.ID) []element.ID {
	var out []element.ID
	for _, rid := range g.RelationshipsTouching(req) {
		r, _ := g.Relationship(rid)
		if r.Target() == req && r.Kind().IsSubtypeOf(kind.RequirementVerificationMembership) {
			out = append(out, r.Source())
		}
	}
	return out
}

// SatisfiersOf lists the elements that satisfy req. A satisfaction is a
// SatisfyRequirementUsage whose ReferenceSubsetting targets req; the
// satisfying element is its "satisfyingFeature" property or, when that is
// absent, its owner.
func SatisfiersOf(g modelgraph.Reader, req element.ID) []element.ID {
	var out []element.ID
	for _, rid := range g.RelationshipsTouching(req) {
		r, _ := g.Relationship(rid)
		if r.Target() != req || !r.Kind().IsSubtypeOf(kind.ReferenceSubsetting) {
			continue
		}
		if by, ok := satisfier(g, r.Source()); ok && !slices.Contains(out, by) {
			out = append(out, by)
		}
	}
	return out
}

// SatisfiedBy lists the requirements that id satisfies, the inverse of
// SatisfiersOf.
func SatisfiedBy(g modelgraph.Reader, id element.ID) []element.ID {
	var out []element.ID
	for _, s := range SupertypeFiltered(g, kind.SatisfyRequirementUsage) {
		if by, ok := satisfier(g, s); !ok || by != id {
			continue
		}
		for _, rid := range g.RelationshipsTouching(s) {
			r, _ := g.Relationship(rid)
			if r.Source() != s || !r.Kind().IsSubtypeOf(kind.ReferenceSubsetting) {
				continue
			}
			if t, ok := g.Get(r.Target()); ok && t.Kind().IsSubtypeOf(kind.RequirementUsage) && !slices.Contains(out, t.ID()) {
				out = append(out, t.ID())
			}
		}
	}
	return out
}

func satisfier(g modelgraph.Reader, id element.ID) (element.ID, bool) {
	e, ok := g.Get(id)
	if !ok || !e.Kind().IsSubtypeOf(kind.SatisfyRequirementUsage) {
		return element.Nil, false
	}
	if v, ok := e.Property("satisfyingFeature"); ok {
		if by, ok := element.RefFromValue(v); ok {
			return by, true
		}
	}
	return e.Owner()
}

// TraceRow is one line of a trace matrix.
type TraceRow struct {
	Source  element.ID
	Targets []element.ID
}

// TraceMatrix lists, for every element conforming to sourceKind, the
// elements conforming to targetKind that it reaches through a relationship
// of kind rel or a subtype of it. Sources without targets get an empty row.
func TraceMatrix(g modelgraph.Reader, sourceKind, rel, targetKind kind.Kind) []TraceRow {
	var rows []TraceRow
	for _, src := range SupertypeFiltered(g, sourceKind) {
		row := TraceRow{Source: src}
		for _, rid := range g.RelationshipsTouching(src) {
			r, _ := g.Relationship(rid)
			if r.Source() != src || !r.Kind().IsSubtypeOf(rel) {
				continue
			}
			if t, ok := g.Get(r.Target()); ok && t.Kind().IsSubtypeOf(targetKind) {
				row.Targets = append(row.Targets, r.Target())
			}
		}
		rows = append(rows, row)
	}
	return rows
}
