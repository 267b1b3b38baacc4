package validate

import (
	"fmt"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/specialistvlad/sysmlgraph/internal/props"
	"github.com/zclconf/go-cty/cty"
)

// kindOf resolves an endpoint, which may be an element or a relationship.
func (p *pass) kindOf(id element.ID) (kind.Kind, bool) {
	if e, ok := p.g.Get(id); ok {
		return e.Kind(), true
	}
	if r, ok := p.g.Relationship(id); ok {
		return r.Kind(), true
	}
	return kind.Invalid, false
}

func (p *pass) checkRelationshipTypes() {
	for _, rid := range p.g.Relationships() {
		r, _ := p.g.Relationship(rid)
		wantSource, _ := r.Kind().RelationshipSourceType()
		wantTarget, _ := r.Kind().RelationshipTargetType()

		ends := []struct {
			end  Endpoint
			id   element.ID
			want kind.Kind
		}{
			{EndpointSource, r.Source(), wantSource},
			{EndpointTarget, r.Target(), wantTarget},
		}
		for _, e := range ends {
			got, ok := p.kindOf(e.id)
			if !ok || got.IsSubtypeOf(e.want) {
				continue
			}
			p.report(Diagnostic{
				Code:     CodeRelationshipTypeMismatch,
				Severity: SeverityError,
				Subject:  rid,
				Related:  []element.ID{e.id},
				Message:  fmt.Sprintf("%s %s must be a %s, got %s", r.Kind(), e.end, e.want, got),
				Endpoint: e.end,
				Expected: e.want,
				Actual:   got,
			})
		}
	}
}

// checkDuplicateNames treats the roots as one scope, then every owner in
// element insertion order. Unnamed members never clash.
func (p *pass) checkDuplicateNames() {
	p.duplicatesIn(p.g.Roots())
	for _, owner := range p.g.Elements() {
		p.duplicatesIn(p.g.OwnedChildren(owner))
	}
}

func (p *pass) duplicatesIn(members []element.ID) {
	if len(members) < 2 {
		return
	}
	first := make(map[string]element.ID, len(members))
	for _, id := range members {
		e, _ := p.g.Get(id)
		name, named := e.Name()
		if !named {
			continue
		}
		prev, seen := first[name]
		if !seen {
			first[name] = id
			continue
		}
		p.report(Diagnostic{
			Code:     CodeDuplicateDefinition,
			Severity: SeverityError,
			Subject:  id,
			Related:  []element.ID{prev},
			Message:  fmt.Sprintf("%q is already defined in this namespace", name),
		})
	}
}

type bag interface {
	Property(key string) (cty.Value, bool)
	PropertyKeys() []string
}

func (p *pass) checkProperties() {
	for _, id := range p.g.Elements() {
		e, _ := p.g.Get(id)
		p.propertiesOf(id, e.Kind(), &e.Bag)
	}
	for _, id := range p.g.Relationships() {
		r, _ := p.g.Relationship(id)
		p.propertiesOf(id, r.Kind(), &r.Bag)
	}
}

func (p *pass) propertiesOf(id element.ID, k kind.Kind, b bag) {
	declared := p.v.schema.Properties(k)
	known := make(map[string]bool, len(declared))
	for _, prop := range declared {
		known[prop.Name] = true
		v, present := b.Property(prop.Name)
		reason, ok := prop.Check(v, present, p.g.Contains)
		if ok {
			continue
		}
		p.report(invalidProperty(id, k, prop.Name, reason, describe(prop, reason, v)))
	}

	if !p.v.reportUnknown {
		return
	}
	for _, key := range b.PropertyKeys() {
		if !known[key] {
			p.report(invalidProperty(id, k, key, props.ReasonUnknown, ""))
		}
	}
}

func invalidProperty(id element.ID, k kind.Kind, name string, reason props.Reason, detail string) Diagnostic {
	msg := fmt.Sprintf("%s property %q: %s", k, name, reason)
	if detail != "" {
		msg += ": " + detail
	}
	return Diagnostic{
		Code:     CodeInvalidProperty,
		Severity: SeverityError,
		Subject:  id,
		Message:  msg,
		Property: name,
		Reason:   reason,
	}
}

func describe(prop props.Property, reason props.Reason, v cty.Value) string {
	switch reason {
	case props.ReasonTypeMismatch:
		return fmt.Sprintf("expected %s, got %s", prop.TypeName(), v.Type().FriendlyName())
	case props.ReasonInvalidValue:
		return fmt.Sprintf("%q is not a %s", v.AsString(), prop.Enum)
	default:
		return ""
	}
}

func (p *pass) checkDangling() {
	for _, rid := range p.g.Relationships() {
		r, _ := p.g.Relationship(rid)
		for _, end := range []struct {
			end Endpoint
			id  element.ID
		}{
			{EndpointSource, r.Source()},
			{EndpointTarget, r.Target()},
		} {
			if p.g.Contains(end.id) {
				continue
			}
			p.report(Diagnostic{
				Code:     CodeDanglingRelationship,
				Severity: SeverityError,
				Subject:  rid,
				Related:  []element.ID{end.id},
				Message:  fmt.Sprintf("%s %s %s is not in the graph", r.Kind(), end.end, end.id),
				Endpoint: end.end,
			})
		}
	}
}

func (p *pass) checkOrphans() {
	for _, id := range p.g.Roots() {
		e, _ := p.g.Get(id)
		if k := e.Kind(); k == kind.Namespace || k.IsSubtypeOf(kind.Package) {
			continue
		}
		p.report(Diagnostic{
			Code:     CodeOrphanElement,
			Severity: SeverityWarning,
			Subject:  id,
			Message:  fmt.Sprintf("%s has no owner and is not a package", e.Kind()),
			Actual:   e.Kind(),
		})
	}
}
