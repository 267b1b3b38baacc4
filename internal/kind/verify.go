package kind

import (
	"errors"
	"fmt"
)

// Verify checks the static tables for internal consistency: a lossless name
// round-trip, a single root at Element, a bijective definition/usage pairing
// and endpoint constraints declared only on relationship kinds. It returns
// every problem found, joined. An acyclic hierarchy is already enforced when
// the package initializes.
func Verify() error {
	var errs []error

	for _, k := range all {
		if parsed, err := Parse(k.String()); err != nil || parsed != k {
			errs = append(errs, fmt.Errorf("%s: name does not round-trip", k))
		}
		if k != Element && !k.IsSubtypeOf(Element) {
			errs = append(errs, fmt.Errorf("%s: not a subtype of Element", k))
		}
		if u, ok := k.CorrespondingUsage(); ok {
			if d, ok := u.CorrespondingDefinition(); !ok || d != k {
				errs = append(errs, fmt.Errorf("%s: usage %s does not map back", k, u))
			}
			if !k.IsDefinition() || !u.IsUsage() {
				errs = append(errs, fmt.Errorf("%s: paired with %s across the wrong axis", k, u))
			}
		}
		if d, ok := k.CorrespondingDefinition(); ok {
			if u, ok := d.CorrespondingUsage(); !ok || u != k {
				errs = append(errs, fmt.Errorf("%s: definition %s does not map back", k, d))
			}
		}
	}

	for _, k := range all {
		e, ok := endpoints[k]
		if !ok {
			continue
		}
		if !k.IsRelationship() {
			errs = append(errs, fmt.Errorf("%s: endpoint constraint on a non-relationship kind", k))
		}
		if !e.source.Valid() || !e.target.Valid() {
			errs = append(errs, fmt.Errorf("%s: endpoint constraint names an invalid kind", k))
		}
	}

	return errors.Join(errs...)
}
