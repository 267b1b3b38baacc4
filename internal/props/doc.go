// Package props declares the typed view over an element's property bag.
//
// Elements carry a permissive bag of cty values; nothing stops a caller from
// storing any key with any value. A Schema states, per kind, which keys are
// expected, their cty type, whether they are required, and, for enumerated
// string properties, the allowed literals. Declarations are inherited along
// the kind taxonomy, so a property declared on Feature applies to every
// PartUsage as well.
//
// Schemas are written as HCL manifests:
//
//	enum "FeatureDirectionKind" {
//	  values = ["in", "out", "inout"]
//	}
//
//	kind "Feature" {
//	  property "direction" {
//	    type = string
//	    enum = FeatureDirectionKind
//	  }
//	}
//
// The built-in manifest is embedded and available through Default. Further
// manifests can be parsed with Parse and layered on top with Overlay.
package props
