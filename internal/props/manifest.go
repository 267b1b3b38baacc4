// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file decodes property schema manifests. A manifest holds two block
// types at the top level:
//
//	enum "Name" { values = [...] }
//	kind "KindName" { property "key" { type = ..., required = ..., enum = ... } }
//
// Enumerations may be declared anywhere in the file and are resolved before
// kinds, so a property can reference an enum declared below it.
package props

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/zclconf/go-cty/cty"
)

var manifestSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "enum", LabelNames: []string{"name"}},
		{Type: "kind", LabelNames: []string{"name"}},
	},
}

var enumBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "values", Required: true},
	},
}

var kindBodySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "property", LabelNames: []string{"name"}},
	},
}

var propertyBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `type` is required, but we check for its existence manually
		// to provide a better error message.
		{Name: "type"},
		{Name: "required"},
		{Name: "enum"},
	},
}

// Parse decodes a standalone manifest.
func Parse(src []byte, filename string) (*Schema, hcl.Diagnostics) {
	return newSchema().Extend(src, filename)
}

// Extend decodes a manifest that may reference the enumerations of s and
// returns s overlaid with it. s is not modified.
func (s *Schema) Extend(src []byte, filename string) (*Schema, hcl.Diagnostics) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	content, contentDiags := file.Body.Content(manifestSchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}

	top := newSchema()
	enumDiags := top.decodeEnums(content.Blocks.OfType("enum"))
	diags = append(diags, enumDiags...)

	visible := s.Overlay(top).enums
	for _, block := range content.Blocks.OfType("kind") {
		diags = append(diags, top.decodeKind(block, visible)...)
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return s.Overlay(top), diags
}

func (s *Schema) decodeEnums(blocks hcl.Blocks) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, block := range blocks {
		name := block.Labels[0]
		if _, exists := s.enums[name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate enum definition",
				Detail:   fmt.Sprintf("An enum named '%s' has already been defined.", name),
				Subject:  &block.DefRange,
			})
			continue
		}

		body, bodyDiags := block.Body.Content(enumBodySchema)
		diags = append(diags, bodyDiags...)
		if bodyDiags.HasErrors() {
			continue
		}

		var values []string
		valueDiags := gohcl.DecodeExpression(body.Attributes["values"].Expr, nil, &values)
		diags = append(diags, valueDiags...)
		if valueDiags.HasErrors() {
			continue
		}
		if len(values) == 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Empty enum",
				Detail:   fmt.Sprintf("Enum '%s' must list at least one value.", name),
				Subject:  body.Attributes["values"].Range.Ptr(),
			})
			continue
		}
		s.enums[name] = values
	}
	return diags
}

func (s *Schema) decodeKind(block *hcl.Block, enums map[string][]string) hcl.Diagnostics {
	var diags hcl.Diagnostics

	k, err := kind.Parse(block.Labels[0])
	if err != nil {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unknown kind",
			Detail:   fmt.Sprintf("'%s' is not a KerML or SysML metaclass name.", block.Labels[0]),
			Subject:  block.LabelRanges[0].Ptr(),
		})
	}

	body, bodyDiags := block.Body.Content(kindBodySchema)
	diags = append(diags, bodyDiags...)
	if bodyDiags.HasErrors() {
		return diags
	}

	seen := make(map[string]bool)
	for _, pb := range body.Blocks.OfType("property") {
		name := pb.Labels[0]
		if seen[name] || slices.ContainsFunc(s.declared[k], func(p Property) bool { return p.Name == name }) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate property definition",
				Detail:   fmt.Sprintf("A property named '%s' has already been defined for kind %s.", name, k),
				Subject:  &pb.DefRange,
			})
			continue
		}
		seen[name] = true

		p, propDiags := decodeProperty(pb, enums)
		diags = append(diags, propDiags...)
		if propDiags.HasErrors() {
			continue
		}
		p.DeclaredOn = k
		s.declared[k] = append(s.declared[k], p)
	}
	return diags
}

func decodeProperty(block *hcl.Block, enums map[string][]string) (Property, hcl.Diagnostics) {
	p := Property{Name: block.Labels[0]}

	body, diags := block.Body.Content(propertyBodySchema)
	if diags.HasErrors() {
		return p, diags
	}

	// Manually check for the required 'type' attribute for a better error.
	typeAttr, exists := body.Attributes["type"]
	if !exists {
		missing := block.Body.MissingItemRange()
		return p, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing 'type' attribute",
			Detail:   "The 'type' attribute is required for all property blocks.",
			Subject:  &missing,
		})
	}
	t, err := typeExprToCtyType(typeAttr.Expr)
	if err != nil {
		return p, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid type specification",
			Detail:   err.Error(),
			Subject:  typeAttr.Expr.Range().Ptr(),
		})
	}
	p.Type = t

	if attr, ok := body.Attributes["required"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &p.Required)...)
	}

	if attr, ok := body.Attributes["enum"]; ok {
		if !t.Equals(cty.String) {
			return p, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Enum on non-string property",
				Detail:   fmt.Sprintf("Property '%s' has type %s; only string properties can be enumerated.", p.Name, typeString(t)),
				Subject:  attr.Range.Ptr(),
			})
		}
		traversal, travDiags := hcl.AbsTraversalForExpr(attr.Expr)
		if travDiags.HasErrors() || len(traversal) != 1 {
			return p, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid enum reference",
				Detail:   "The 'enum' attribute must name an enum block, e.g. enum = FeatureDirectionKind.",
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		values, ok := enums[traversal.RootName()]
		if !ok {
			return p, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown enum",
				Detail:   fmt.Sprintf("No enum named '%s' has been defined.", traversal.RootName()),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		p.Enum = traversal.RootName()
		p.Values = slices.Clone(values)
	}
	return p, diags
}
