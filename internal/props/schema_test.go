package props

import (
	"testing"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDefaultSchemaLoads(t *testing.T) {
	s, err := LoadDefault()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Same(t, s, Default())

	assert.Equal(t, []string{
		"FeatureDirectionKind",
		"PortionKind",
		"RequirementConstraintKind",
		"StateSubactionKind",
		"TransitionFeatureKind",
		"TriggerKind",
		"VisibilityKind",
	}, s.Enums())

	values, ok := s.Enum("StateSubactionKind")
	require.True(t, ok)
	assert.Equal(t, []string{"entry", "do", "exit"}, values)
}

func TestPropertiesAreInherited(t *testing.T) {
	s := Default()

	p, ok := s.Lookup(kind.PartUsage, "direction")
	require.True(t, ok, "PartUsage inherits direction from Feature")
	assert.Equal(t, kind.Feature, p.DeclaredOn)
	assert.Equal(t, "FeatureDirectionKind", p.Enum)

	p, ok = s.Lookup(kind.Documentation, "body")
	require.True(t, ok)
	assert.True(t, p.Required)
	assert.Equal(t, kind.Comment, p.DeclaredOn)

	_, ok = s.Lookup(kind.PartDefinition, "direction")
	assert.False(t, ok, "definitions are not features")

	_, ok = s.Lookup(kind.Invalid, "body")
	assert.False(t, ok)
	assert.Nil(t, s.Properties(kind.Invalid))
}

func TestRedeclarationOverridesInPlace(t *testing.T) {
	s := Default()

	props := s.Properties(kind.RequirementVerificationMembership)
	var names []string
	for _, p := range props {
		names = append(names, p.Name)
		if p.Name == "kind" {
			assert.False(t, p.Required)
			assert.Equal(t, kind.RequirementVerificationMembership, p.DeclaredOn)
		}
	}
	assert.Contains(t, names, "kind")

	count := 0
	for _, n := range names {
		if n == "kind" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	p, ok := s.Lookup(kind.RequirementConstraintMembership, "kind")
	require.True(t, ok)
	assert.True(t, p.Required)
}

func TestParseManifest(t *testing.T) {
	src := `
kind "PartDefinition" {
  property "mass" {
    type     = number
    required = true
  }
  property "tags" {
    type = set(string)
  }
  property "parts" {
    type = list(element)
  }
  property "mode" {
    type = string
    enum = Mode
  }
}

enum "Mode" {
  values = ["on", "off"]
}
`
	s, diags := Parse([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	props := s.Declared(kind.PartDefinition)
	require.Len(t, props, 4)
	assert.Equal(t, "mass", props[0].Name)
	assert.True(t, props[0].Type.Equals(cty.Number))
	assert.True(t, props[0].Required)
	assert.Equal(t, "set(string)", props[1].TypeName())
	assert.Equal(t, "list(element)", props[2].TypeName())
	assert.True(t, props[2].Type.ElementType().Equals(element.RefType))
	assert.Equal(t, []string{"on", "off"}, props[3].Values)
	assert.Equal(t, []kind.Kind{kind.PartDefinition}, s.Kinds())
}

func TestParseManifestErrors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		summary string
	}{
		{
			name:    "unknown kind",
			src:     "kind \"Widget\" {\n}\n",
			summary: "Unknown kind",
		},
		{
			name: "missing type",
			src: `
kind "PartUsage" {
  property "x" {
    required = true
  }
}
`,
			summary: "Missing 'type' attribute",
		},
		{
			name: "bad type keyword",
			src: `
kind "PartUsage" {
  property "x" {
    type = integer
  }
}
`,
			summary: "Invalid type specification",
		},
		{
			name: "any inside collection",
			src: `
kind "PartUsage" {
  property "x" {
    type = list(any)
  }
}
`,
			summary: "Invalid type specification",
		},
		{
			name: "duplicate property",
			src: `
kind "PartUsage" {
  property "x" {
    type = bool
  }
}

kind "PartUsage" {
  property "x" {
    type = bool
  }
}
`,
			summary: "Duplicate property definition",
		},
		{
			name: "enum on number",
			src: `
enum "E" {
  values = ["a"]
}

kind "PartUsage" {
  property "x" {
    type = number
    enum = E
  }
}
`,
			summary: "Enum on non-string property",
		},
		{
			name: "unknown enum",
			src: `
kind "PartUsage" {
  property "x" {
    type = string
    enum = Nope
  }
}
`,
			summary: "Unknown enum",
		},
		{
			name:    "empty enum",
			src:     "enum \"E\" {\n  values = []\n}\n",
			summary: "Empty enum",
		},
		{
			name: "duplicate enum",
			src: `
enum "E" {
  values = ["a"]
}

enum "E" {
  values = ["b"]
}
`,
			summary: "Duplicate enum definition",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, diags := Parse([]byte(tc.src), "bad.hcl")
			require.True(t, diags.HasErrors())
			assert.Nil(t, s)

			var summaries []string
			for _, d := range diags {
				summaries = append(summaries, d.Summary)
			}
			assert.Contains(t, summaries, tc.summary)
		})
	}
}

func TestExtendSeesBaseEnums(t *testing.T) {
	base := Default()
	src := `
kind "PortUsage" {
  property "direction" {
    type     = string
    required = true
    enum     = FeatureDirectionKind
  }
}
`
	s, diags := base.Extend([]byte(src), "extra.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	p, ok := s.Lookup(kind.PortUsage, "direction")
	require.True(t, ok)
	assert.True(t, p.Required)
	assert.Equal(t, []string{"in", "out", "inout"}, p.Values)

	p, ok = base.Lookup(kind.PortUsage, "direction")
	require.True(t, ok)
	assert.False(t, p.Required, "Extend must not modify the base schema")

	_, ok = s.Lookup(kind.Comment, "body")
	assert.True(t, ok, "base declarations survive")
}
