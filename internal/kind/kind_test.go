package kind

import (
	"errors"
	"testing"

	"github.com/specialistvlad/sysmlgraph/internal/dag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	require.NoError(t, Verify())
}

func TestSupertypesFirst(t *testing.T) {
	order, err := supertypesFirst(func(k Kind) []Kind { return directSupertypes[k] })
	require.NoError(t, err)
	require.Len(t, order, len(All()))

	pos := make(map[Kind]int, len(order))
	for i, k := range order {
		pos[k] = i
	}
	assert.Equal(t, 0, pos[Element])
	for _, k := range order {
		for _, p := range directSupertypes[k] {
			assert.Less(t, pos[p], pos[k], "%s before %s", p, k)
		}
	}
}

func TestSupertypesFirstRejectsBadTables(t *testing.T) {
	cyclic := func(k Kind) []Kind {
		if k == Element {
			return []Kind{Namespace}
		}
		return directSupertypes[k]
	}
	_, err := supertypesFirst(cyclic)
	var cycleErr *dag.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, cycleErr.Path[0], cycleErr.Path[len(cycleErr.Path)-1])
	assert.Contains(t, cycleErr.Path, "Element")
	assert.Contains(t, cycleErr.Path, "Namespace")

	invalid := func(k Kind) []Kind {
		if k == Package {
			return []Kind{Invalid}
		}
		return directSupertypes[k]
	}
	_, err = supertypesFirst(invalid)
	assert.ErrorContains(t, err, "Package: invalid direct supertype 0")

	self := func(k Kind) []Kind {
		if k == Package {
			return []Kind{Package}
		}
		return directSupertypes[k]
	}
	_, err = supertypesFirst(self)
	assert.ErrorContains(t, err, "self-referential edge")
}

func TestAll(t *testing.T) {
	kinds := All()
	require.Len(t, kinds, int(numKinds)-1)
	assert.Equal(t, Element, kinds[0])
	assert.Equal(t, MetadataUsage, kinds[len(kinds)-1])

	kinds[0] = Invalid
	assert.Equal(t, Element, All()[0], "All must return a copy")
}

func TestParse(t *testing.T) {
	for _, k := range All() {
		parsed, err := Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	testCases := []string{"", "partUsage", "PartUsages", "Kind(0)", " PartUsage", "Satisfy"}
	for _, name := range testCases {
		t.Run(name, func(t *testing.T) {
			k, err := Parse(name)
			assert.Equal(t, Invalid, k)
			assert.True(t, errors.Is(err, ErrUnknownKind))

			var unknown *UnknownKindError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, name, unknown.Name)
		})
	}
}

func TestTextMarshaling(t *testing.T) {
	text, err := PartUsage.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "PartUsage", string(text))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("FeatureTyping")))
	assert.Equal(t, FeatureTyping, k)

	assert.Error(t, k.UnmarshalText([]byte("nope")))
	assert.Equal(t, FeatureTyping, k, "failed unmarshal must not change the receiver")

	_, err = Invalid.MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Kind(0)", Invalid.String())
}

func TestSubtypeIsReflexiveButClosureExcludesSelf(t *testing.T) {
	for _, k := range All() {
		assert.True(t, k.IsSubtypeOf(k), k.String())
		assert.NotContains(t, k.Supertypes(), k, k.String())
		if k != Element {
			assert.True(t, k.IsSubtypeOf(Element), k.String())
		}
	}
	assert.False(t, Invalid.IsSubtypeOf(Invalid))
	assert.False(t, PartUsage.IsSubtypeOf(Invalid))
}

func TestPartUsageSupertypes(t *testing.T) {
	assert.Equal(t, []Kind{ItemUsage}, PartUsage.DirectSupertypes())

	supers := PartUsage.Supertypes()
	for _, want := range []Kind{ItemUsage, OccurrenceUsage, Usage, Feature, Type, Namespace, Element} {
		assert.Contains(t, supers, want)
	}
	assert.NotContains(t, supers, Relationship)
	assert.NotContains(t, supers, PartUsage)
	assert.False(t, PartUsage.IsSubtypeOf(PartDefinition))
}

func TestMultipleInheritance(t *testing.T) {
	// ConnectionUsage reaches Relationship only through Connector.
	assert.Equal(t, []Kind{ConnectorAsUsage, PartUsage}, ConnectionUsage.DirectSupertypes())
	assert.True(t, ConnectionUsage.IsSubtypeOf(Relationship))
	assert.True(t, ConnectionUsage.IsSubtypeOf(ItemUsage))

	// Supertypes follow declaration order, not discovery order.
	supers := SatisfyRequirementUsage.Supertypes()
	assert.Equal(t, Element, supers[0])
	for i := 1; i < len(supers); i++ {
		assert.Less(t, supers[i-1], supers[i])
	}
}

func TestCategoryPredicates(t *testing.T) {
	testCases := []struct {
		kind         Kind
		definition   bool
		usage        bool
		relationship bool
		feature      bool
		classifier   bool
	}{
		{kind: Element},
		{kind: Package},
		{kind: Class, classifier: true},
		{kind: Connector, relationship: true, feature: true},
		{kind: FeatureTyping, relationship: true},
		{kind: Specialization, relationship: true},
		{kind: Definition, definition: true, classifier: true},
		{kind: Usage, usage: true, feature: true},
		{kind: PartDefinition, definition: true, classifier: true},
		{kind: PartUsage, usage: true, feature: true},
		{kind: ConnectionDefinition, definition: true, classifier: true, relationship: true},
		{kind: ConnectionUsage, usage: true, feature: true, relationship: true},
		{kind: Association, classifier: true, relationship: true},
		{kind: LiteralString, feature: true},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.definition, tc.kind.IsDefinition(), "IsDefinition")
			assert.Equal(t, tc.usage, tc.kind.IsUsage(), "IsUsage")
			assert.Equal(t, tc.relationship, tc.kind.IsRelationship(), "IsRelationship")
			assert.Equal(t, tc.feature, tc.kind.IsFeature(), "IsFeature")
			assert.Equal(t, tc.classifier, tc.kind.IsClassifier(), "IsClassifier")
		})
	}
}

func TestDefinitionUsageCorrespondence(t *testing.T) {
	for _, k := range All() {
		if u, ok := k.CorrespondingUsage(); ok {
			d, ok := u.CorrespondingDefinition()
			require.True(t, ok, k.String())
			assert.Equal(t, k, d)
		}
		if d, ok := k.CorrespondingDefinition(); ok {
			u, ok := d.CorrespondingUsage()
			require.True(t, ok, k.String())
			assert.Equal(t, k, u)
		}
	}

	pairs := map[Kind]Kind{
		Definition:            Usage,
		PartDefinition:        PartUsage,
		FlowDefinition:        FlowUsage,
		UseCaseDefinition:     UseCaseUsage,
		ViewpointDefinition:   ViewpointUsage,
		MetadataDefinition:    MetadataUsage,
		EnumerationDefinition: EnumerationUsage,
	}
	for def, usage := range pairs {
		got, ok := def.CorrespondingUsage()
		require.True(t, ok, def.String())
		assert.Equal(t, usage, got)
	}

	for _, k := range []Kind{ConjugatedPortDefinition, ReferenceUsage, SatisfyRequirementUsage, FeatureTyping, Package} {
		_, okUsage := k.CorrespondingUsage()
		_, okDef := k.CorrespondingDefinition()
		assert.False(t, okUsage || okDef, k.String())
	}
}

func TestRelationshipEndpointTypes(t *testing.T) {
	for _, k := range All() {
		src, okSrc := k.RelationshipSourceType()
		tgt, okTgt := k.RelationshipTargetType()
		if !k.IsRelationship() {
			assert.False(t, okSrc, k.String())
			assert.False(t, okTgt, k.String())
			assert.Equal(t, Invalid, src)
			assert.Equal(t, Invalid, tgt)
			continue
		}
		assert.True(t, okSrc && okTgt, k.String())
		assert.True(t, src.Valid() && tgt.Valid(), k.String())
	}

	testCases := []struct {
		kind   Kind
		source Kind
		target Kind
	}{
		{FeatureTyping, Feature, Type},
		{Subclassification, Classifier, Classifier},
		{Redefinition, Feature, Feature},
		{Membership, Namespace, Element},
		{RequirementVerificationMembership, Type, RequirementUsage},
		{ResultExpressionMembership, Type, Expression},
		{ActorMembership, Type, PartUsage},
		{Annotation, AnnotatingElement, Element},
		{Relationship, Element, Element},
	}
	for _, tc := range testCases {
		src, _ := tc.kind.RelationshipSourceType()
		tgt, _ := tc.kind.RelationshipTargetType()
		assert.Equal(t, tc.source, src, tc.kind.String())
		assert.Equal(t, tc.target, tgt, tc.kind.String())
	}
}

func TestUniversalFallback(t *testing.T) {
	delete(endpoints, Dependency)
	t.Cleanup(func() { endpoints[Dependency] = endpoint{Element, Element} })

	src, ok := Dependency.RelationshipSourceType()
	require.True(t, ok)
	assert.Equal(t, Element, src)
}
