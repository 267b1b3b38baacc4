package query

import (
	"slices"
	"testing"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// vehicleModel builds:
//
//	Engine               (PartDefinition, root)
//	Vehicle              (Package, root)
//	  engine             (PartUsage, public)  -- FeatureTyping --> Engine
//	  internals          (Package, private)
//	    piston           (PartUsage, public)
//	  spare              (PartUsage, protected)
type vehicleModel struct {
	g                                     *modelgraph.Graph
	engineDef, vehicle, engine, internals element.ID
	piston, spare, typing                 element.ID
}

func newVehicleModel(t *testing.T) vehicleModel {
	t.Helper()
	g := modelgraph.New()
	must := func(id element.ID, err error) element.ID {
		t.Helper()
		require.NoError(t, err)
		return id
	}

	m := vehicleModel{g: g}
	m.engineDef = must(g.AddElement(element.New(kind.PartDefinition).WithName("Engine")))
	m.vehicle = must(g.AddElement(element.New(kind.Package).WithName("Vehicle")))
	m.engine = must(g.AddOwnedElement(element.New(kind.PartUsage).WithName("engine"), m.vehicle, element.Public))
	m.internals = must(g.AddOwnedElement(element.New(kind.Package).WithName("internals"), m.vehicle, element.Private))
	m.piston = must(g.AddOwnedElement(element.New(kind.PartUsage).WithName("piston"), m.internals, element.Public))
	m.spare = must(g.AddOwnedElement(element.New(kind.PartUsage).WithName("spare"), m.vehicle, element.Protected))
	m.typing = must(g.AddRelationship(element.NewRelationship(kind.FeatureTyping, m.engine, m.engineDef)))
	return m
}

func TestResolveQualifiedName(t *testing.T) {
	m := newVehicleModel(t)

	id, ok := ResolveQualifiedName(m.g, nil, []string{"Vehicle", "engine"})
	require.True(t, ok)
	assert.Equal(t, m.engine, id)

	_, ok = ResolveQualifiedName(m.g, nil, []string{"Vehicle", "missing"})
	assert.False(t, ok)

	_, ok = ResolveQualifiedName(m.g, nil, nil)
	assert.False(t, ok)

	id, ok = ResolveQualifiedName(m.g, nil, []string{"Engine"})
	require.True(t, ok)
	assert.Equal(t, m.engineDef, id)
}

func TestResolveHonorsVisibility(t *testing.T) {
	m := newVehicleModel(t)

	testCases := []struct {
		name  string
		scope *element.ID
		path  []string
		want  element.ID
		found bool
	}{
		{"private hidden from outside", nil, []string{"Vehicle", "internals", "piston"}, element.Nil, false},
		{"protected hidden from outside", nil, []string{"Vehicle", "spare"}, element.Nil, false},
		{"private visible from owner", &m.vehicle, []string{"internals", "piston"}, m.piston, true},
		{"protected visible from owner", &m.vehicle, []string{"spare"}, m.spare, true},
		{"private visible from inside subtree", &m.engine, []string{"Vehicle", "internals", "piston"}, m.piston, true},
		{"private hidden from sibling root", &m.engineDef, []string{"Vehicle", "internals"}, element.Nil, false},
		{"scope falls back to roots", &m.internals, []string{"Engine"}, m.engineDef, true},
		{"scope members win over roots", &m.vehicle, []string{"engine"}, m.engine, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveQualifiedName(m.g, tc.scope, tc.path)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveString(t *testing.T) {
	m := newVehicleModel(t)

	id, ok := ResolveString(m.g, nil, "Vehicle::engine")
	require.True(t, ok)
	assert.Equal(t, m.engine, id)

	_, ok = ResolveString(m.g, nil, "Vehicle::")
	assert.False(t, ok)
}

func TestResolveAfterLastChildInsertion(t *testing.T) {
	m := newVehicleModel(t)
	wheel, err := m.g.AddOwnedElement(element.New(kind.PartUsage).WithName("wheel"), m.vehicle, element.Public)
	require.NoError(t, err)

	children := m.g.OwnedChildren(m.vehicle)
	assert.Equal(t, wheel, children[len(children)-1])

	id, ok := ResolveString(m.g, nil, "Vehicle::wheel")
	require.True(t, ok)
	assert.Equal(t, wheel, id)
}

func TestVisibleMembers(t *testing.T) {
	m := newVehicleModel(t)

	assert.Equal(t, []element.ID{m.engine}, VisibleMembers(m.g, m.vehicle, nil))
	assert.Equal(t, []element.ID{m.engine, m.internals, m.spare}, VisibleMembers(m.g, m.vehicle, &m.piston))
	assert.Equal(t, []element.ID{m.internals}, MembersWithVisibility(m.g, m.vehicle, element.Private))
	assert.Equal(t, []element.ID{m.spare}, MembersWithVisibility(m.g, m.vehicle, element.Protected))
}

func TestOwnedSubtree(t *testing.T) {
	m := newVehicleModel(t)

	seq := OwnedSubtree(m.g, m.vehicle)
	want := []element.ID{m.vehicle, m.engine, m.internals, m.piston, m.spare}
	assert.Equal(t, want, slices.Collect(seq))
	assert.Equal(t, want, slices.Collect(seq), "the sequence is restartable")

	var firstTwo []element.ID
	for id := range seq {
		firstTwo = append(firstTwo, id)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], firstTwo)

	assert.Empty(t, slices.Collect(OwnedSubtree(m.g, element.NewID())))
	assert.Equal(t, want[1:], Descendants(m.g, m.vehicle))
	assert.Equal(t, []element.ID{m.internals, m.vehicle}, Ancestors(m.g, m.piston))
}

func TestSupertypeFiltered(t *testing.T) {
	m := newVehicleModel(t)

	assert.Equal(t, []element.ID{m.engine, m.piston, m.spare}, SupertypeFiltered(m.g, kind.Feature))
	assert.Equal(t, []element.ID{m.vehicle, m.internals}, SupertypeFiltered(m.g, kind.Package))
	assert.Len(t, SupertypeFiltered(m.g, kind.Element), 6)
	assert.Empty(t, SupertypeFiltered(m.g, kind.Relationship), "relationships are not elements")
}

func TestRelationshipsBetween(t *testing.T) {
	m := newVehicleModel(t)
	dep, err := m.g.AddRelationship(element.NewRelationship(kind.Dependency, m.engine, m.engineDef))
	require.NoError(t, err)

	assert.Equal(t, []element.ID{m.typing, dep}, RelationshipsBetween(m.g, m.engine, m.engineDef, nil))

	typing := kind.FeatureTyping
	assert.Equal(t, []element.ID{m.typing}, RelationshipsBetween(m.g, m.engine, m.engineDef, &typing))

	spec := kind.Specialization
	assert.Equal(t, []element.ID{m.typing}, RelationshipsBetween(m.g, m.engine, m.engineDef, &spec))

	assert.Empty(t, RelationshipsBetween(m.g, m.engineDef, m.engine, nil), "direction matters")
}

func TestFindByName(t *testing.T) {
	m := newVehicleModel(t)

	assert.Equal(t, []element.ID{m.engine}, FindByName(m.g, "engine"))
	assert.Empty(t, FindByName(m.g, "engine", kind.Package))
	assert.Equal(t, []element.ID{m.engineDef, m.engine}, FindByNameContains(m.g, "ngine"))
	assert.Equal(t, []element.ID{m.engineDef}, FindByNameContains(m.g, "ngine", kind.Definition))
}

func TestFindByProperty(t *testing.T) {
	m := newVehicleModel(t)
	stored, _ := m.g.Get(m.engineDef)
	stored.SetProperty("isAbstract", cty.True)

	assert.Equal(t, []element.ID{m.engineDef}, FindByProperty(m.g, "isAbstract", cty.True))
	assert.Empty(t, FindByProperty(m.g, "isAbstract", cty.False))
}

func TestMatchQualifiedName(t *testing.T) {
	m := newVehicleModel(t)

	testCases := []struct {
		pattern string
		want    []element.ID
	}{
		{"Vehicle::*", []element.ID{m.engine, m.internals, m.spare}},
		{"Vehicle::**", []element.ID{m.vehicle, m.engine, m.internals, m.piston, m.spare}},
		{"**::piston", []element.ID{m.piston}},
		{"*::eng*", []element.ID{m.engine}},
		{"Nothing::*", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := MatchQualifiedName(m.g, tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := MatchQualifiedName(m.g, "Vehicle::[")
	assert.Error(t, err)
}

func TestMatchQualifiedNameWithSlashInName(t *testing.T) {
	g := modelgraph.New()
	units, err := g.AddElement(element.New(kind.Package).WithName("Units"))
	require.NoError(t, err)
	speed, err := g.AddOwnedElement(element.New(kind.AttributeDefinition).WithName("km/h"), units, element.Public)
	require.NoError(t, err)
	nested, err := g.AddOwnedElement(element.New(kind.AttributeUsage).WithName("value"), speed, element.Public)
	require.NoError(t, err)

	testCases := []struct {
		pattern string
		want    []element.ID
	}{
		{"Units::*", []element.ID{speed}},
		{"Units::km/h", []element.ID{speed}},
		{"Units::km*", []element.ID{speed}},
		{"Units::*::*", []element.ID{nested}},
		{"Units::km", nil},
		{"Units::km/*", []element.ID{speed}},
		{"Units::m/*", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := MatchQualifiedName(g, tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQualifiedNameTreatsEmptyNameAsUnnamed(t *testing.T) {
	g := modelgraph.New()
	pkg, err := g.AddElement(element.New(kind.Package).WithName("P"))
	require.NoError(t, err)
	blank, err := g.AddOwnedElement(element.New(kind.PartUsage).WithName(""), pkg, element.Public)
	require.NoError(t, err)

	_, ok := QualifiedName(g, blank)
	assert.False(t, ok)

	all, err := MatchQualifiedName(g, "**")
	require.NoError(t, err)
	assert.Equal(t, []element.ID{pkg}, all)
}

func TestCounts(t *testing.T) {
	m := newVehicleModel(t)

	assert.Equal(t, map[kind.Kind]int{
		kind.PartDefinition: 1,
		kind.Package:        2,
		kind.PartUsage:      3,
	}, CountElementsByKind(m.g))
	assert.Equal(t, map[kind.Kind]int{kind.FeatureTyping: 1}, CountRelationshipsByKind(m.g))
}

func TestRequirementTracing(t *testing.T) {
	g := modelgraph.New()
	def, err := g.AddElement(element.New(kind.RequirementDefinition).WithName("SafetyCase"))
	require.NoError(t, err)
	braking, err := g.AddElement(element.New(kind.RequirementUsage).WithName("braking"))
	require.NoError(t, err)
	rangeReq, err := g.AddElement(element.New(kind.RequirementUsage).WithName("range"))
	require.NoError(t, err)
	_, err = g.AddRelationship(element.NewRelationship(kind.RequirementVerificationMembership, def, braking))
	require.NoError(t, err)

	assert.Equal(t, []element.ID{rangeReq}, UnverifiedRequirements(g))
	assert.Equal(t, []element.ID{def}, VerifiersOf(g, braking))

	rows := TraceMatrix(g, kind.RequirementDefinition, kind.RequirementVerificationMembership, kind.RequirementUsage)
	assert.Equal(t, []TraceRow{{Source: def, Targets: []element.ID{braking}}}, rows)
}

func TestSatisfaction(t *testing.T) {
	g := modelgraph.New()
	add := func(e *element.Element) element.ID {
		t.Helper()
		id, err := g.AddElement(e)
		require.NoError(t, err)
		return id
	}
	relate := func(k kind.Kind, src, tgt element.ID) {
		t.Helper()
		_, err := g.AddRelationship(element.NewRelationship(k, src, tgt))
		require.NoError(t, err)
	}

	mass := add(element.New(kind.RequirementUsage).WithName("mass"))
	braking := add(element.New(kind.RequirementUsage).WithName("braking"))
	vehicle := add(element.New(kind.PartDefinition).WithName("Vehicle"))
	brakes := add(element.New(kind.PartUsage).WithName("brakes"))

	owned, err := g.AddOwnedElement(element.New(kind.SatisfyRequirementUsage), vehicle, element.Public)
	require.NoError(t, err)
	relate(kind.ReferenceSubsetting, owned, mass)

	explicit := add(element.New(kind.SatisfyRequirementUsage).WithProperty("satisfyingFeature", brakes))
	relate(kind.ReferenceSubsetting, explicit, braking)
	relate(kind.ReferenceSubsetting, explicit, mass)

	// Plain subsetting between requirements is not a satisfaction.
	relate(kind.ReferenceSubsetting, braking, mass)

	assert.Equal(t, []element.ID{vehicle, brakes}, SatisfiersOf(g, mass))
	assert.Equal(t, []element.ID{brakes}, SatisfiersOf(g, braking))
	assert.Equal(t, []element.ID{mass}, SatisfiedBy(g, vehicle))
	assert.Equal(t, []element.ID{braking, mass}, SatisfiedBy(g, brakes))
	assert.Empty(t, SatisfiedBy(g, mass))

	assert.Equal(t, []element.ID{mass, braking}, UnverifiedRequirements(g), "satisfy usages are not requirements")
}

func TestApplicableRequirements(t *testing.T) {
	g := modelgraph.New()
	add := func(e *element.Element) element.ID {
		t.Helper()
		id, err := g.AddElement(e)
		require.NoError(t, err)
		return id
	}

	plain := add(element.New(kind.RequirementUsage).WithName("plain"))
	lower := add(element.New(kind.RequirementUsage).WithProperty("applicability", "applicable"))
	upper := add(element.New(kind.RequirementUsage).WithProperty("applicability", "Applicable"))
	add(element.New(kind.RequirementUsage).WithProperty("applicability", "notApplicable"))
	add(element.New(kind.RequirementUsage).WithProperty("applicability", true))
	add(element.New(kind.RequirementDefinition).WithName("Spec"))
	add(element.New(kind.SatisfyRequirementUsage))

	assert.Equal(t, []element.ID{plain, lower, upper}, ApplicableRequirements(g))
}

func TestFingerprint(t *testing.T) {
	m := newVehicleModel(t)

	first := Fingerprint(m.g)
	assert.Equal(t, first, Fingerprint(m.g))
	assert.Len(t, first.String(), 64)

	stored, _ := m.g.Get(m.engine)
	stored.SetProperty("isComposite", cty.True)
	changed := Fingerprint(m.g)
	assert.NotEqual(t, first, changed)

	stored.DeleteProperty("isComposite")
	assert.Equal(t, first, Fingerprint(m.g))

	require.NoError(t, m.g.MoveElement(m.spare, m.internals, element.Protected))
	assert.NotEqual(t, first, Fingerprint(m.g))
}

func TestQualifiedName(t *testing.T) {
	m := newVehicleModel(t)

	qn, ok := QualifiedName(m.g, m.piston)
	require.True(t, ok)
	assert.Equal(t, "Vehicle::internals::piston", qn.String())

	_, ok = QualifiedName(m.g, element.NewID())
	assert.False(t, ok)
}
