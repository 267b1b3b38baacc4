package app

import (
	"fmt"
	"maps"
	"slices"

	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
)

// demoBuilder adds elements with IDs derived from their keys. The first
// error sticks and later calls become no-ops.
type demoBuilder struct {
	g   *modelgraph.Graph
	err error
}

// propSet is a property set converted with element.Bag.SetValue, so a value
// without a cty equivalent fails the build instead of turning into null.
type propSet map[string]any

func setAll(key string, b *element.Bag, p propSet) error {
	for _, name := range slices.Sorted(maps.Keys(p)) {
		if err := b.SetValue(name, p[name]); err != nil {
			return fmt.Errorf("%s: property %q: %w", key, name, err)
		}
	}
	return nil
}

func (b *demoBuilder) add(key string, k kind.Kind, name, owner string, vis element.Visibility, p propSet) element.ID {
	if b.err != nil {
		return element.Nil
	}
	e := element.NewWithID(element.IDFromString(key), k)
	if name != "" {
		e = e.WithName(name)
	}
	if b.err = setAll(key, &e.Bag, p); b.err != nil {
		return element.Nil
	}
	if owner == "" {
		_, b.err = b.g.AddElement(e)
	} else {
		_, b.err = b.g.AddOwnedElement(e, element.IDFromString(owner), vis)
	}
	return e.ID()
}

func (b *demoBuilder) relate(key string, k kind.Kind, source, target string, p propSet) {
	if b.err != nil {
		return
	}
	r := element.NewRelationshipWithID(element.IDFromString(key), k, element.IDFromString(source), element.IDFromString(target))
	if b.err = setAll(key, &r.Bag, p); b.err != nil {
		return
	}
	_, b.err = b.g.AddRelationship(r)
}

// DemoModel builds a small vehicle model with parts, requirements, one
// verification and one satisfaction. Element IDs are derived from their
// qualified names, so the model and its fingerprint are the same on every
// call.
//
// With defects set, the model also carries findings for the
// RelationshipTypeMismatch, DuplicateDefinition and InvalidProperty checks.
func DemoModel(defects bool) (*modelgraph.Graph, error) {
	b := &demoBuilder{g: modelgraph.New()}
	const (
		pkg         = "VehicleModel"
		vehicle     = "VehicleModel::Vehicle"
		reqs        = "VehicleModel::Requirements"
		vehicleSpec = "VehicleModel::Requirements::VehicleSpec"
		massReq     = "VehicleModel::Requirements::VehicleSpec::massReq"
		brakeReq    = "VehicleModel::Requirements::VehicleSpec::brakingReq"
		massVer     = "VehicleModel::Requirements::MassVerification"
	)

	b.add(pkg, kind.Package, "VehicleModel", "", element.Public, nil)
	b.add("VehicleModel::Engine", kind.PartDefinition, "Engine", pkg, element.Public, nil)
	b.add(vehicle, kind.PartDefinition, "Vehicle", pkg, element.Public, propSet{"isAbstract": false})
	b.add("VehicleModel::Vehicle::engine", kind.PartUsage, "engine", vehicle, element.Public, propSet{"isComposite": true})
	b.add("VehicleModel::Vehicle::mass", kind.AttributeUsage, "mass", vehicle, element.Public, propSet{"direction": "out"})
	b.add("VehicleModel::Vehicle::serial", kind.AttributeUsage, "serial", vehicle, element.Private, nil)
	b.add("VehicleModel::Vehicle::satisfyMass", kind.SatisfyRequirementUsage, "", vehicle, element.Public, nil)
	b.add("VehicleModel::note", kind.Comment, "", pkg, element.Public, propSet{
		"body":             "Reference vehicle for the mass budget.",
		"annotatedElement": []element.ID{element.IDFromString(vehicle)},
	})

	b.add(reqs, kind.Package, "Requirements", pkg, element.Public, nil)
	b.add(vehicleSpec, kind.RequirementDefinition, "VehicleSpec", reqs, element.Public, propSet{"reqId": "SPEC-1"})
	b.add(massReq, kind.RequirementUsage, "massReq", vehicleSpec, element.Public, propSet{
		"reqId": "R1",
		"text":  []string{"The vehicle mass shall not exceed 2000 kg."},
	})
	b.add(brakeReq, kind.RequirementUsage, "brakingReq", vehicleSpec, element.Public, propSet{
		"reqId": "R2",
		"text":  []string{"The vehicle shall stop from 100 km/h within 40 m."},
	})
	b.add(massVer, kind.RequirementDefinition, "MassVerification", reqs, element.Public, nil)

	b.relate("typing:engine", kind.FeatureTyping, "VehicleModel::Vehicle::engine", "VehicleModel::Engine", nil)
	b.relate("annotation:note", kind.Annotation, "VehicleModel::note", vehicle, nil)
	b.relate("verification:mass", kind.RequirementVerificationMembership, massVer, massReq, propSet{"kind": "requirement"})
	b.relate("satisfaction:mass", kind.ReferenceSubsetting, "VehicleModel::Vehicle::satisfyMass", massReq, nil)

	if defects {
		b.add("VehicleModel::Engine#2", kind.PartDefinition, "Engine", pkg, element.Public, nil)
		b.add("VehicleModel::Vehicle::wheels", kind.PartUsage, "wheels", vehicle, element.Public, propSet{"direction": "sideways"})
		b.relate("verification:reversed", kind.RequirementVerificationMembership, brakeReq, massVer, nil)
		b.relate("actor:mass", kind.ActorMembership, vehicleSpec, "VehicleModel::Vehicle::mass", nil)
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.g, nil
}
