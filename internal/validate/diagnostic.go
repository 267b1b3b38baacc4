package validate

import (
	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/specialistvlad/sysmlgraph/internal/props"
)

// Code identifies the check that produced a diagnostic.
type Code string

const (
	CodeRelationshipTypeMismatch Code = "RelationshipTypeMismatch"
	CodeDuplicateDefinition      Code = "DuplicateDefinition"
	CodeInvalidProperty          Code = "InvalidProperty"
	CodeDanglingRelationship     Code = "DanglingRelationship"
	CodeOrphanElement            Code = "OrphanElement"
)

// Codes lists every code in check order.
func Codes() []Code {
	return []Code{
		CodeRelationshipTypeMismatch,
		CodeDuplicateDefinition,
		CodeInvalidProperty,
		CodeDanglingRelationship,
		CodeOrphanElement,
	}
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Endpoint names the end of a relationship a diagnostic is about.
type Endpoint string

const (
	EndpointSource Endpoint = "source"
	EndpointTarget Endpoint = "target"
)

// Diagnostic is one finding. Fields beyond Code, Severity, Subject and
// Message are set only by the checks they belong to.
type Diagnostic struct {
	Code     Code
	Severity Severity
	// Subject is the element or relationship the finding is about.
	Subject element.ID
	// Related points at other entities involved: the mismatched or missing
	// endpoint, or the first occurrence of a duplicated name.
	Related []element.ID
	Message string

	// RelationshipTypeMismatch and DanglingRelationship.
	Endpoint Endpoint
	Expected kind.Kind
	Actual   kind.Kind

	// InvalidProperty.
	Property string
	Reason   props.Reason
}

// Result is the outcome of one validation pass.
type Result struct {
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic has error severity.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// OfCode returns the diagnostics with the given code, in result order.
func (r Result) OfCode(code Code) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of diagnostics per code.
func (r Result) Count() map[Code]int {
	out := make(map[Code]int)
	for _, d := range r.Diagnostics {
		out[d.Code]++
	}
	return out
}
