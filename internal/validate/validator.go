package validate

import (
	"log/slog"
	"time"

	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
	"github.com/specialistvlad/sysmlgraph/internal/props"
)

// Validator holds the configuration of validation passes. It keeps no state
// between passes and may be shared across goroutines.
type Validator struct {
	schema        *props.Schema
	reportUnknown bool
	disabled      map[Code]bool
	logger        *slog.Logger
	recorder      Recorder
}

// New returns a validator using the built-in property schema. The
// OrphanElement check is disabled unless WithOrphanCheck enables it.
func New(opts ...Option) *Validator {
	v := &Validator{
		schema:        props.Default(),
		reportUnknown: true,
		disabled:      map[Code]bool{CodeOrphanElement: true},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Enabled reports whether the check producing code runs.
func (v *Validator) Enabled(code Code) bool {
	return !v.disabled[code]
}

// Validate runs every enabled check over g. It does not modify g.
func (v *Validator) Validate(g modelgraph.Reader) Result {
	start := time.Now()
	p := &pass{v: v, g: g}

	for _, c := range checks {
		if v.disabled[c.code] {
			continue
		}
		before := len(p.diags)
		c.run(p)
		v.logger.Debug("Validation check finished.", "check", string(c.code), "diagnostics", len(p.diags)-before)
	}

	elements, relationships := len(g.Elements()), len(g.Relationships())
	if v.recorder != nil {
		v.recorder.ValidationPass(elements, relationships)
		for _, d := range p.diags {
			v.recorder.DiagnosticReported(d.Code, d.Severity)
		}
	}
	v.logger.Debug("Validation pass finished.",
		"elements", elements,
		"relationships", relationships,
		"diagnostics", len(p.diags),
		"duration", time.Since(start),
	)
	return Result{Diagnostics: p.diags}
}

// pass is the state of one Validate call.
type pass struct {
	v     *Validator
	g     modelgraph.Reader
	diags []Diagnostic
}

func (p *pass) report(d Diagnostic) {
	p.diags = append(p.diags, d)
}

var checks = []struct {
	code Code
	run  func(*pass)
}{
	{CodeRelationshipTypeMismatch, (*pass).checkRelationshipTypes},
	{CodeDuplicateDefinition, (*pass).checkDuplicateNames},
	{CodeInvalidProperty, (*pass).checkProperties},
	{CodeDanglingRelationship, (*pass).checkDangling},
	{CodeOrphanElement, (*pass).checkOrphans},
}
