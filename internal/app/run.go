package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/sysmlgraph/internal/ctxlog"
	"github.com/specialistvlad/sysmlgraph/internal/element"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/specialistvlad/sysmlgraph/internal/modelgraph"
	"github.com/specialistvlad/sysmlgraph/internal/query"
	"github.com/specialistvlad/sysmlgraph/internal/validate"
)

// Report summarizes one validation pass over a model together with its
// requirement coverage. Satisfaction has one row per applicable
// requirement, listing the elements that satisfy it.
type Report struct {
	Elements      int
	Relationships int
	Result        validate.Result
	Fingerprint   query.Digest
	Unverified    []element.ID
	Trace         []query.TraceRow
	Satisfaction  []query.TraceRow
}

// Check validates g and collects the report.
func (a *App) Check(ctx context.Context, g modelgraph.Reader) Report {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Check method started.")

	r := Report{
		Elements:      len(g.Elements()),
		Relationships: len(g.Relationships()),
		Result:        a.validator.Validate(g),
		Fingerprint:   query.Fingerprint(g),
		Unverified:    query.UnverifiedRequirements(g),
		Trace:         query.TraceMatrix(g, kind.RequirementDefinition, kind.RequirementVerificationMembership, kind.RequirementUsage),
	}
	for _, req := range query.ApplicableRequirements(g) {
		r.Satisfaction = append(r.Satisfaction, query.TraceRow{Source: req, Targets: query.SatisfiersOf(g, req)})
	}

	if r.Result.HasErrors() {
		logger.Warn("Model has validation errors.", "diagnostics", len(r.Result.Diagnostics))
	} else {
		logger.Info("Model is structurally valid.", "elements", r.Elements, "relationships", r.Relationships)
	}
	return r
}

// SelfCheck verifies the kind taxonomy and that the property schema only
// declares valid kinds.
func (a *App) SelfCheck(ctx context.Context) error {
	logger := ctxlog.FromContext(ctxlog.WithLogger(ctx, a.logger))

	var errs []error
	if err := kind.Verify(); err != nil {
		errs = append(errs, fmt.Errorf("kind taxonomy: %w", err))
	}
	for _, k := range a.schema.Kinds() {
		if !k.Valid() {
			errs = append(errs, fmt.Errorf("property schema declares invalid kind %s", k))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logger.Info("Self-check passed.", "kinds", len(kind.All()), "schema_kinds", len(a.schema.Kinds()))
	return nil
}

// WriteReport prints r in a human-readable form. Elements are shown by
// qualified name where they have one.
func WriteReport(w io.Writer, g modelgraph.Reader, r Report) {
	fmt.Fprintf(w, "Model: %d elements, %d relationships\n", r.Elements, r.Relationships)
	fmt.Fprintf(w, "Fingerprint: %s\n", r.Fingerprint)

	fmt.Fprintf(w, "Diagnostics: %d\n", len(r.Result.Diagnostics))
	for _, d := range r.Result.Diagnostics {
		fmt.Fprintf(w, "  [%s] %s %s: %s\n", d.Severity, d.Code, label(g, d.Subject), d.Message)
	}

	fmt.Fprintf(w, "Unverified requirements: %d\n", len(r.Unverified))
	for _, id := range r.Unverified {
		fmt.Fprintf(w, "  %s\n", label(g, id))
	}

	fmt.Fprintln(w, "Verification trace:")
	for _, row := range r.Trace {
		if len(row.Targets) == 0 {
			fmt.Fprintf(w, "  %s -> (none)\n", label(g, row.Source))
			continue
		}
		for _, t := range row.Targets {
			fmt.Fprintf(w, "  %s -> %s\n", label(g, row.Source), label(g, t))
		}
	}

	fmt.Fprintln(w, "Satisfaction:")
	for _, row := range r.Satisfaction {
		if len(row.Targets) == 0 {
			fmt.Fprintf(w, "  %s <- (none)\n", label(g, row.Source))
			continue
		}
		for _, t := range row.Targets {
			fmt.Fprintf(w, "  %s <- %s\n", label(g, row.Source), label(g, t))
		}
	}
}

func label(g modelgraph.Reader, id element.ID) string {
	if qn, ok := query.QualifiedName(g, id); ok {
		return qn.String()
	}
	if e, ok := g.Get(id); ok {
		return fmt.Sprintf("%s %s", e.Kind(), id)
	}
	if r, ok := g.Relationship(id); ok {
		return fmt.Sprintf("%s %s", r.Kind(), id)
	}
	return id.String()
}
