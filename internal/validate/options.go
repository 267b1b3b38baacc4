package validate

import (
	"log/slog"

	"github.com/specialistvlad/sysmlgraph/internal/props"
)

// Recorder observes validation passes. internal/metrics provides a
// Prometheus implementation.
type Recorder interface {
	// ValidationPass is called once per pass with the graph size.
	ValidationPass(elements, relationships int)
	// DiagnosticReported is called once per diagnostic.
	DiagnosticReported(code Code, severity Severity)
}

// Option configures a Validator.
type Option func(*Validator)

// WithSchema replaces the built-in property schema.
func WithSchema(s *props.Schema) Option {
	return func(v *Validator) {
		if s != nil {
			v.schema = s
		}
	}
}

// WithUnknownProperties toggles reporting of bag keys the schema does not
// declare for the kind. It is on by default.
func WithUnknownProperties(report bool) Option {
	return func(v *Validator) {
		v.reportUnknown = report
	}
}

// WithOrphanCheck enables the OrphanElement check.
func WithOrphanCheck(enabled bool) Option {
	return func(v *Validator) {
		v.disabled[CodeOrphanElement] = !enabled
	}
}

// WithDisabledChecks turns off the checks producing the given codes.
func WithDisabledChecks(codes ...Code) Option {
	return func(v *Validator) {
		for _, c := range codes {
			v.disabled[c] = true
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(v *Validator) {
		v.recorder = r
	}
}
