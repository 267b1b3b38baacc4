// Package metrics exports validation activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/sysmlgraph/internal/validate"
)

const namespace = "sysmlgraph"

// Recorder implements validate.Recorder on top of Prometheus collectors.
type Recorder struct {
	passes      prometheus.Counter
	diagnostics *prometheus.CounterVec
	graphSize   *prometheus.HistogramVec
}

var _ validate.Recorder = (*Recorder)(nil)

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "passes_total",
			Help:      "Number of validation passes run.",
		}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "diagnostics_total",
			Help:      "Diagnostics reported, by code and severity.",
		}, []string{"code", "severity"}),
		graphSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "graph_size",
			Help:      "Number of graph members seen per validation pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"member"}),
	}

	for _, c := range []prometheus.Collector{r.passes, r.diagnostics, r.graphSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ValidationPass(elements, relationships int) {
	r.passes.Inc()
	r.graphSize.WithLabelValues("element").Observe(float64(elements))
	r.graphSize.WithLabelValues("relationship").Observe(float64(relationships))
}

func (r *Recorder) DiagnosticReported(code validate.Code, severity validate.Severity) {
	r.diagnostics.WithLabelValues(string(code), severity.String()).Inc()
}
