package downlevel

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts rewrites and diagnostics performed by a pass run. A nil
// *Metrics is safe to use: counting into it does nothing. NewMetrics gives
// each Metrics its own unregistered registry so tests can assert on counts
// without a collector registration clashing across parallel tests; a zero
// Metrics value has no counters.
type Metrics struct {
	Registry   *prometheus.Registry
	Rewrites   *prometheus.CounterVec
	DiagEvents *prometheus.CounterVec
}

// NewMetrics builds a Metrics backed by a fresh registry. Pass nil to Run
// to skip metrics collection entirely.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	rewrites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "downlevel_rewrites_total",
		Help: "Number of AST rewrites performed by the downlevel pass, by construct.",
	}, []string{"construct"})
	diags := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "downlevel_diagnostics_total",
		Help: "Number of diagnostics emitted by the downlevel pass, by id.",
	}, []string{"id"})
	reg.MustRegister(rewrites, diags)
	return &Metrics{Registry: reg, Rewrites: rewrites, DiagEvents: diags}
}

func (m *Metrics) rewrite(construct string) {
	if m == nil {
		return
	}
	m.Rewrites.WithLabelValues(construct).Inc()
}

func (m *Metrics) diagnostic(id ID) {
	if m == nil {
		return
	}
	m.DiagEvents.WithLabelValues(string(id)).Inc()
}
