//go:generate mockgen -source recorder.go -destination ../mocks/mock_recorder.go -package mocks Recorder

package scenario

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder observes scenario execution.
type Recorder interface {
	// ObserveOp is called once for every step that was applied.
	ObserveOp(variant Variant, op Op)
	// ObserveScenario is called once per finished scenario.
	ObserveScenario(variant Variant, passed bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveOp(Variant, Op)         {}
func (noopRecorder) ObserveScenario(Variant, bool) {}

// PrometheusRecorder counts operations and scenario outcomes.
type PrometheusRecorder struct {
	ops       *prometheus.CounterVec
	scenarios *prometheus.CounterVec
}

var _ Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registers the scenario counters with reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stackchain",
			Name:      "scenario_ops_total",
			Help:      "The total number of scenario steps applied, by stack variant and op.",
		}, []string{"variant", "op"}),
		scenarios: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stackchain",
			Name:      "scenarios_total",
			Help:      "The total number of scenarios run, by stack variant and outcome.",
		}, []string{"variant", "outcome"}),
	}
}

func (r *PrometheusRecorder) ObserveOp(variant Variant, op Op) {
	r.Ops(variant, op).Inc()
}

func (r *PrometheusRecorder) ObserveScenario(variant Variant, passed bool) {
	r.Scenarios(variant, passed).Inc()
}

// Ops returns the step counter for variant and op.
func (r *PrometheusRecorder) Ops(variant Variant, op Op) prometheus.Counter {
	return r.ops.WithLabelValues(string(variant), string(op))
}

// Scenarios returns the outcome counter for variant.
func (r *PrometheusRecorder) Scenarios(variant Variant, passed bool) prometheus.Counter {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	return r.scenarios.WithLabelValues(string(variant), outcome)
}
