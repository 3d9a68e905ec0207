// Package metrics provides Prometheus instrumentation for the plugin
// pipeline. It bridges the manager's lifecycle hooks and the transform
// timing sink onto Prometheus collectors; nothing in the core packages
// depends on it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/leapstack-labs/treekit/pkg/plugin"
	"github.com/leapstack-labs/treekit/pkg/transform"
)

// Metrics holds the pipeline collectors. Construct with New and register
// the collectors with MustRegister before use.
type Metrics struct {
	PluginRuns        *prometheus.CounterVec
	PluginFailures    *prometheus.CounterVec
	PhaseDuration     *prometheus.HistogramVec
	TransformDuration *prometheus.HistogramVec
}

// New creates the collectors, unregistered.
func New() *Metrics {
	return &Metrics{
		PluginRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treekit_plugin_runs_total",
				Help: "Total number of plugin executions.",
			},
			[]string{"plugin", "kind"},
		),
		PluginFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treekit_plugin_failures_total",
				Help: "Total number of failed plugin executions.",
			},
			[]string{"plugin", "kind"},
		),
		PhaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "treekit_phase_duration_seconds",
				Help: "Duration of pipeline phases.",
			},
			[]string{"phase"},
		),
		TransformDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "treekit_transform_duration_seconds",
				Help: "Duration of individual timed transforms.",
			},
			[]string{"label"},
		),
	}
}

// MustRegister registers every collector with reg, panicking on conflict.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.PluginRuns, m.PluginFailures, m.PhaseDuration, m.TransformDuration)
}

// Hooks returns lifecycle hooks that feed the collectors; pass to
// plugin.WithHooks.
func (m *Metrics) Hooks() plugin.Hooks {
	return plugin.Hooks{
		OnPluginEnd: func(meta plugin.Metadata, kind plugin.Kind, _ time.Duration, err error) {
			m.PluginRuns.WithLabelValues(meta.Name, kind.String()).Inc()
			if err != nil {
				m.PluginFailures.WithLabelValues(meta.Name, kind.String()).Inc()
			}
		},
		OnPhaseEnd: func(phase string, elapsed time.Duration) {
			m.PhaseDuration.WithLabelValues(phase).Observe(elapsed.Seconds())
		},
	}
}

// TimingSink returns a sink for transform.Timed that records into the
// transform duration histogram.
func (m *Metrics) TimingSink() transform.TimingSink {
	return func(label string, elapsed time.Duration) {
		m.TransformDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	}
}
