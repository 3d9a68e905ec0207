package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treekit/pkg/metrics"
	"github.com/leapstack-labs/treekit/pkg/plugin"
	"github.com/leapstack-labs/treekit/pkg/tree"
)

func TestMetrics_Register(t *testing.T) {
	m := metrics.New()
	reg := prometheus.NewRegistry()

	assert.NotPanics(t, func() { m.MustRegister(reg) })
}

func TestMetrics_HooksCountRunsAndFailures(t *testing.T) {
	m := metrics.New()
	hooks := m.Hooks()

	meta := plugin.Metadata{Name: "p"}
	hooks.OnPluginEnd(meta, plugin.KindTransform, time.Millisecond, nil)
	hooks.OnPluginEnd(meta, plugin.KindTransform, time.Millisecond, errors.New("boom"))

	runs := testutil.ToFloat64(m.PluginRuns.WithLabelValues("p", "transform"))
	failures := testutil.ToFloat64(m.PluginFailures.WithLabelValues("p", "transform"))
	assert.Equal(t, float64(2), runs)
	assert.Equal(t, float64(1), failures)
}

func TestMetrics_PhaseDuration(t *testing.T) {
	m := metrics.New()
	m.Hooks().OnPhaseEnd(plugin.PhaseTransform, 10*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.PhaseDuration))
}

func TestMetrics_TimingSink(t *testing.T) {
	m := metrics.New()
	sink := m.TimingSink()

	sink("layout", 2*time.Millisecond)
	sink("layout", 3*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.TransformDuration), "one series per label")
}

func TestMetrics_WiredIntoManager(t *testing.T) {
	m := metrics.New()
	reg := prometheus.NewRegistry()
	m.MustRegister(reg)

	mgr := plugin.New(plugin.WithHooks(m.Hooks()))
	mgr.Use(plugin.NewTransform(plugin.Metadata{Name: "noop"}, func(_ context.Context, t *tree.Tree) (*tree.Tree, error) {
		return t, nil
	}))

	_, err := mgr.Apply(context.Background(), tree.New(""))
	require.NoError(t, err)

	runs := testutil.ToFloat64(m.PluginRuns.WithLabelValues("noop", "transform"))
	assert.Equal(t, float64(1), runs)
	assert.Equal(t, 2, testutil.CollectAndCount(m.PhaseDuration), "both phases observed")
}
