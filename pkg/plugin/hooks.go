package plugin

import "time"

// Phase names for Hooks.OnPhaseEnd.
const (
	PhaseTransform = "transform"
	PhaseVisitor   = "visitor"
)

// Hooks receives lifecycle callbacks from a Manager. Any field may be nil.
// Callbacks run synchronously on the applying goroutine and should return
// quickly.
type Hooks struct {
	// OnPluginStart fires before a plugin executes.
	OnPluginStart func(meta Metadata, kind Kind)

	// OnPluginEnd fires after a plugin executes, with the elapsed wall
	// clock time and the error, if any. For visitor plugins the elapsed
	// time spans setup, walk and teardown.
	OnPluginEnd func(meta Metadata, kind Kind, elapsed time.Duration, err error)

	// OnPhaseEnd fires when a whole phase (PhaseTransform or
	// PhaseVisitor) completes, including when it completes with an error.
	OnPhaseEnd func(phase string, elapsed time.Duration)
}

func (h Hooks) pluginStart(p Plugin) {
	if h.OnPluginStart != nil {
		h.OnPluginStart(p.Meta, p.Kind())
	}
}

func (h Hooks) pluginEnd(p Plugin, elapsed time.Duration, err error) {
	if h.OnPluginEnd != nil {
		h.OnPluginEnd(p.Meta, p.Kind(), elapsed, err)
	}
}

func (h Hooks) phaseEnd(phase string, elapsed time.Duration) {
	if h.OnPhaseEnd != nil {
		h.OnPhaseEnd(phase, elapsed)
	}
}
