package plugin

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leapstack-labs/treekit/pkg/tree"
)

// Manager holds an ordered plugin registry and orchestrates the two-phase
// pipeline over a tree. Registration order determines execution order
// within each phase.
type Manager struct {
	mu      sync.RWMutex
	plugins []Plugin

	logger *slog.Logger
	walker Walker
	hooks  Hooks
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithWalker replaces the default pre-order traversal.
func WithWalker(w Walker) Option {
	return func(m *Manager) {
		if w != nil {
			m.walker = w
		}
	}
}

// WithHooks installs lifecycle callbacks.
func WithHooks(h Hooks) Option {
	return func(m *Manager) {
		m.hooks = h
	}
}

// New creates an empty manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		logger: slog.New(slog.DiscardHandler),
		walker: PreOrderWalker{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Use appends a plugin to the end of the registry. Chainable.
func (m *Manager) Use(p Plugin) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plugins = append(m.plugins, p)
	return m
}

// UseAll appends every plugin, preserving relative order. Chainable.
func (m *Manager) UseAll(plugins []Plugin) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plugins = append(m.plugins, plugins...)
	return m
}

// Remove removes the first registered plugin whose metadata name equals
// name and reports whether a removal occurred. Later plugins sharing the
// name are left untouched.
func (m *Manager) Remove(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.plugins {
		if p.Meta.Name == name {
			m.plugins = append(m.plugins[:i], m.plugins[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether some registered plugin's metadata name equals name.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.plugins {
		if p.Meta.Name == name {
			return true
		}
	}
	return false
}

// Plugins returns a snapshot of the registry. Mutating the returned slice
// does not affect the manager.
func (m *Manager) Plugins() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Plugin, len(m.plugins))
	copy(out, m.plugins)
	return out
}

// Filter returns a snapshot of the plugins matching pred, in registration
// order.
func (m *Manager) Filter(pred func(Plugin) bool) []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Plugin
	for _, p := range m.plugins {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// PluginsByKind returns a snapshot of the plugins classified as kind.
func (m *Manager) PluginsByKind(kind Kind) []Plugin {
	return m.Filter(func(p Plugin) bool { return p.Kind() == kind })
}

// Count returns the number of registered plugins.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plugins)
}

// Clear empties the registry. It does not touch any tree.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plugins = nil
}

// ApplyTransforms folds the registered transform plugins over the tree in
// registration order, strictly sequentially: each plugin receives the
// previous plugin's output. The first failure aborts the call; no partial
// result is retained.
func (m *Manager) ApplyTransforms(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
	phaseStart := time.Now()
	defer func() {
		m.hooks.phaseEnd(PhaseTransform, time.Since(phaseStart))
	}()

	cur := t
	for _, p := range m.PluginsByKind(KindTransform) {
		m.hooks.pluginStart(p)
		start := time.Now()
		next, err := p.Transform(ctx, cur)
		m.hooks.pluginEnd(p, time.Since(start), err)
		if err != nil {
			m.logger.Error("transform plugin failed", "plugin", p.Meta.Name, "err", err)
			return nil, &ExecutionError{Plugin: p.Meta.Name, Stage: StageTransform, Err: err}
		}
		cur = next
	}
	return cur, nil
}

// ApplyVisitors runs the registered visitor plugins over the tree in
// registration order. For each plugin it awaits Setup if present, runs the
// walk, then awaits Teardown if present. A failure in any of the three
// aborts the remaining plugins; there is no rollback.
func (m *Manager) ApplyVisitors(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
	phaseStart := time.Now()
	defer func() {
		m.hooks.phaseEnd(PhaseVisitor, time.Since(phaseStart))
	}()

	cur := t
	for _, p := range m.PluginsByKind(KindVisitor) {
		m.hooks.pluginStart(p)
		start := time.Now()
		next, err := m.runVisitorPlugin(ctx, p, cur)
		m.hooks.pluginEnd(p, time.Since(start), err)
		if err != nil {
			m.logger.Error("visitor plugin failed", "plugin", p.Meta.Name, "err", err)
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (m *Manager) runVisitorPlugin(ctx context.Context, p Plugin, t *tree.Tree) (*tree.Tree, error) {
	if p.Setup != nil {
		if err := p.Setup(ctx, t); err != nil {
			return nil, &ExecutionError{Plugin: p.Meta.Name, Stage: StageSetup, Err: err}
		}
	}
	next, err := m.walker.Walk(ctx, t, p.Visitors)
	if err != nil {
		return nil, &ExecutionError{Plugin: p.Meta.Name, Stage: StageVisit, Err: err}
	}
	if p.Teardown != nil {
		if err := p.Teardown(ctx, next); err != nil {
			return nil, &ExecutionError{Plugin: p.Meta.Name, Stage: StageTeardown, Err: err}
		}
	}
	return next, nil
}

// Apply runs the strict two-phase pipeline: all transform plugins, then
// all visitor plugins on the transforms' result.
func (m *Manager) Apply(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
	runID := uuid.NewString()
	logger := m.logger.With("run_id", runID)
	logger.Debug("applying plugins", "count", m.Count())

	out, err := m.ApplyTransforms(ctx, t)
	if err != nil {
		logger.Info("apply failed", "phase", PhaseTransform, "err", err)
		return nil, err
	}
	out, err = m.ApplyVisitors(ctx, out)
	if err != nil {
		logger.Info("apply failed", "phase", PhaseVisitor, "err", err)
		return nil, err
	}
	logger.Debug("apply completed", "nodes", out.Len())
	return out, nil
}
