// Package pipeline loads pipeline configuration and pre-processes plugins
// with the transform combinators before registration: disabling plugins by
// name, wrapping transforms with retry budgets, and timing them.
//
// Configuration lives in treekit.yaml next to the embedding project:
//
//	plugins:
//	  expand-includes:
//	    retry: 3
//	    timed: true
//	  legacy-cleanup:
//	    disabled: true
//
// Values can be overridden through TREEKIT_-prefixed environment
// variables with "__" as the nesting delimiter, e.g.
// TREEKIT_PLUGINS__expand__RETRY=5.
package pipeline

import (
	"github.com/leapstack-labs/treekit/pkg/plugin"
	"github.com/leapstack-labs/treekit/pkg/transform"
)

// PluginConfig controls one named plugin.
type PluginConfig struct {
	// Disabled drops the plugin before registration.
	Disabled bool `koanf:"disabled"`

	// Retry is the attempt budget for a transform plugin; values below 2
	// leave the plugin unwrapped. Visitor plugins ignore it.
	Retry int `koanf:"retry"`

	// Timed wraps a transform plugin with duration reporting. Visitor
	// plugins ignore it.
	Timed bool `koanf:"timed"`
}

// Config is the pipeline configuration, keyed by plugin metadata name.
type Config struct {
	Plugins map[string]PluginConfig `koanf:"plugins"`
}

// NewConfig creates an empty configuration: everything enabled, nothing
// wrapped.
func NewConfig() *Config {
	return &Config{Plugins: make(map[string]PluginConfig)}
}

// PluginConfig returns the settings for name, zero-valued when absent.
func (c *Config) PluginConfig(name string) PluginConfig {
	if c == nil {
		return PluginConfig{}
	}
	return c.Plugins[name]
}

// IsDisabled reports whether the named plugin should be dropped.
func (c *Config) IsDisabled(name string) bool {
	return c.PluginConfig(name).Disabled
}

// Disable marks a plugin as disabled. Chainable.
func (c *Config) Disable(name string) *Config {
	pc := c.Plugins[name]
	pc.Disabled = true
	c.Plugins[name] = pc
	return c
}

// Rewrite applies the configuration to plugins ahead of registration:
// disabled plugins are dropped, and transform plugins gain Retry and Timed
// wrappers as configured. Relative order is preserved; the input slice is
// not modified. Timed wrapping uses the plugin's metadata name as the
// label and is skipped when sink is nil.
func (c *Config) Rewrite(plugins []plugin.Plugin, sink transform.TimingSink) []plugin.Plugin {
	out := make([]plugin.Plugin, 0, len(plugins))
	for _, p := range plugins {
		pc := c.PluginConfig(p.Meta.Name)
		if pc.Disabled {
			continue
		}
		if p.Kind() == plugin.KindTransform {
			fn := p.Transform
			if pc.Retry > 1 {
				fn = transform.Retry(fn, pc.Retry)
			}
			if pc.Timed && sink != nil {
				fn = transform.Timed(fn, p.Meta.Name, sink)
			}
			p.Transform = fn
		}
		out = append(out, p)
	}
	return out
}
