// Package plugin provides the plugin record shape and the execution engine
// that applies registered plugins to a tree.
//
// # Architecture
//
// A plugin is a plain capability record, not an interface hierarchy. The
// two capabilities are:
//
//   - Transform: a whole-tree rewrite (transform.Func), run once per
//     registration during the transform phase.
//   - Visitors: a mapping from node-type tag to a per-node rewrite
//     function, dispatched by a pre-order tree-walk during the visitor
//     phase, optionally bracketed by Setup and Teardown.
//
// Kind resolves a record's classification once: a record carrying a
// Transform is a transform plugin even if it also carries Visitors. That
// precedence is fixed policy for hand-assembled records; the NewTransform
// and NewVisitor constructors never produce the ambiguous shape in the
// first place.
//
// # The Manager
//
// Manager holds an ordered registry. Registration order is execution order
// within each phase, and Apply is a strict two-phase pipeline: every
// transform plugin runs (sequentially, each feeding the next) before any
// visitor plugin runs. Execution is fail-fast and non-transactional: a
// failing plugin aborts the enclosing call and no partial result is
// retained. Resilience is composed explicitly around individual plugins
// before registration using the transform combinators.
//
//	m := plugin.New(plugin.WithLogger(logger)).
//	    Use(plugin.NewTransform(meta, expand)).
//	    Use(plugin.NewVisitor(meta2, visitors))
//	out, err := m.Apply(ctx, t)
//
// # Extension points
//
// Producers of parsing, linting or formatting logic participate solely by
// constructing plugin records and registering them; nothing here is meant
// to be subclassed. A traversal order other than the default pre-order
// walk (post-order, language-scoped visiting) is supplied per manager via
// WithWalker. Lifecycle observability is supplied via WithHooks; see the
// metrics package for a Prometheus-backed implementation.
//
// Plugin names are caller-chosen identifiers used by Remove and Has; the
// engine does not enforce their uniqueness. Likewise the node-type tags a
// Visitors mapping keys on are a contract between the producing parser and
// the consuming plugin, not validated here.
package plugin
