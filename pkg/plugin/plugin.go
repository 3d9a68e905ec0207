package plugin

import (
	"context"

	"github.com/leapstack-labs/treekit/pkg/transform"
	"github.com/leapstack-labs/treekit/pkg/tree"
)

// Metadata identifies a plugin. Name is the identifier Remove and Has
// match on; uniqueness is caller convention, not enforced.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Author      string
}

// VisitorFunc rewrites a single node. Returning a non-nil node substitutes
// it into the arena at the same id before the walk descends into children;
// returning nil keeps the node as is.
type VisitorFunc func(ctx context.Context, n *tree.Node) (*tree.Node, error)

// HookFunc runs before or after a visitor plugin's walk.
type HookFunc func(ctx context.Context, t *tree.Tree) error

// Kind is a plugin's resolved classification.
type Kind int

const (
	// KindNone marks a record with neither capability; the manager
	// ignores such records.
	KindNone Kind = iota
	// KindTransform marks a whole-tree rewrite plugin.
	KindTransform
	// KindVisitor marks a per-node-type visitor plugin.
	KindVisitor
)

func (k Kind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindVisitor:
		return "visitor"
	default:
		return "none"
	}
}

// Plugin is a capability record. Exactly one of Transform and Visitors is
// meant to be set; use NewTransform or NewVisitor rather than assembling
// records by hand.
type Plugin struct {
	Meta Metadata

	// Transform, when set, classifies the record as a transform plugin.
	// It takes precedence over Visitors.
	Transform transform.Func

	// Visitors maps node-type tags to per-node rewrite functions.
	Visitors map[string]VisitorFunc

	// Setup and Teardown, when set, bracket the visitor walk. They are
	// ignored on transform plugins.
	Setup    HookFunc
	Teardown HookFunc
}

// Kind classifies the record: Transform wins over Visitors, and a record
// with neither is KindNone.
func (p Plugin) Kind() Kind {
	switch {
	case p.Transform != nil:
		return KindTransform
	case p.Visitors != nil:
		return KindVisitor
	default:
		return KindNone
	}
}

// NewTransform binds metadata to a whole-tree rewrite.
func NewTransform(meta Metadata, fn transform.Func) Plugin {
	return Plugin{Meta: meta, Transform: fn}
}

// NewVisitor binds metadata to a visitors mapping.
func NewVisitor(meta Metadata, visitors map[string]VisitorFunc) Plugin {
	return Plugin{Meta: meta, Visitors: visitors}
}

// WithSetup sets the hook run before the plugin's walk. Chainable.
func (p Plugin) WithSetup(fn HookFunc) Plugin {
	p.Setup = fn
	return p
}

// WithTeardown sets the hook run after the plugin's walk. Chainable.
func (p Plugin) WithTeardown(fn HookFunc) Plugin {
	p.Teardown = fn
	return p
}
