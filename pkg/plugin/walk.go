package plugin

import (
	"context"

	"github.com/leapstack-labs/treekit/pkg/tree"
)

// Walker drives one visitor plugin's traversal of a tree. Implementations
// needing a different order (post-order, language-scoped visiting) replace
// the default via WithWalker.
type Walker interface {
	Walk(ctx context.Context, t *tree.Tree, visitors map[string]VisitorFunc) (*tree.Tree, error)
}

// PreOrderWalker is the default traversal: depth-first, parent before
// children, children left to right, mutating the arena in place.
type PreOrderWalker struct{}

// Walk visits every node reachable from the root. When the visitors
// mapping has an entry for a node's type tag, the entry runs and a non-nil
// replacement is substituted at the same arena slot before the walk
// descends, so children are read from the replacement. Child ids that do
// not resolve are skipped silently; omitting a child id from a replacement
// is the supported way for a visitor to prune a subtree. A tree whose root
// id does not resolve is returned unchanged.
func (PreOrderWalker) Walk(ctx context.Context, t *tree.Tree, visitors map[string]VisitorFunc) (*tree.Tree, error) {
	root, ok := t.Node(t.Root)
	if !ok {
		return t, nil
	}
	if err := walkNode(ctx, t, root, visitors); err != nil {
		return nil, err
	}
	return t, nil
}

func walkNode(ctx context.Context, t *tree.Tree, n *tree.Node, visitors map[string]VisitorFunc) error {
	if fn, ok := visitors[n.Type]; ok {
		rep, err := fn(ctx, n)
		if err != nil {
			return err
		}
		if rep != nil {
			t.Replace(n.ID, rep)
			n = rep
		}
	}
	for _, cid := range n.Children {
		child, ok := t.Node(cid)
		if !ok {
			// Dangling reference: pruned or stale, either way skipped.
			continue
		}
		if err := walkNode(ctx, t, child, visitors); err != nil {
			return err
		}
	}
	return nil
}
