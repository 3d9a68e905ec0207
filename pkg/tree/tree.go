package tree

import "fmt"

// MetaSource is the Meta key under which New records the source text.
const MetaSource = "source"

// Tree owns all nodes of one AST. The zero value is not usable; construct
// trees with New.
type Tree struct {
	// Root is the id of the entry node, 0 for trees built by New.
	Root NodeID

	// Meta holds free-form tree-level data.
	Meta map[string]any

	nodes []*Node
}

// New allocates a fresh tree containing exactly one node: the root, with
// id 0, type "root" and no children. The source text is retained under
// Meta["source"].
func New(source string) *Tree {
	t := &Tree{
		Meta: map[string]any{MetaSource: source},
	}
	t.nodes = append(t.nodes, &Node{
		ID:       0,
		Type:     RootType,
		Parent:   InvalidID,
		Children: []NodeID{},
	})
	t.Root = 0
	return t
}

// AddNode appends a new node at the next sequential id and returns that id.
// It fails if spec.Parent does not resolve to an existing node.
//
// AddNode does not register the new id into the parent's Children list;
// the caller is responsible for that linkage.
func (t *Tree) AddNode(spec NodeSpec) (NodeID, error) {
	if _, ok := t.Node(spec.Parent); !ok {
		return InvalidID, fmt.Errorf("tree: parent node %d does not exist", spec.Parent)
	}
	children := spec.Children
	if children == nil {
		children = []NodeID{}
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		ID:       id,
		Type:     spec.Type,
		Span:     spec.Span,
		Parent:   spec.Parent,
		Children: children,
		Data:     spec.Data,
	})
	return id, nil
}

// Node returns the arena entry for id, or false if id does not resolve.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[id], true
}

// Len returns the number of arena entries, including nodes that are no
// longer reachable from the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Children resolves the target node's child ids through the arena and
// returns the nodes in order. Ids that do not resolve are skipped, not
// reported as errors.
func (t *Tree) Children(id NodeID) []*Node {
	n, ok := t.Node(id)
	if !ok {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		if child, ok := t.Node(cid); ok {
			out = append(out, child)
		}
	}
	return out
}

// Replace substitutes the arena entry at id with n, forcing n's ID to the
// slot id so node identity survives the rewrite. It reports whether the
// substitution happened; it does not happen when id does not resolve or
// n is nil.
func (t *Tree) Replace(id NodeID, n *Node) bool {
	if n == nil {
		return false
	}
	if _, ok := t.Node(id); !ok {
		return false
	}
	n.ID = id
	t.nodes[id] = n
	return true
}
