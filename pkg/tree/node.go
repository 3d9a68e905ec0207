package tree

// NodeID is an index into a Tree's node arena. It is a plain integer,
// never an owning reference.
type NodeID int

// InvalidID marks the absence of a node reference, e.g. the root's parent.
const InvalidID NodeID = -1

// RootType is the type tag of the arena's id-0 entry.
const RootType = "root"

// Span records a half-open byte range [Start, End) in the source text.
type Span struct {
	Start int
	End   int
}

// Node is a single arena entry: a type tag, relational parent/children
// references, and optional source span and free-form data.
type Node struct {
	ID       NodeID
	Type     string
	Span     *Span
	Parent   NodeID
	Children []NodeID
	Data     map[string]any
}

// NodeSpec describes a node to append to a tree. Type and Parent are
// required; Parent must name an existing node.
type NodeSpec struct {
	Type     string
	Parent   NodeID
	Children []NodeID
	Span     *Span
	Data     map[string]any
}
