// Package tree provides the arena-backed tree that all treekit plugins
// operate on.
//
// A Tree owns every node of one AST. Nodes live in a dense, append-only
// arena and are addressed by integer NodeID, so lookups are O(1) and no
// node is ever owned by another node: Parent and Children are relational
// references, not ownership edges. Ids are assigned monotonically from 0
// (the root) and are never reused or compacted, so any id obtained during
// the tree's lifetime remains a valid lookup key even after the node
// becomes unreachable from the root.
//
// Removal is deliberately not a tree primitive. A collaborator "removes"
// a node by detaching its id from the parent's Children list; the arena
// slot stays populated but unreachable, and the whole Tree is discarded
// as a unit when no longer needed.
//
// AddNode is a minimal primitive: it allocates the node but does not
// register the new id into the parent's Children. Callers link ids
// themselves, which lets higher-level builders batch-construct subtrees
// before wiring them up.
package tree
