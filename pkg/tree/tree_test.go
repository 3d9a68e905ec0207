package tree

import "testing"

func TestNew_RootInvariants(t *testing.T) {
	tr := New("hello world")

	if tr.Root != 0 {
		t.Errorf("expected root id 0, got %d", tr.Root)
	}
	if tr.Len() != 1 {
		t.Errorf("expected 1 node, got %d", tr.Len())
	}
	if got := tr.Meta[MetaSource]; got != "hello world" {
		t.Errorf("expected source in meta, got %v", got)
	}

	root, ok := tr.Node(tr.Root)
	if !ok {
		t.Fatal("root does not resolve")
	}
	if root.Type != RootType {
		t.Errorf("expected root type %q, got %q", RootType, root.Type)
	}
	if root.Parent != InvalidID {
		t.Errorf("expected root parent %d, got %d", InvalidID, root.Parent)
	}
	if len(root.Children) != 0 {
		t.Errorf("expected no children, got %v", root.Children)
	}
}

func TestAddNode_MonotonicIDs(t *testing.T) {
	tr := New("")

	for want := 1; want <= 5; want++ {
		id, err := tr.AddNode(NodeSpec{Type: "paragraph", Parent: tr.Root})
		if err != nil {
			t.Fatalf("failed to add node: %v", err)
		}
		if id != NodeID(want) {
			t.Errorf("expected id %d, got %d", want, id)
		}
	}
	if tr.Len() != 6 {
		t.Errorf("expected 6 nodes, got %d", tr.Len())
	}
}

func TestAddNode_UnknownParent(t *testing.T) {
	tr := New("")

	if _, err := tr.AddNode(NodeSpec{Type: "text", Parent: 42}); err == nil {
		t.Error("expected error for nonexistent parent")
	}
	if _, err := tr.AddNode(NodeSpec{Type: "text", Parent: InvalidID}); err == nil {
		t.Error("expected error for invalid parent id")
	}
}

func TestAddNode_DoesNotLinkIntoParent(t *testing.T) {
	tr := New("")

	id, err := tr.AddNode(NodeSpec{Type: "paragraph", Parent: tr.Root, Span: &Span{Start: 0, End: 5}})
	if err != nil {
		t.Fatalf("failed to add node: %v", err)
	}

	root, _ := tr.Node(tr.Root)
	if len(root.Children) != 0 {
		t.Errorf("AddNode must not register %d into the parent's children, got %v", id, root.Children)
	}

	n, _ := tr.Node(id)
	if n.Span == nil || n.Span.End != 5 {
		t.Errorf("expected span to be retained, got %v", n.Span)
	}
}

func TestChildren_SkipsDangling(t *testing.T) {
	tr := New("")
	a, _ := tr.AddNode(NodeSpec{Type: "text", Parent: tr.Root})
	b, _ := tr.AddNode(NodeSpec{Type: "text", Parent: tr.Root})

	root, _ := tr.Node(tr.Root)
	root.Children = []NodeID{a, 99, b}

	got := tr.Children(tr.Root)
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved children, got %d", len(got))
	}
	if got[0].ID != a || got[1].ID != b {
		t.Errorf("expected children [%d %d], got [%d %d]", a, b, got[0].ID, got[1].ID)
	}

	if tr.Children(99) != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestReplace_KeepsSlotIdentity(t *testing.T) {
	tr := New("")
	id, _ := tr.AddNode(NodeSpec{Type: "code", Parent: tr.Root})

	ok := tr.Replace(id, &Node{Type: "codeBlock", Parent: tr.Root, Children: []NodeID{}})
	if !ok {
		t.Fatal("expected replacement to happen")
	}

	n, _ := tr.Node(id)
	if n.ID != id {
		t.Errorf("replacement must occupy the same id, got %d", n.ID)
	}
	if n.Type != "codeBlock" {
		t.Errorf("expected replaced type, got %q", n.Type)
	}

	if tr.Replace(99, &Node{Type: "x"}) {
		t.Error("expected no replacement for unknown id")
	}
	if tr.Replace(id, nil) {
		t.Error("expected no replacement for nil node")
	}
}
