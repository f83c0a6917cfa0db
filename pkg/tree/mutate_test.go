package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	nodeerrors "nodeclass-hq/nodeclass/pkg/errors"
)

func TestAddChild(t *testing.T) {
	root := New("root")
	a := New("a")
	b := New("b")
	mustAdd(t, root, a)
	mustAdd(t, root, b)

	for i, c := range []*Node{a, b} {
		if c.Parent() != root {
			t.Errorf("%s.Parent() = %v, want root", c, c.Parent())
		}
		if c.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", c, c.Index(), i)
		}
	}
	if root.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d, want 2", root.ChildCount())
	}
}

func TestAddChildUniqueNames(t *testing.T) {
	root := New("root")
	first := New("X")
	second := New("X")
	third := New("X")
	mustAdd(t, root, first)
	mustAdd(t, root, second)
	mustAdd(t, root, third)

	want := []string{"X", "X1", "X2"}
	if diff := cmp.Diff(want, names(root.Children())); diff != "" {
		t.Errorf("child names mismatch (-want +got):\n%s", diff)
	}
}

func TestAddChildNamesAreScopedToSiblings(t *testing.T) {
	root := New("X")
	child := New("X")
	mustAdd(t, root, child)

	if child.Name() != "X" {
		t.Errorf("child Name() = %q, want %q", child.Name(), "X")
	}
}

func TestAddChildErrors(t *testing.T) {
	root := New("root")
	child := New("child")
	mustAdd(t, root, child)
	grandchild := New("grandchild")
	mustAdd(t, child, grandchild)
	other := New("other")

	tests := []struct {
		name   string
		parent *Node
		child  *Node
	}{
		{name: "nil child", parent: root, child: nil},
		{name: "self", parent: root, child: root},
		{name: "already parented elsewhere", parent: other, child: grandchild},
		{name: "already parented here", parent: root, child: child},
		{name: "ancestor", parent: grandchild, child: root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.parent.Children()

			err := tt.parent.AddChild(tt.child)
			if !errors.Is(err, nodeerrors.ErrInvalidArgument) {
				t.Fatalf("AddChild() error = %v, want invalid_argument", err)
			}
			if diff := cmp.Diff(names(before), names(tt.parent.Children())); diff != "" {
				t.Errorf("children changed after failure (-before +after):\n%s", diff)
			}
		})
	}
}

func TestInsertChildIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{name: "front", index: 0, want: []string{"new", "a", "b", "c"}},
		{name: "middle", index: 2, want: []string{"a", "b", "new", "c"}},
		{name: "end", index: 3, want: []string{"a", "b", "c", "new"}},
		{name: "past end clamps", index: 10, want: []string{"a", "b", "c", "new"}},
		{name: "minus one appends", index: -1, want: []string{"a", "b", "c", "new"}},
		{name: "minus two", index: -2, want: []string{"a", "b", "new", "c"}},
		{name: "minus count", index: -3, want: []string{"a", "new", "b", "c"}},
		{name: "before front clamps", index: -4, want: []string{"new", "a", "b", "c"}},
		{name: "far before front clamps", index: -100, want: []string{"new", "a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New("root")
			for _, name := range []string{"a", "b", "c"} {
				mustAdd(t, root, New(name))
			}

			added := New("new")
			if err := root.InsertChild(added, tt.index); err != nil {
				t.Fatalf("InsertChild() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, names(root.Children())); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
			for i, c := range root.Children() {
				if c.Index() != i {
					t.Errorf("%s.Index() = %d, want %d", c, c.Index(), i)
				}
			}
		})
	}
}

func TestRemoveChild(t *testing.T) {
	root := New("root")
	a := New("a")
	b := New("b")
	mustAdd(t, root, a)
	mustAdd(t, root, b)

	if err := root.RemoveChild(a); err != nil {
		t.Fatalf("RemoveChild() error = %v", err)
	}

	if a.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if diff := cmp.Diff([]string{"b"}, names(root.Children())); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if b.Index() != 0 {
		t.Errorf("b.Index() = %d, want 0", b.Index())
	}
}

func TestRemoveChildErrors(t *testing.T) {
	root := New("root")
	other := New("other")
	stranger := New("stranger")
	mustAdd(t, other, stranger)

	for _, child := range []*Node{nil, root, New("detached"), stranger} {
		if err := root.RemoveChild(child); !errors.Is(err, nodeerrors.ErrInvalidArgument) {
			t.Errorf("RemoveChild(%v) error = %v, want invalid_argument", child, err)
		}
	}
	if stranger.Parent() != other {
		t.Error("failed RemoveChild should not detach the node from its real parent")
	}
}

func TestRemove(t *testing.T) {
	root := New("root")
	child := New("child")
	mustAdd(t, root, child)

	if err := child.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if child.Parent() != nil || root.ChildCount() != 0 {
		t.Error("Remove() should detach both directions")
	}

	if err := child.Remove(); !errors.Is(err, nodeerrors.ErrPreconditionFailed) {
		t.Errorf("Remove() on root error = %v, want precondition_failed", err)
	}
}

func TestMoveChild(t *testing.T) {
	tests := []struct {
		name  string
		move  string
		index int
		want  []string
	}{
		{name: "to front", move: "c", index: 0, want: []string{"c", "a", "b", "d"}},
		{name: "to end", move: "a", index: 3, want: []string{"b", "c", "d", "a"}},
		{name: "past end", move: "a", index: 99, want: []string{"b", "c", "d", "a"}},
		{name: "minus one lands before last", move: "a", index: -1, want: []string{"b", "c", "a", "d"}},
		{name: "far negative lands at front", move: "d", index: -99, want: []string{"d", "a", "b", "c"}},
		{name: "same place", move: "b", index: 1, want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New("root")
			for _, name := range []string{"a", "b", "c", "d"} {
				mustAdd(t, root, New(name))
			}
			child := mustChild(t, root, ByName(tt.move))

			if err := root.MoveChild(child, tt.index); err != nil {
				t.Fatalf("MoveChild() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, names(root.Children())); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
			if child.Parent() != root {
				t.Error("moved child should keep its parent")
			}
		})
	}
}

func TestMoveChildDoesNotFireAddRemoveHooks(t *testing.T) {
	var events []string
	hooks := HookFuncs{
		OnChildAdded:   func(_, c *Node) { events = append(events, "added:"+c.Name()) },
		OnChildRemoved: func(_, c *Node) { events = append(events, "removed:"+c.Name()) },
	}
	root := New("root")
	a := New("a")
	mustAdd(t, root, a)
	mustAdd(t, root, New("b"))
	root.SetHooks(hooks)

	if err := a.Move(1); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %v, want none", events)
	}
}

func TestMoveErrors(t *testing.T) {
	root := New("root")
	if err := root.Move(0); !errors.Is(err, nodeerrors.ErrPreconditionFailed) {
		t.Errorf("Move() on root error = %v, want precondition_failed", err)
	}
	if err := root.MoveChild(New("detached"), 0); !errors.Is(err, nodeerrors.ErrInvalidArgument) {
		t.Errorf("MoveChild(detached) error = %v, want invalid_argument", err)
	}
	if err := root.MoveChild(nil, 0); !errors.Is(err, nodeerrors.ErrInvalidArgument) {
		t.Errorf("MoveChild(nil) error = %v, want invalid_argument", err)
	}
}

func TestRename(t *testing.T) {
	root := New("root")
	a := New("a")
	b := New("b")
	c := New("c")
	mustAdd(t, root, a)
	mustAdd(t, root, b)
	mustAdd(t, root, c)

	b.Rename("a")
	if b.Name() != "a1" {
		t.Errorf("b.Name() = %q, want %q", b.Name(), "a1")
	}

	c.Rename("a")
	if c.Name() != "a2" {
		t.Errorf("c.Name() = %q, want %q", c.Name(), "a2")
	}

	// Renaming to its own current name keeps it
	a.Rename("a")
	if a.Name() != "a" {
		t.Errorf("a.Name() = %q, want %q", a.Name(), "a")
	}

	// Without a parent any name is accepted
	root.Rename("a")
	if root.Name() != "a" {
		t.Errorf("root.Name() = %q, want %q", root.Name(), "a")
	}
}

func TestRenameSkipsTakenSuffixes(t *testing.T) {
	root := New("root")
	for _, name := range []string{"x", "x1", "x2"} {
		mustAdd(t, root, New(name))
	}
	late := New("x")
	mustAdd(t, root, late)

	if late.Name() != "x3" {
		t.Errorf("Name() = %q, want %q", late.Name(), "x3")
	}
}

func TestFree(t *testing.T) {
	root := New("root")
	sub := New("sub")
	mustAdd(t, root, sub)
	left := New("left")
	right := New("right")
	mustAdd(t, sub, left)
	mustAdd(t, sub, right)
	deep := New("deep")
	mustAdd(t, left, deep)

	var freed []string
	hooks := HookFuncs{OnFree: func(n *Node) { freed = append(freed, n.Name()) }}
	for _, n := range []*Node{sub, left, right, deep} {
		n.SetHooks(hooks)
	}

	sub.Free()

	for _, n := range []*Node{sub, left, right, deep} {
		if n.Parent() != nil {
			t.Errorf("%s still has parent %s", n, n.Parent())
		}
		if n.ChildCount() != 0 {
			t.Errorf("%s still has %d children", n, n.ChildCount())
		}
	}
	if root.ChildCount() != 0 {
		t.Errorf("root.ChildCount() = %d, want 0", root.ChildCount())
	}

	want := []string{"deep", "left", "right", "sub"}
	if diff := cmp.Diff(want, freed); diff != "" {
		t.Errorf("free order mismatch (-want +got):\n%s", diff)
	}
}

func TestFreeRoot(t *testing.T) {
	root := buildSample(t)
	root.Free()

	if root.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0", root.ChildCount())
	}
}
