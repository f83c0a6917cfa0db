package tree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// labels renders each step as its ancestors from the walk root down,
// followed by the visited node, joined with "/".
func labels(walk []WalkStep) []string {
	out := make([]string, len(walk))
	for i, step := range walk {
		parts := make([]string, 0, len(step.Path)+1)
		for j := len(step.Path) - 1; j >= 0; j-- {
			parts = append(parts, step.Path[j].Name())
		}
		parts = append(parts, step.Node.Name())
		out[i] = strings.Join(parts, "/")
	}
	return out
}

func TestWalkTree(t *testing.T) {
	root := buildSample(t)

	tests := []struct {
		name    string
		inverse bool
		want    []string
	}{
		{
			name: "forward",
			want: []string{
				"root/Node",
				"root/Node/Node",
				"root/Node/Node1",
				"root/Node/Node2",
				"root/Node/Node3",
				"root/Node1",
				"root/Node1/Node",
				"root/Node1/Node1",
				"root/Node2",
				"root/Node3",
			},
		},
		{
			name:    "inverse",
			inverse: true,
			want: []string{
				"root/Node3",
				"root/Node2",
				"root/Node1",
				"root/Node1/Node1",
				"root/Node1/Node",
				"root/Node",
				"root/Node/Node3",
				"root/Node/Node2",
				"root/Node/Node1",
				"root/Node/Node",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labels(root.WalkTree(tt.inverse))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WalkTree() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkLevels(t *testing.T) {
	root := buildSample(t)

	tests := []struct {
		name    string
		inverse bool
		want    []string
	}{
		{
			name: "forward",
			want: []string{
				"root/Node",
				"root/Node1",
				"root/Node2",
				"root/Node3",
				"root/Node/Node",
				"root/Node/Node1",
				"root/Node/Node2",
				"root/Node/Node3",
				"root/Node1/Node",
				"root/Node1/Node1",
			},
		},
		{
			name:    "inverse",
			inverse: true,
			want: []string{
				"root/Node3",
				"root/Node2",
				"root/Node1",
				"root/Node",
				"root/Node1/Node1",
				"root/Node1/Node",
				"root/Node/Node3",
				"root/Node/Node2",
				"root/Node/Node1",
				"root/Node/Node",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labels(root.WalkLevels(tt.inverse))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WalkLevels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkLevelsIsNotBreadthFirst(t *testing.T) {
	// a
	// ├── b
	// │   └── d
	// │       └── e
	// └── c
	//     └── f
	a := New("a")
	b := New("b")
	c := New("c")
	d := New("d")
	mustAdd(t, a, b)
	mustAdd(t, a, c)
	mustAdd(t, b, d)
	mustAdd(t, d, New("e"))
	mustAdd(t, c, New("f"))

	levels := make([]string, 0)
	for _, step := range a.WalkLevels(false) {
		levels = append(levels, step.Node.Name())
	}
	if diff := cmp.Diff([]string{"b", "c", "d", "e", "f"}, levels); diff != "" {
		t.Errorf("WalkLevels() mismatch (-want +got):\n%s", diff)
	}

	pre := make([]string, 0)
	for _, step := range a.WalkTree(false) {
		pre = append(pre, step.Node.Name())
	}
	if diff := cmp.Diff([]string{"b", "d", "e", "c", "f"}, pre); diff != "" {
		t.Errorf("WalkTree() mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkPathOrder(t *testing.T) {
	a := New("a")
	b := New("b")
	c := New("c")
	d := New("d")
	mustAdd(t, a, b)
	mustAdd(t, b, c)
	mustAdd(t, c, d)

	for _, walk := range [][]WalkStep{a.WalkTree(false), a.WalkLevels(false)} {
		last := walk[len(walk)-1]
		if last.Node != d {
			t.Fatalf("last step = %s, want d", last.Node)
		}
		if diff := cmp.Diff([]string{"c", "b", "a"}, names(last.Path)); diff != "" {
			t.Errorf("Path mismatch (-want +got):\n%s", diff)
		}
	}

	// Walking from an inner node stops the path at that node
	walk := b.WalkTree(false)
	if diff := cmp.Diff([]string{"c", "b"}, names(walk[1].Path)); diff != "" {
		t.Errorf("Path from b mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkLeaf(t *testing.T) {
	leaf := New("leaf")
	if got := leaf.WalkTree(false); len(got) != 0 {
		t.Errorf("WalkTree() on leaf = %d steps, want 0", len(got))
	}
	if got := leaf.WalkLevels(true); len(got) != 0 {
		t.Errorf("WalkLevels() on leaf = %d steps, want 0", len(got))
	}
}

func TestWalkCoversSubtree(t *testing.T) {
	root := buildSample(t)
	want := countDescendants(root)

	if got := len(root.WalkTree(false)); got != want {
		t.Errorf("len(WalkTree()) = %d, want %d", got, want)
	}
	if got := len(root.WalkLevels(false)); got != want {
		t.Errorf("len(WalkLevels()) = %d, want %d", got, want)
	}
}
