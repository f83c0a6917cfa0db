package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/spf13/afero"
)

func TestWalk(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "tree order",
			args: []string{"walk"},
			want: `
				<TreeNode:'root'>
				  <TreeNode:'Node'> (root)
				    <TreeNode:'Node'> (Node < root)
				    <TreeNode:'Node1'> (Node < root)
				    <TreeNode:'Node2'> (Node < root)
				    <TreeNode:'Node3'> (Node < root)
				  <TreeNode:'Node1'> (root)
				    <TreeNode:'Node'> (Node1 < root)
				    <TreeNode:'Node1'> (Node1 < root)
				  <TreeNode:'Node2'> (root)
				  <TreeNode:'Node3'> (root)
			`,
		},
		{
			name: "inverse tree order",
			args: []string{"walk", "--inverse"},
			want: `
				<TreeNode:'root'>
				  <TreeNode:'Node3'> (root)
				  <TreeNode:'Node2'> (root)
				  <TreeNode:'Node1'> (root)
				    <TreeNode:'Node1'> (Node1 < root)
				    <TreeNode:'Node'> (Node1 < root)
				  <TreeNode:'Node'> (root)
				    <TreeNode:'Node3'> (Node < root)
				    <TreeNode:'Node2'> (Node < root)
				    <TreeNode:'Node1'> (Node < root)
				    <TreeNode:'Node'> (Node < root)
			`,
		},
		{
			name: "level order",
			args: []string{"walk", "--order", "levels"},
			want: `
				<TreeNode:'root'>
				  <TreeNode:'Node'> (root)
				  <TreeNode:'Node1'> (root)
				  <TreeNode:'Node2'> (root)
				  <TreeNode:'Node3'> (root)
				    <TreeNode:'Node'> (Node < root)
				    <TreeNode:'Node1'> (Node < root)
				    <TreeNode:'Node2'> (Node < root)
				    <TreeNode:'Node3'> (Node < root)
				    <TreeNode:'Node'> (Node1 < root)
				    <TreeNode:'Node1'> (Node1 < root)
			`,
		},
		{
			name: "inverse level order",
			args: []string{"walk", "--order", "levels", "--inverse"},
			want: `
				<TreeNode:'root'>
				  <TreeNode:'Node3'> (root)
				  <TreeNode:'Node2'> (root)
				  <TreeNode:'Node1'> (root)
				  <TreeNode:'Node'> (root)
				    <TreeNode:'Node1'> (Node1 < root)
				    <TreeNode:'Node'> (Node1 < root)
				    <TreeNode:'Node3'> (Node < root)
				    <TreeNode:'Node2'> (Node < root)
				    <TreeNode:'Node1'> (Node < root)
				    <TreeNode:'Node'> (Node < root)
			`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, afero.NewMemMapFs(), tt.args...)
			if err != nil {
				t.Fatalf("walk error = %v", err)
			}

			want := strings.TrimSpace(dedent.Dedent(tt.want))
			if got := strings.TrimSpace(out); got != want {
				t.Errorf("walk output mismatch\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestWalkJSON(t *testing.T) {
	out, _, err := executeCommand(t, afero.NewMemMapFs(), "walk", "--format", "json")
	if err != nil {
		t.Fatalf("walk error = %v", err)
	}

	var entries []walkEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	if len(entries) != 10 {
		t.Fatalf("len(entries) = %d, want 10", len(entries))
	}

	second := entries[1]
	if second.Node != "Node" || second.Depth != 2 {
		t.Errorf("entries[1] = %+v, want Node at depth 2", second)
	}
	if strings.Join(second.Path, ",") != "Node,root" {
		t.Errorf("entries[1].Path = %v, want [Node root]", second.Path)
	}
}

func TestWalkErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown order", args: []string{"walk", "--order", "breadth"}},
		{name: "unknown format", args: []string{"walk", "--format", "csv"}},
		{name: "extra argument", args: []string{"walk", "root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := executeCommand(t, afero.NewMemMapFs(), tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
