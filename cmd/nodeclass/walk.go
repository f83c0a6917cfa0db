package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nodeclass-hq/nodeclass/pkg/cli"
	"nodeclass-hq/nodeclass/pkg/sample"
	"nodeclass-hq/nodeclass/pkg/tree"
)

var (
	walkOrder   string
	walkInverse bool
	walkFormat  string
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Print every step of a walk over the sample tree",
	Long: `Walk the sample tree and print one line per visited node, indented by the
length of its path. The path names follow each node, nearest ancestor first.

Orders:
  tree     depth first, each node followed by its subtree
  levels   children of a node listed together before their own children`,
	Example: `  nodeclass walk
  nodeclass walk --order levels --inverse
  nodeclass walk --format json`,
	Args: cobra.NoArgs,
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().StringVar(&walkOrder, "order", "tree", "walk order: tree or levels")
	walkCmd.Flags().BoolVar(&walkInverse, "inverse", false, "visit children last to first")
	walkCmd.Flags().StringVar(&walkFormat, "format", "text", "output format: text or json")

	rootCmd.AddCommand(walkCmd)
}

// walkEntry is the JSON form of one walk step.
type walkEntry struct {
	Node  string   `json:"node"`
	Path  []string `json:"path"`
	Depth int      `json:"depth"`
}

func runWalk(cmd *cobra.Command, _ []string) error {
	format, err := cli.ParseFormat(walkFormat)
	if err != nil {
		return cli.NewCommandError("walk", err)
	}

	root, err := sample.Tree(app.cfg.Sample, app.treeHooks())
	if err != nil {
		return cli.NewCommandError("walk", err)
	}

	var steps []tree.WalkStep
	switch walkOrder {
	case "tree":
		steps = root.WalkTree(walkInverse)
	case "levels":
		steps = root.WalkLevels(walkInverse)
	default:
		return cli.NewCommandError("walk", fmt.Errorf("unknown order %q (want tree or levels)", walkOrder))
	}

	app.metrics.RecordWalk(walkOrder, len(steps))
	app.log.Debug("walk finished", "order", walkOrder, "inverse", walkInverse, "steps", len(steps))

	formatter := cli.NewFormatter(format)
	if format == cli.FormatJSON {
		entries := make([]walkEntry, 0, len(steps))
		for _, step := range steps {
			entries = append(entries, walkEntry{
				Node:  step.Node.Name(),
				Path:  nodeNames(step.Path),
				Depth: len(step.Path),
			})
		}
		return formatter.FormatTo(cmd.OutOrStdout(), entries)
	}

	lines := make([]string, 0, len(steps)+1)
	lines = append(lines, root.Repr())
	for _, step := range steps {
		lines = append(lines, fmt.Sprintf("%s%s (%s)",
			strings.Repeat("  ", len(step.Path)),
			step.Node.Repr(),
			strings.Join(nodeNames(step.Path), " < "),
		))
	}
	return formatter.FormatTo(cmd.OutOrStdout(), lines)
}

func nodeNames(nodes []*tree.Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name()
	}
	return names
}
