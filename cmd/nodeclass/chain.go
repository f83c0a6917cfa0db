package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nodeclass-hq/nodeclass/pkg/cli"
	"nodeclass-hq/nodeclass/pkg/sample"
)

var chainFind string

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Build the sample chain and print it",
	Long: `Build a chain of "start", sample.chain_length unnamed nodes, "middle",
another sample.chain_length unnamed nodes and "end", then print it from the
start node. Unnamed nodes are numbered Node, Node1, Node2 and so on across
the whole chain.`,
	Example: `  nodeclass chain
  nodeclass chain --find middle`,
	Args: cobra.NoArgs,
	RunE: runChain,
}

func init() {
	chainCmd.Flags().StringVar(&chainFind, "find", "", "print the chain from the node with this name")

	rootCmd.AddCommand(chainCmd)
}

func runChain(cmd *cobra.Command, _ []string) error {
	start, err := sample.Chain(app.cfg.Sample, app.chainHooks())
	if err != nil {
		return cli.NewCommandError("chain", err)
	}

	from := start
	if chainFind != "" {
		from = start.Find(chainFind)
		if from == nil {
			return cli.NewCommandError("chain", fmt.Errorf("no node named %q", chainFind))
		}
	}

	app.log.Debug("sample chain built", "start", start.Repr(), "end", start.End().Repr())

	fmt.Fprintln(cmd.OutOrStdout(), from.ReprChain())
	return nil
}
