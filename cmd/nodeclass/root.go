package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"nodeclass-hq/nodeclass/pkg/chain"
	"nodeclass-hq/nodeclass/pkg/cli"
	"nodeclass-hq/nodeclass/pkg/config"
	"nodeclass-hq/nodeclass/pkg/telemetry/logging"
	"nodeclass-hq/nodeclass/pkg/telemetry/metrics"
	"nodeclass-hq/nodeclass/pkg/tree"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// appFs is the filesystem configuration is read from.
	appFs afero.Fs = afero.NewOsFs()

	// app is set up by the root command before any subcommand runs.
	app *session
)

// session holds what every subcommand needs for one invocation.
type session struct {
	cfg     *config.Config
	log     *logging.ContextLogger
	metrics *metrics.Collector
}

var rootCmd = &cobra.Command{
	Use:   "nodeclass",
	Short: "Nodeclass - named node hierarchies",
	Long: `Nodeclass builds trees and chains of named nodes and prints them.

Sibling names stay unique: a node added next to a sibling with the same name
is renamed Node, Node1, Node2 and so on. The sample structures are sized by
the "sample" section of the configuration file.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRuntime,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := cli.SetupSignalHandler(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setupRuntime loads configuration, creates the logger and tags the command
// context with a fresh run id.
func setupRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cli.NewConfigError(cfgFile, err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.FromConfig(cfg.Logging, cmd.ErrOrStderr()))
	if err != nil {
		return cli.NewConfigError(cfgFile, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, uuid.NewString())
	ctx = logging.WithCommand(ctx, cmd.Name())
	cmd.SetContext(ctx)

	app = &session{
		cfg:     cfg,
		log:     logging.NewContextLogger(logger, ctx),
		metrics: metrics.NewCollector(&cfg.Metrics, nil),
	}

	app.log.Debug("configuration loaded",
		"path", cfgFile,
		"render_style", cfg.Render.Style,
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	return nil
}

// loadConfig requires the file only when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.LoadConfigWithEnvOverrides(appFs, cfgFile)
	}
	return config.LoadOptional(appFs, cfgFile)
}

// treeHooks combines debug logging with event counting.
func (s *session) treeHooks() tree.Hooks {
	return tree.MultiHooks(logging.TreeHooks(s.log), s.metrics.TreeHooks())
}

// chainHooks combines debug logging with event counting.
func (s *session) chainHooks() chain.Hooks {
	return chain.MultiHooks(logging.ChainHooks(s.log), s.metrics.ChainHooks())
}
