// Package logging provides structured logging for nodeclass.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Context-aware logging with run IDs and command names
//   - Configurable log levels (debug, info, warn, error)
//   - Hooks that trace tree and chain mutations
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "console",
//	})
//
//	ctx := logging.WithRunID(ctx, uuid.NewString())
//	cl := logging.NewContextLogger(logger, ctx)
//	cl.Info("building sample")  // Includes run_id automatically
//
//	root := tree.New("root", tree.WithHooks(logging.TreeHooks(cl)))
package logging
