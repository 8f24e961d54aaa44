// Package cli implements the policygraph command-line interface.
//
// The CLI is a diagnostic shell around the graph core: it lists the
// operator registry and drives a built-in demo policy through the
// tick-based mutate/evaluate cycle that embedding simulations use. It does
// not load or store graphs; graphs are always constructed in code.
//
// # Commands
//
//   - ops: print the operator registry with indices, arities, and synopses
//   - simulate: run the demo agent policy against a TOML scenario
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; with --verbose the graph's cache and
// invalidation events are logged through the observe hooks.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the policygraph CLI and returns an error if any command
// fails. The context carries cancellation from the caller (typically a
// signal-aware context from main).
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "policygraph",
		Short:        "Policygraph evaluates memoized scalar decision graphs",
		Long:         `Policygraph is a diagnostic CLI for scalar decision graphs: directed graphs of nodes that compute, cache, and selectively recompute values as their inputs change.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("policygraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newOpsCmd())
	root.AddCommand(newSimulateCmd())

	return root.ExecuteContext(ctx)
}
