// Package cli implements the bridgetorch command-line interface.
//
// Commands:
//   - solve: compute the fastest crossing for times given on the command line
//   - puzzles: list the preset catalogue, or solve one preset by name
//
// All commands accept --verbose (-v) for debug logging on stderr.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"bridge-torch-service/internal/platform/obs"
)

// Execute builds the command tree and runs it with args.
// Results go to stdout, logs to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "bridgetorch",
		Short:         "Solve bridge and torch crossing puzzles",
		Long:          `bridgetorch finds the minimum total time to move everyone across a bridge when a single torch must accompany every crossing and only a limited number of people fit on the bridge at once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if verbose {
				level = "debug"
			}
			cmd.SetContext(withLogger(cmd.Context(), obs.SetupDefault(stderr, level)))
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newPuzzlesCmd())

	return root
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default when no logger is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
