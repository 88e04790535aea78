package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/KostasZigo/commitlint/internal/clierr"
	"github.com/KostasZigo/commitlint/internal/constants"
	"github.com/KostasZigo/commitlint/internal/lint"
)

// rootCmd defines the base command for the commitlint CLI.
// Subcommands (edit, check, version) register under this root.
var rootCmd = &cobra.Command{
	Use:   "commitlint",
	Short: "A single binary commit message linter for Conventional Commits",
	Long: `Commitlint validates commit messages against the Conventional Commits convention:
	type(scope)!: subject

It runs as a commit-msg hook on a single message file (edit), or in CI on
every commit between two revisions (check).`,
	PersistentPreRunE: setupLogging,
	SilenceErrors:     true,
}

var verboseFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of commitlint",
	Args:  exactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "commitlint version %s\n", constants.Version)
	},
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
// Violations are already listed by the command; any other error is printed here.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	code := clierr.ExitCodeOf(err)
	if code != constants.ExitViolations {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}

// setupLogging routes slog to stderr: warnings by default, everything with --verbose.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verboseFlag {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// printErrors writes one indented line per violation.
func printErrors(w io.Writer, errs []lint.MessageError) {
	for _, e := range errs {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
