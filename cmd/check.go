package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KostasZigo/commitlint/internal/clierr"
	"github.com/KostasZigo/commitlint/internal/config"
	"github.com/KostasZigo/commitlint/internal/constants"
	"github.com/KostasZigo/commitlint/internal/lint"
	"github.com/KostasZigo/commitlint/internal/repository"
	"github.com/KostasZigo/commitlint/internal/revision"
)

var checkCmd = &cobra.Command{
	Use:   "check <head> <base>",
	Short: "Lint every commit reachable from head but not from base",
	Long: `Validate the messages of all commits in base..head, for use in CI.
Merge and revert commits generated by git are skipped.

Exit status is 1 when a message breaks a rule and 2 when the range could not
be checked (unknown revision, missing object, git failure).

Examples:
  # Check a pull request branch against main
  commitlint check HEAD origin/main

  # Read history in-process instead of running git
  commitlint check --backend go-git HEAD origin/main`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs(2),
	RunE:          runCheck,
}

var (
	configFlag  string
	backendFlag string
	timeoutFlag time.Duration
	jobsFlag    int
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&configFlag, "config", "", "Path to the configuration file (default: <repo root>/"+constants.ConfigFileName+")")
	checkCmd.Flags().StringVar(&backendFlag, "backend", constants.BackendExec, "History backend: exec or go-git")
	checkCmd.Flags().DurationVar(&timeoutFlag, "timeout", constants.DefaultTimeout, "Timeout for each git invocation")
	checkCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", constants.DefaultJobs, "Number of commits checked concurrently")
}

// runCheck validates every commit in the range and reports violations per commit.
func runCheck(cmd *cobra.Command, args []string) error {
	root, cfg, err := loadCheckConfig(cmd)
	if err != nil {
		return clierr.Wrap(constants.ExitFailure, "failed to load configuration", err)
	}

	store, err := revision.Open(cfg, root)
	if err != nil {
		return clierr.Wrap(constants.ExitFailure, "failed to open repository", err)
	}

	report, err := lint.CheckRange(cmd.Context(), store, args[0], args[1], cfg.Check.Jobs)
	if err != nil {
		return clierr.Wrap(constants.ExitFailure, "failed to check commit range", err)
	}

	stderr := cmd.ErrOrStderr()
	for _, result := range report.Failed() {
		fmt.Fprintf(stderr, "found errors in commit message of %s\n", result.Hash)
		printErrors(stderr, result.Errors)
	}
	if report.HasViolations() {
		return clierr.New(constants.ExitViolations, "commit message check failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "checked %d commit(s)\n", len(report.Results))
	return nil
}

// loadCheckConfig finds the repository root and merges the config file with command-line flags.
func loadCheckConfig(cmd *cobra.Command) (string, config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", config.Config{}, err
	}
	root, err := repository.FindRoot(wd)
	if err != nil {
		return "", config.Config{}, err
	}

	cfg := config.Default()
	path, found := repository.ConfigPath(root)
	if configFlag != "" {
		path, found = configFlag, true
	}
	if found {
		slog.Debug("Loading configuration", "path", path)
		if cfg, err = config.Load(path); err != nil {
			return "", config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = backendFlag
	}
	if flags.Changed("timeout") {
		cfg.Git.Timeout = timeoutFlag
	}
	if flags.Changed("jobs") {
		cfg.Check.Jobs = jobsFlag
	}

	if err := cfg.Validate(); err != nil {
		return "", config.Config{}, err
	}
	return root, cfg, nil
}
