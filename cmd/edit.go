package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KostasZigo/commitlint/internal/clierr"
	"github.com/KostasZigo/commitlint/internal/constants"
	"github.com/KostasZigo/commitlint/internal/lint"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Lint a commit message file (commit-msg hook)",
	Long: `Validate the commit message stored in a file.
Git passes the message file as the first argument of the commit-msg hook.

Examples:
  # .git/hooks/commit-msg
  exec commitlint edit "$1"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs(1),
	RunE:          runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// runEdit validates the message file and reports violations on stderr.
func runEdit(cmd *cobra.Command, args []string) error {
	message, err := os.ReadFile(args[0])
	if err != nil {
		return clierr.Wrap(constants.ExitFailure, "failed to read commit message", err)
	}

	errs := lint.Validate(message)
	if len(errs) == 0 {
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "found errors in commit message:")
	printErrors(cmd.ErrOrStderr(), errs)
	return clierr.New(constants.ExitViolations, "commit message check failed")
}
