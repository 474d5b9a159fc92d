package main

import (
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status [filter]",
		Short:   "Show branch and state of every repo",
		Aliases: []string{"st"},
		Args:    cobra.MaximumNArgs(1),
		Long: `Check every discovered repository in parallel and print an aligned
table sorted by name: one row per repo with its current branch,
colored by state.

  red with '*'     uncommitted changes
  yellow with '+'  clean but with unpushed commits
  green            clean and pushed

A detached HEAD shows '?' as the branch name. The unpushed check is
skipped for dirty repos since dirty already dominates the display.`,
		Example: `  mgit status                # All repos under the search path
  mgit status -s             # Include repos one level deeper
  mgit status api            # Only repos fuzzy-matching "api"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), filterArg(args))
		},
	}
	return cmd
}
