package main

import (
	"github.com/spf13/cobra"
)

func newPullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull [filter]",
		Short:   "Run git pull in every repo",
		Aliases: []string{"pl"},
		Args:    cobra.MaximumNArgs(1),
		Long: `Run 'git pull' in every discovered repository, all in parallel,
and print each repo's own output once everything has finished.

Blocks appear in completion order, not alphabetically: fast repos
print before slow ones. Git's own failures (conflicts, diverged
branches) are printed as-is for you to act on.`,
		Example: `  mgit pull                  # Pull everything under the search path
  mgit pull -p ~/src -s      # Search ~/src two levels deep
  mgit pull dotf             # Only repos fuzzy-matching "dotf"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd.Context(), filterArg(args))
		},
	}
	return cmd
}
