package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/hgranberg/mgit/internal/git"
	"github.com/hgranberg/mgit/internal/log"
	"github.com/hgranberg/mgit/internal/output"
	"github.com/hgranberg/mgit/internal/ui/styles"
)

var (
	// Global flags
	rootPath  string
	subLevel  bool
	verbose   bool
	quiet     bool
	colorFlag string

	// Palette for the active run, set once flags are parsed
	pal styles.Palette
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mgit",
	Short: "Run git pull or status across every repo under a directory",
	Long: `mgit finds all git repositories under a directory (optionally one
level deeper) and runs the same operation against each of them in
parallel: update them all with 'mgit pull', or get a color-coded
overview of branches, dirty worktrees and unpushed commits with
'mgit status'.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		mode, err := styles.ParseMode(colorFlag)
		if err != nil {
			return err
		}
		pal = styles.New(mode.Enabled(os.Stdout))

		// Flags are only parsed now, so the logger and printer are
		// attached here rather than in Execute.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))

		out := io.Writer(os.Stdout)
		if mode != styles.ModeAlways {
			// Downsample or strip ANSI to what the terminal supports
			out = colorprofile.NewWriter(os.Stdout, os.Environ())
		}
		ctx = output.WithPrinter(ctx, out)
		cmd.SetContext(ctx)

		// Without git no repo can be evaluated at all
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Cancel in-flight git processes on interrupt and exit quietly
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mgit:", err)
		os.Exit(1)
	}
}

// defaultPath is where repos are searched unless --path says otherwise.
func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Projects")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&rootPath, "path", "p", defaultPath(), "Directory to search for git repos")
	rootCmd.PersistentFlags().BoolVarP(&subLevel, "sub-level", "s", false, "Also search one directory level deeper")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands as they run")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "When to color output: auto, always or never")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newStatusCmd())
}
