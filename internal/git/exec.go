package git

import (
	"context"

	"github.com/hgranberg/mgit/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit executes a git command with context support and verbose
// logging, returning stdout. Non-zero exit is an error carrying git's
// stderr message.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// captureGit executes a git command and captures exit code, stdout and
// stderr without treating a non-zero exit as an error.
func captureGit(ctx context.Context, dir string, args ...string) (cmd.Result, error) {
	return cmd.CaptureContext(ctx, "", "git", gitArgs(dir, args)...)
}
