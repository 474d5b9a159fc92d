package git

import (
	"context"
	"strings"
)

// PullResult carries the raw output of one `git pull`. Git's own
// non-zero exits (merge conflicts, diverged branches) are not errors:
// whatever git printed is passed through for the user to read. Err is
// only set when the process could not be launched.
type PullResult struct {
	Name   string
	Stdout string
	Stderr string
	Err    error
}

// Pull runs `git pull` in one repository.
func Pull(ctx context.Context, repo Repo) PullResult {
	res, err := captureGit(ctx, repo.Path, "pull")
	if err != nil {
		return PullResult{Name: repo.Name, Err: err}
	}
	return PullResult{
		Name:   repo.Name,
		Stdout: strings.TrimRight(string(res.Stdout), "\n"),
		Stderr: strings.TrimRight(string(res.Stderr), "\n"),
	}
}
