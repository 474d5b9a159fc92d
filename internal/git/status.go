package git

import (
	"context"
	"strings"
)

// DetachedBranch is the branch sentinel shown for a detached HEAD.
const DetachedBranch = "?"

// Status is the state of one repository as shown by `mgit status`.
// Unpushed is only probed when the worktree is clean; a dirty repo
// reports Unpushed false by definition since dirty dominates the
// display anyway.
type Status struct {
	Name     string
	Branch   string
	Dirty    bool
	Unpushed bool

	// Err marks a repository whose git invocations could not be
	// launched at all. The other fields are meaningless when set.
	Err error
}

// CheckStatus derives the status of a single repository. Worst case two
// git invocations for a dirty repo, three for a clean one.
func CheckStatus(ctx context.Context, repo Repo) Status {
	st := Status{Name: repo.Name}

	out, err := outputGit(ctx, repo.Path, "branch", "--show-current")
	if err != nil {
		st.Err = err
		return st
	}
	st.Branch = strings.TrimSpace(string(out))
	if st.Branch == "" {
		st.Branch = DetachedBranch
	}

	out, err = outputGit(ctx, repo.Path, "status", "--porcelain")
	if err != nil {
		st.Err = err
		return st
	}
	st.Dirty = len(strings.TrimSpace(string(out))) > 0

	if !st.Dirty {
		st.Unpushed = hasUnpushed(ctx, repo.Path)
	}
	return st
}

// hasUnpushed reports whether HEAD has at least one commit its upstream
// lacks. Errors (no upstream configured, detached HEAD) count as "no".
func hasUnpushed(ctx context.Context, dir string) bool {
	out, err := outputGit(ctx, dir, "log", "@{upstream}..", "--format=%h", "-1")
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}
