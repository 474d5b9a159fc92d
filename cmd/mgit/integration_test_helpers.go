//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/hgranberg/mgit/internal/log"
	"github.com/hgranberg/mgit/internal/output"
	"github.com/hgranberg/mgit/internal/ui/styles"
)

// testContext returns a context with a silent logger and a printer
// writing into the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&bytes.Buffer{}, false, false))
	ctx = output.WithPrinter(ctx, &buf)
	return ctx, &buf
}

// setGlobals points the package-level flag state at the given root with
// a plain palette, restoring everything when the test ends.
func setGlobals(t *testing.T, root string, sub bool) {
	t.Helper()
	oldRoot, oldSub, oldPal := rootPath, subLevel, pal
	rootPath, subLevel, pal = root, sub, styles.New(false)
	t.Cleanup(func() {
		rootPath, subLevel, pal = oldRoot, oldSub, oldPal
	})
}

// resolvePath resolves symlinks in a path (macOS /var -> /private/var).
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// mustGit runs a git command in dir and fails the test on error.
func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit in dir/name.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	mustGit(t, repoPath, "init", "-b", "main")
	mustGit(t, repoPath, "config", "user.email", "test@test.com")
	mustGit(t, repoPath, "config", "user.name", "Test User")
	mustGit(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	mustGit(t, repoPath, "add", "README.md")
	mustGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// setupClonedRepo creates dir/name cloned from a bare origin with one
// pushed commit, so `git pull` has an upstream to talk to.
func setupClonedRepo(t *testing.T, dir, name string) string {
	t.Helper()
	originPath := filepath.Join(dir, "."+name+"-origin.git")

	mustGit(t, dir, "init", "--bare", "-b", "main", originPath)
	mustGit(t, dir, "clone", originPath, filepath.Join(dir, name))

	repoPath := filepath.Join(dir, name)
	mustGit(t, repoPath, "config", "user.email", "test@test.com")
	mustGit(t, repoPath, "config", "user.name", "Test User")
	mustGit(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	mustGit(t, repoPath, "add", "README.md")
	mustGit(t, repoPath, "commit", "-m", "Initial commit")
	mustGit(t, repoPath, "push", "-u", "origin", "HEAD")

	return repoPath
}
