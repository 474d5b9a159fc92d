package git

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hgranberg/mgit/internal/log"
)

// testContext returns a context with a silent logger attached.
func testContext() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := testContext()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// commitFile writes a file and commits it.
func commitFile(t *testing.T, repoPath, name, content, message string) {
	t.Helper()
	ctx := testContext()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("failed to add %s: %v", name, err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", message); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// setupTestRepo creates a git repo with main branch and an initial
// commit inside dir. Returns the repo path.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()
	repoPath := filepath.Join(dir, name)

	ctx := testContext()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# "+name+"\n", "Initial commit")

	return repoPath
}

// setupTestRepoWithOrigin creates a repo cloned from a bare origin with
// one pushed commit. Returns (repoPath, originPath).
func setupTestRepoWithOrigin(t *testing.T, dir, name string) (string, string) {
	t.Helper()
	originPath := filepath.Join(dir, name+"-origin.git")
	repoPath := filepath.Join(dir, name)

	ctx := testContext()
	// -b main keeps the default branch consistent across git versions
	if err := runGit(ctx, "", "init", "--bare", "-b", "main", originPath); err != nil {
		t.Fatalf("failed to init bare repo: %v", err)
	}
	if err := runGit(ctx, "", "clone", originPath, repoPath); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}
	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# "+name+"\n", "Initial commit")
	if err := runGit(ctx, repoPath, "push", "-u", "origin", "HEAD"); err != nil {
		t.Fatalf("failed to push: %v", err)
	}

	return repoPath, originPath
}
