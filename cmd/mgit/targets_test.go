package main

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeRepo creates a directory containing an empty .git directory.
func fakeRepo(t *testing.T, root, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, name, ".git"), 0755); err != nil {
		t.Fatalf("failed to create fake repo: %v", err)
	}
}

func TestDiscoverTargets(t *testing.T) {
	t.Parallel()

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		_, err := discoverTargets(filepath.Join(t.TempDir(), "nope"), false, "")
		if err == nil {
			t.Error("discoverTargets = nil, want error for missing root")
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := discoverTargets(path, false, "")
		if err == nil {
			t.Error("discoverTargets = nil, want error for non-directory root")
		}
	})

	t.Run("finds repos", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		fakeRepo(t, root, "alpha")
		fakeRepo(t, root, "beta")

		repos, err := discoverTargets(root, false, "")
		if err != nil {
			t.Fatalf("discoverTargets = %v, want nil", err)
		}
		if len(repos) != 2 {
			t.Errorf("discoverTargets found %d repos, want 2", len(repos))
		}
	})

	t.Run("applies filter", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		fakeRepo(t, root, "alpha")
		fakeRepo(t, root, "beta")

		repos, err := discoverTargets(root, false, "alp")
		if err != nil {
			t.Fatalf("discoverTargets = %v, want nil", err)
		}
		if len(repos) != 1 || repos[0].Name != "alpha" {
			t.Errorf("discoverTargets(alp) = %v, want [alpha]", repos)
		}
	})
}

func TestFilterArg(t *testing.T) {
	t.Parallel()

	if got := filterArg(nil); got != "" {
		t.Errorf("filterArg(nil) = %q, want empty", got)
	}
	if got := filterArg([]string{"pattern"}); got != "pattern" {
		t.Errorf("filterArg = %q, want %q", got, "pattern")
	}
}
