package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	t.Run("clean repo without upstream", func(t *testing.T) {
		t.Parallel()
		dir := resolveTempDir(t)
		repoPath := setupTestRepo(t, dir, "clean")

		st := CheckStatus(testContext(), Repo{Name: "clean", Path: repoPath})
		if st.Err != nil {
			t.Fatalf("CheckStatus error = %v", st.Err)
		}
		if st.Branch != "main" {
			t.Errorf("Branch = %q, want %q", st.Branch, "main")
		}
		if st.Dirty {
			t.Error("Dirty = true, want false")
		}
		// @{upstream} fails without a remote; that means not unpushed
		if st.Unpushed {
			t.Error("Unpushed = true, want false without upstream")
		}
	})

	t.Run("dirty repo", func(t *testing.T) {
		t.Parallel()
		dir := resolveTempDir(t)
		repoPath := setupTestRepo(t, dir, "dirty")
		if err := os.WriteFile(filepath.Join(repoPath, "junk.txt"), []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}

		st := CheckStatus(testContext(), Repo{Name: "dirty", Path: repoPath})
		if st.Err != nil {
			t.Fatalf("CheckStatus error = %v", st.Err)
		}
		if !st.Dirty {
			t.Error("Dirty = false, want true for untracked file")
		}
		// Dirty short-circuits the unpushed probe
		if st.Unpushed {
			t.Error("Unpushed = true, want false for dirty repo")
		}
	})

	t.Run("clean and pushed", func(t *testing.T) {
		t.Parallel()
		dir := resolveTempDir(t)
		repoPath, _ := setupTestRepoWithOrigin(t, dir, "pushed")

		st := CheckStatus(testContext(), Repo{Name: "pushed", Path: repoPath})
		if st.Err != nil {
			t.Fatalf("CheckStatus error = %v", st.Err)
		}
		if st.Dirty || st.Unpushed {
			t.Errorf("status = dirty:%v unpushed:%v, want clean and pushed", st.Dirty, st.Unpushed)
		}
	})

	t.Run("clean with unpushed commit", func(t *testing.T) {
		t.Parallel()
		dir := resolveTempDir(t)
		repoPath, _ := setupTestRepoWithOrigin(t, dir, "ahead")
		commitFile(t, repoPath, "extra.txt", "more\n", "Local only commit")

		st := CheckStatus(testContext(), Repo{Name: "ahead", Path: repoPath})
		if st.Err != nil {
			t.Fatalf("CheckStatus error = %v", st.Err)
		}
		if st.Dirty {
			t.Error("Dirty = true, want false")
		}
		if !st.Unpushed {
			t.Error("Unpushed = false, want true after local commit")
		}
	})

	t.Run("dirty wins over unpushed", func(t *testing.T) {
		t.Parallel()
		dir := resolveTempDir(t)
		repoPath, _ := setupTestRepoWithOrigin(t, dir, "both")
		commitFile(t, repoPath, "extra.txt", "more\n", "Local only commit")
		if err := os.WriteFile(filepath.Join(repoPath, "junk.txt"), []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}

		st := CheckStatus(testContext(), Repo{Name: "both", Path: repoPath})
		if !st.Dirty {
			t.Error("Dirty = false, want true")
		}
		if st.Unpushed {
			t.Error("Unpushed = true, want false: the probe is skipped for dirty repos")
		}
	})

	t.Run("detached HEAD", func(t *testing.T) {
		t.Parallel()
		dir := resolveTempDir(t)
		repoPath := setupTestRepo(t, dir, "detached")
		ctx := testContext()
		if err := runGit(ctx, repoPath, "checkout", "--detach"); err != nil {
			t.Fatalf("checkout --detach failed: %v", err)
		}

		st := CheckStatus(ctx, Repo{Name: "detached", Path: repoPath})
		if st.Err != nil {
			t.Fatalf("CheckStatus error = %v", st.Err)
		}
		if st.Branch != DetachedBranch {
			t.Errorf("Branch = %q, want %q", st.Branch, DetachedBranch)
		}
	})
}
