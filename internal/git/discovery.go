package git

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sahilm/fuzzy"
)

// Repo describes one discovered repository. Name is the leaf directory
// name, or "parent/leaf" when sub-level discovery found it one level
// down (so siblings sharing a leaf name stay distinguishable).
type Repo struct {
	Name string
	Path string
}

// isGitRepo checks if a path is a git repository (has .git dir or file).
func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree, submodule)
	return info.IsDir() || info.Mode().IsRegular()
}

// Discover returns all git repositories that are direct children of
// root. With subLevel it instead scans the children of each child
// directory, naming repos "parent/leaf" with a forward slash regardless
// of platform separator. Non-matching entries are skipped silently.
func Discover(root string, subLevel bool) ([]Repo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var repos []Repo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		entryPath := filepath.Join(root, entry.Name())

		if !subLevel {
			if isGitRepo(entryPath) {
				repos = append(repos, Repo{Name: entry.Name(), Path: entryPath})
			}
			continue
		}

		children, err := os.ReadDir(entryPath)
		if err != nil {
			// Unreadable children are skipped, not errors
			continue
		}
		for _, child := range children {
			if !child.IsDir() {
				continue
			}
			childPath := filepath.Join(entryPath, child.Name())
			if isGitRepo(childPath) {
				repos = append(repos, Repo{
					Name: entry.Name() + "/" + child.Name(),
					Path: childPath,
				})
			}
		}
	}

	return repos, nil
}

// Filter returns the repos whose name fuzzy-matches pattern, best
// matches first. An empty pattern matches everything.
func Filter(repos []Repo, pattern string) []Repo {
	if pattern == "" {
		return repos
	}
	names := make([]string, len(repos))
	for i, repo := range repos {
		names[i] = repo.Name
	}
	matches := fuzzy.Find(pattern, names)
	filtered := make([]Repo, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, repos[m.Index])
	}
	return filtered
}
