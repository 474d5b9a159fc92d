package main

import (
	"fmt"
	"os"

	"github.com/hgranberg/mgit/internal/git"
)

// discoverTargets pre-flights the root directory and returns the repos
// to operate on, optionally narrowed by a fuzzy name filter. A missing
// or non-directory root is the only fatal discovery error.
func discoverTargets(root string, subLevel bool, filter string) ([]git.Repo, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	repos, err := git.Discover(root, subLevel)
	if err != nil {
		return nil, err
	}
	return git.Filter(repos, filter), nil
}

// filterArg extracts the optional positional filter pattern.
func filterArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
