package main

import (
	"context"
	"os"

	"github.com/hgranberg/mgit/internal/git"
	"github.com/hgranberg/mgit/internal/output"
	"github.com/hgranberg/mgit/internal/render"
	"github.com/hgranberg/mgit/internal/termtitle"
)

func runStatus(ctx context.Context, filter string) error {
	repos, err := discoverTargets(rootPath, subLevel, filter)
	if err != nil {
		return err
	}

	out := output.FromContext(ctx)
	if len(repos) == 0 {
		out.Println(render.NoReposMessage)
		return nil
	}

	termtitle.Set(os.Stderr, "mgit status")
	defer termtitle.Clear(os.Stderr)

	statuses := git.StatusAll(ctx, repos)

	if ctx.Err() != nil {
		// Interrupted: exit quietly
		return nil
	}

	out.Print(render.StatusReport(rootPath, statuses, pal))
	return nil
}
