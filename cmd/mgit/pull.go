package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hgranberg/mgit/internal/git"
	"github.com/hgranberg/mgit/internal/output"
	"github.com/hgranberg/mgit/internal/render"
	"github.com/hgranberg/mgit/internal/termtitle"
	"github.com/hgranberg/mgit/internal/ui/progress"
)

func runPull(ctx context.Context, filter string) error {
	repos, err := discoverTargets(rootPath, subLevel, filter)
	if err != nil {
		return err
	}

	out := output.FromContext(ctx)
	if len(repos) == 0 {
		out.Println(render.NoReposMessage)
		return nil
	}

	termtitle.Set(os.Stderr, "mgit pull")
	defer termtitle.Clear(os.Stderr)

	// Spinner on stderr while the batch runs, interactive runs only
	var sp *progress.Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		sp = progress.New(fmt.Sprintf("Pulling %d repositories...", len(repos)))
		sp.Start()
	}

	results := git.PullAll(ctx, repos)

	if sp != nil {
		sp.Stop()
	}
	if ctx.Err() != nil {
		// Interrupted: no partial report, exit quietly
		return nil
	}

	out.Print(render.PullReport(results, pal))
	return nil
}
