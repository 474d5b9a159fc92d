package git

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// PullAll pulls every repo concurrently, one task per repo, and returns
// once all of them have finished. Results come back in completion
// order: the interleaving reflects real fetch durations and is rendered
// as-is. Repos are fully independent so the only synchronization is the
// fan-in barrier.
func PullAll(ctx context.Context, repos []Repo) []PullResult {
	results := make(chan PullResult, len(repos))

	var wg sync.WaitGroup
	for _, repo := range repos {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- Pull(ctx, repo)
		}()
	}
	wg.Wait()
	close(results)

	collected := make([]PullResult, 0, len(repos))
	for res := range results {
		collected = append(collected, res)
	}
	return collected
}

// StatusAll checks every repo concurrently and returns statuses sorted
// by name ascending. A failing repo yields an error-marked status
// instead of aborting the batch.
func StatusAll(ctx context.Context, repos []Repo) []Status {
	statuses := make([]Status, len(repos))

	var g errgroup.Group
	for i, repo := range repos {
		g.Go(func() error {
			statuses[i] = CheckStatus(ctx, repo)
			return nil
		})
	}
	// Never fails, per-repo errors are carried in Status.Err
	_ = g.Wait()

	slices.SortFunc(statuses, func(a, b Status) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return statuses
}
