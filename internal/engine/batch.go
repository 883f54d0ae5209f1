package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/guillocut/internal/model"
)

// SolveBatch solves every board against the same catalog concurrently, at
// most Settings.Workers at a time. Plans are returned in board order. The
// first failure cancels the boards that have not started yet.
func SolveBatch(ctx context.Context, opt *Optimizer, boards []model.Board, catalog model.Catalog) ([]model.Plan, error) {
	plans := make([]model.Plan, len(boards))

	workers := opt.Settings.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, b := range boards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plan, err := opt.Solve(b, catalog)
			if err != nil {
				return fmt.Errorf("board %d (%s): %w", i+1, b, err)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}
