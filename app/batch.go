package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"delistats/domain/stats"
	"delistats/internal/errors"
)

// BatchRun executes the same analysis across several seeds concurrently.
// Every run owns its own RNG stream, so results are deterministic per
// seed and independent of scheduling order.
func BatchRun(ctx context.Context, svc *AnalysisService, base RunRequest, seeds []int64) ([]*stats.RunReport, error) {
	if len(seeds) == 0 {
		return nil, errors.InvalidParameter("batch run requires at least one seed")
	}

	reports := make([]*stats.RunReport, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		i, seed := i, seed
		req := base
		req.Spec.Seed = seed
		g.Go(func() error {
			report, err := svc.Run(gctx, req)
			if err != nil {
				return errors.Wrapf(err, "run with seed %d failed", seed)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
