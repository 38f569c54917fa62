package seerr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallel applies fn to every item with at most limit calls in flight.
// Results are stored by input position, so output order matches input order
// whatever order the calls finish in. The first failure cancels the context
// handed to the remaining calls and the whole batch fails with no results.
func parallel[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range items {
		i, item := i, item // per-iteration copies; go.mod targets go1.21 loop semantics
		// Go blocks until a slot frees up
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, item)
			if err != nil {
				return &AggregationError{Index: i, Total: len(items), Err: err}
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
