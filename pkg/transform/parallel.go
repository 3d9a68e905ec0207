package transform

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/treekit/pkg/tree"
)

// Parallel invokes every transform concurrently on the same input tree and,
// once all have completed, returns the result of the last-listed transform.
// The other results are computed but discarded; a caller needing to combine
// divergent results must supply its own reducer around this primitive. Any
// failure fails the whole step, though every branch still runs to
// completion first. With no arguments it is the identity transform.
func Parallel(fns ...Func) Func {
	if len(fns) == 0 {
		return Identity
	}
	return func(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
		results := make([]*tree.Tree, len(fns))
		var g errgroup.Group
		for i, fn := range fns {
			g.Go(func() error {
				res, err := fn(ctx, t)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results[len(results)-1], nil
	}
}

// Map applies fn independently and concurrently to every tree in trees and
// returns the results in input order. It does not return until every
// branch has completed; the first error observed is reported.
func Map(ctx context.Context, trees []*tree.Tree, fn Func) ([]*tree.Tree, error) {
	results := make([]*tree.Tree, len(trees))
	var g errgroup.Group
	for i, t := range trees {
		g.Go(func() error {
			res, err := fn(ctx, t)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
