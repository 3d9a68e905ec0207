package transform

import (
	"context"
	"sync"

	"github.com/leapstack-labs/treekit/pkg/tree"
)

// Memoize caches fn's results keyed by the identity of the input tree, not
// by structural equality: invoking the returned transform twice with the
// same *tree.Tree runs fn once, while a structurally identical but distinct
// instance is a cache miss. Failures are not cached and are retried on the
// next invocation.
//
// The cache is scoped to the returned transform, is never invalidated, and
// grows for its lifetime.
func Memoize(fn Func) Func {
	var mu sync.Mutex
	cache := make(map[*tree.Tree]*tree.Tree)
	return func(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
		mu.Lock()
		if res, ok := cache[t]; ok {
			mu.Unlock()
			return res, nil
		}
		mu.Unlock()

		res, err := fn(ctx, t)
		if err != nil {
			return nil, err
		}

		mu.Lock()
		cache[t] = res
		mu.Unlock()
		return res, nil
	}
}
