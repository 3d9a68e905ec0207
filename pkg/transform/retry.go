package transform

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/leapstack-labs/treekit/pkg/tree"
)

// DefaultRetryAttempts is the attempt budget used when Retry is given a
// non-positive one.
const DefaultRetryAttempts = 3

// retryBackoff is the pause between attempts. Attempts are consecutive;
// the delay exists only to yield between them.
const retryBackoff = time.Millisecond

// Retry invokes fn up to attempts times and short-circuits on the first
// attempt that succeeds. Every attempt receives the unmodified original
// tree, never a partially-mutated intermediate. When all attempts fail the
// result is a *RetryExhaustedError carrying the attempt count and the last
// underlying failure.
func Retry(fn Func, attempts int) Func {
	if attempts < 1 {
		attempts = DefaultRetryAttempts
	}
	return func(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
		var (
			out     *tree.Tree
			lastErr error
			tries   int
		)
		b := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(retryBackoff))
		err := retry.Do(ctx, b, func(ctx context.Context) error {
			tries++
			res, err := fn(ctx, t)
			if err != nil {
				lastErr = err
				return retry.RetryableError(err)
			}
			out = res
			return nil
		})
		if err != nil {
			if lastErr == nil {
				lastErr = err
			}
			return nil, &RetryExhaustedError{Attempts: tries, Err: lastErr}
		}
		return out, nil
	}
}
