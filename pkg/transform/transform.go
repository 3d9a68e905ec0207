package transform

import (
	"context"

	"github.com/leapstack-labs/treekit/pkg/tree"
)

// Func is a whole-tree rewrite step. It may mutate the tree in place and
// return it, or return a different tree.
type Func func(ctx context.Context, t *tree.Tree) (*tree.Tree, error)

// Predicate decides whether a conditional transform applies.
type Predicate func(ctx context.Context, t *tree.Tree) (bool, error)

// Identity returns the input tree unchanged.
func Identity(_ context.Context, t *tree.Tree) (*tree.Tree, error) {
	return t, nil
}

// Chain builds a transform that threads the tree through every argument
// left to right, each step fully resolved before the next begins. With no
// arguments it is the identity transform.
func Chain(fns ...Func) Func {
	if len(fns) == 0 {
		return Identity
	}
	return func(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
		cur := t
		for _, fn := range fns {
			next, err := fn(ctx, cur)
			if err != nil {
				return nil, err
			}
			cur = next
		}
		return cur, nil
	}
}

// When applies fn only when pred reports true; otherwise the input tree is
// returned unchanged. A predicate error aborts without invoking fn.
func When(pred Predicate, fn Func) Func {
	return func(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
		ok, err := pred(ctx, t)
		if err != nil {
			return nil, err
		}
		if !ok {
			return t, nil
		}
		return fn(ctx, t)
	}
}

// Tap invokes fn for its side effect and returns the input tree unchanged.
// An error from fn propagates; nothing else fn produces is observed.
func Tap(fn func(ctx context.Context, t *tree.Tree) error) Func {
	return func(ctx context.Context, t *tree.Tree) (*tree.Tree, error) {
		if err := fn(ctx, t); err != nil {
			return nil, err
		}
		return t, nil
	}
}
