package transform_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treekit/pkg/transform"
	"github.com/leapstack-labs/treekit/pkg/tree"
)

func TestParallel_ReturnsLastListedResult(t *testing.T) {
	tr := tree.New("")
	var fCalls, gCalls atomic.Int32

	fOut := tree.New("f")
	gOut := tree.New("g")

	f := func(context.Context, *tree.Tree) (*tree.Tree, error) {
		fCalls.Add(1)
		return fOut, nil
	}
	g := func(context.Context, *tree.Tree) (*tree.Tree, error) {
		gCalls.Add(1)
		return gOut, nil
	}

	out, err := transform.Parallel(f, g)(context.Background(), tr)
	require.NoError(t, err)
	assert.Same(t, gOut, out, "only the last-listed transform's result is returned")
	assert.Equal(t, int32(1), fCalls.Load())
	assert.Equal(t, int32(1), gCalls.Load())
}

func TestParallel_EmptyIsIdentity(t *testing.T) {
	tr := tree.New("")

	out, err := transform.Parallel()(context.Background(), tr)
	require.NoError(t, err)
	assert.Same(t, tr, out)
}

func TestParallel_AllBranchesRunBeforeFailure(t *testing.T) {
	tr := tree.New("")
	var calls atomic.Int32

	ok := func(_ context.Context, t *tree.Tree) (*tree.Tree, error) {
		calls.Add(1)
		return t, nil
	}
	bad := func(context.Context, *tree.Tree) (*tree.Tree, error) {
		calls.Add(1)
		return nil, errors.New("branch failed")
	}

	_, err := transform.Parallel(bad, ok, ok)(context.Background(), tr)
	require.EqualError(t, err, "branch failed")
	assert.Equal(t, int32(3), calls.Load(), "every branch runs to completion")
}

func TestMap_PreservesInputOrder(t *testing.T) {
	trees := []*tree.Tree{tree.New("a"), tree.New("b"), tree.New("c")}

	echo := func(_ context.Context, t *tree.Tree) (*tree.Tree, error) {
		return t, nil
	}

	out, err := transform.Map(context.Background(), trees, echo)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := range trees {
		assert.Same(t, trees[i], out[i])
	}
}

func TestMap_Empty(t *testing.T) {
	out, err := transform.Map(context.Background(), nil, transform.Identity)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMap_ErrorPropagates(t *testing.T) {
	trees := []*tree.Tree{tree.New("a"), tree.New("b")}
	var calls atomic.Int32

	fn := func(_ context.Context, t *tree.Tree) (*tree.Tree, error) {
		calls.Add(1)
		if t.Meta[tree.MetaSource] == "b" {
			return nil, errors.New("b failed")
		}
		return t, nil
	}

	_, err := transform.Map(context.Background(), trees, fn)
	require.EqualError(t, err, "b failed")
	assert.Equal(t, int32(2), calls.Load())
}
