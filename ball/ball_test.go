package ball_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symword/symword/ball"
	"github.com/symword/symword/word"
)

// rank2 returns the free group on {s,t} and its generator words.
func rank2(t *testing.T) (*word.Group, []*word.Word) {
	t.Helper()
	g, err := word.NewGroup("s", "t")
	require.NoError(t, err)
	s, err := g.Generator(0)
	require.NoError(t, err)
	tt, err := g.Generator(1)
	require.NoError(t, err)

	return g, []*word.Word{s, tt}
}

// TestGrow_FreeGroupBallSizes verifies the rank-2 free group ball sizes:
// |B(0)| = 1, |B(1)| = 5, |B(2)| = 17, |B(3)| = 53 (spheres 1, 4, 12, 36).
func TestGrow_FreeGroupBallSizes(t *testing.T) {
	_, gens := rank2(t)

	for radius, want := range map[int]int{0: 1, 1: 5, 2: 17, 3: 53} {
		got, err := ball.Grow(gens, radius, nil)
		require.NoError(t, err)
		assert.Len(t, got, want, "ball of radius %d", radius)
	}
}

// TestGrow_StartsWithIdentityAndGrowsByLength verifies discovery order:
// the identity first, then elements in non-decreasing geodesic length,
// each of length at most the radius.
func TestGrow_StartsWithIdentityAndGrowsByLength(t *testing.T) {
	_, gens := rank2(t)

	elems, err := ball.Grow(gens, 3, nil)
	require.NoError(t, err)
	require.NotEmpty(t, elems)
	assert.True(t, elems[0].IsIdentity())

	prev := 0
	for _, w := range elems {
		assert.GreaterOrEqual(t, w.Len(), prev, "lengths are non-decreasing")
		assert.LessOrEqual(t, w.Len(), 3)
		prev = w.Len()
	}
}

// TestGrow_NoInverses verifies the positive-monoid variant: without
// inverse closure the spheres double instead of tripling.
func TestGrow_NoInverses(t *testing.T) {
	_, gens := rank2(t)
	opts := ball.DefaultOptions()
	opts.IncludeInverses = false

	elems, err := ball.Grow(gens, 3, &opts)
	require.NoError(t, err)
	assert.Len(t, elems, 15, "1+2+4+8 positive words")
}

// TestGrow_ParallelMatchesSequential verifies that the worker fan-out
// changes neither the element set nor the discovery order.
func TestGrow_ParallelMatchesSequential(t *testing.T) {
	_, gens := rank2(t)

	seq, err := ball.Grow(gens, 3, nil)
	require.NoError(t, err)

	opts := ball.DefaultOptions()
	opts.Workers = 4
	par, err := ball.Grow(gens, 3, &opts)
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		eq, err := seq[i].Equal(par[i])
		require.NoError(t, err)
		assert.True(t, eq, "element %d: %v vs %v", i, seq[i], par[i])
	}
}

// TestGrow_Dedup verifies that redundant generators do not inflate the
// ball: {s, s, t} spans the same ball as {s, t}.
func TestGrow_Dedup(t *testing.T) {
	_, gens := rank2(t)
	redundant := []*word.Word{gens[0], gens[0], gens[1]}

	elems, err := ball.Grow(redundant, 2, nil)
	require.NoError(t, err)
	assert.Len(t, elems, 17)
}

// TestGrow_Preconditions covers the validation surface.
func TestGrow_Preconditions(t *testing.T) {
	_, gens := rank2(t)

	_, err := ball.Grow(gens, -1, nil)
	assert.ErrorIs(t, err, ball.ErrBadRadius)

	_, err = ball.Grow(nil, 1, nil)
	assert.ErrorIs(t, err, ball.ErrNoGenerators)

	g2, err := word.NewGroup("s", "t")
	require.NoError(t, err)
	foreign, err := g2.Generator(0)
	require.NoError(t, err)
	_, err = ball.Grow(append(gens, foreign), 1, nil)
	assert.ErrorIs(t, err, word.ErrCoercion)
}

// TestGrow_Cancellation verifies that a cancelled context aborts the
// expansion with the context's error.
func TestGrow_Cancellation(t *testing.T) {
	_, gens := rank2(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := ball.DefaultOptions()
	opts.Ctx = ctx

	_, err := ball.Grow(gens, 4, &opts)
	assert.ErrorIs(t, err, context.Canceled)
}
