package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symword/symword/match"
	"github.com/symword/symword/word"
)

// assertWordEq asserts group-element equality (not buffer equality).
func assertWordEq(t *testing.T, want, got *word.Word, msg string) {
	t.Helper()
	eq, err := want.Equal(got)
	require.NoError(t, err)
	assert.True(t, eq, "%s: want %v, got %v", msg, want, got)
}

// TestReplace_CommutatorPrefix verifies the canonical rewrite: erasing s*t
// from the commutator leaves s^-1*t^-1.
func TestReplace_CommutatorPrefix(t *testing.T) {
	g, c := commutatorGroup(t)

	got, err := match.Replace(c, mustParse(t, g, "s*t"), g.Identity())
	require.NoError(t, err)
	assertWordEq(t, mustParse(t, g, "s^-1*t^-1"), got, "erasing s*t from the commutator")
}

// TestReplace_CollapsingRun verifies non-overlapping left-to-right
// rewriting inside a single long syllable: x*y^9 with y^2 → y hosts four
// matches and collapses to x*y^5.
func TestReplace_CollapsingRun(t *testing.T) {
	g, err := word.NewGroup("x", "y")
	require.NoError(t, err)

	got, err := match.Replace(
		mustParse(t, g, "x*y^9"),
		mustParse(t, g, "y^2"),
		mustParse(t, g, "y"),
	)
	require.NoError(t, err)
	assertWordEq(t, mustParse(t, g, "x*y^5"), got, "four y^2 matches, each dropping one atom")
	assert.Equal(t, "x*y^5", got.String())
}

// TestReplace_HaystackUntouched verifies that the haystack word itself is
// only normalized, never rewritten.
func TestReplace_HaystackUntouched(t *testing.T) {
	g, c := commutatorGroup(t)
	before := c.String()

	_, err := match.Replace(c, mustParse(t, g, "s*t"), g.Identity())
	require.NoError(t, err)
	assert.Equal(t, before, c.String())
}

// TestReplaceAt_DirectAndValidated covers the indexed entry point: a valid
// direct edit, and the assertion mode rejecting a wrong index.
func TestReplaceAt_DirectAndValidated(t *testing.T) {
	g, c := commutatorGroup(t)
	pattern := mustParse(t, g, "s^-1*t^-1")

	got, err := match.ReplaceAt(c, 2, pattern, mustParse(t, g, "t"))
	require.NoError(t, err)
	assertWordEq(t, mustParse(t, g, "s*t^2"), got, "indexed replace of the commutator suffix")

	_, err = match.ReplaceAt(c, 0, pattern, g.Identity())
	assert.ErrorIs(t, err, match.ErrInvalidPattern, "pattern does not occur at 0")

	_, err = match.ReplaceAt(c, 9, pattern, g.Identity())
	assert.ErrorIs(t, err, match.ErrBadIndex)

	_, err = match.ReplaceAt(c, 0, mustParse(t, g, "s"), g.Identity())
	assert.ErrorIs(t, err, match.ErrInvalidPattern, "single-atom pattern")
}

// TestReplaceAll_LongestPatternFirst verifies the descending-length order:
// the long pattern s*t*s^-1 must win over s*t even when listed second.
func TestReplaceAll_LongestPatternFirst(t *testing.T) {
	g, c := commutatorGroup(t)

	got, err := match.ReplaceAll(c, []match.Substitution{
		{Pattern: mustParse(t, g, "s*t"), Replacement: mustParse(t, g, "t")},
		{Pattern: mustParse(t, g, "s*t*s^-1"), Replacement: g.Identity()},
	})
	require.NoError(t, err)
	assertWordEq(t, mustParse(t, g, "t^-1"), got, "long pattern erases its range first")
}

// TestReplaceAll_EqualLengthStableOrder verifies the documented tie-break:
// equal-length patterns apply in their original slice order.
func TestReplaceAll_EqualLengthStableOrder(t *testing.T) {
	g, _ := commutatorGroup(t)
	h := mustParse(t, g, "s*t")

	got, err := match.ReplaceAll(h, []match.Substitution{
		{Pattern: mustParse(t, g, "s*t"), Replacement: mustParse(t, g, "t*s")},
		{Pattern: mustParse(t, g, "t*s"), Replacement: g.Identity()},
	})
	require.NoError(t, err)
	assert.True(t, got.IsIdentity(),
		"first pattern rewrites s*t to t*s, second erases it")
}

// TestReplaceAll_Preconditions covers the shared validation surface.
func TestReplaceAll_Preconditions(t *testing.T) {
	g, c := commutatorGroup(t)

	_, err := match.ReplaceAll(c, []match.Substitution{
		{Pattern: mustParse(t, g, "t"), Replacement: g.Identity()},
	})
	assert.ErrorIs(t, err, match.ErrInvalidPattern, "short pattern")

	other, err := word.NewGroup("s", "t")
	require.NoError(t, err)
	_, err = match.ReplaceAll(c, []match.Substitution{
		{Pattern: mustParse(t, other, "s*t"), Replacement: other.Identity()},
	})
	assert.ErrorIs(t, err, word.ErrMismatchedParent)

	_, err = match.ReplaceAll(nil, nil)
	assert.ErrorIs(t, err, word.ErrNilWord)
}
