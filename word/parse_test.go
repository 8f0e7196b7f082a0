package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symword/symword/word"
)

// TestString_CanonicalForm verifies the interchange format: "(id)" for the
// identity, '*'-joined syllables otherwise, exponent suppressed when 1.
func TestString_CanonicalForm(t *testing.T) {
	g := mustGroup(t)

	assert.Equal(t, "(id)", g.Identity().String())
	assert.Equal(t, "t*s^-1", mustParse(t, g, "t*s^-1").String())
	assert.Equal(t, "s^2*t", mustParse(t, g, "s*s*t").String(), "String prints the reduced form")
}

// TestParse_RoundTrip verifies print-then-parse yields an equal word for a
// spread of reduced words.
func TestParse_RoundTrip(t *testing.T) {
	g := mustGroup(t)

	for _, lit := range []string{"(id)", "s", "t^-1", "s*t", "t*s^-1*t^-1", "s^3*t^-2*s"} {
		w := mustParse(t, g, lit)
		back, err := word.Parse(g, w.String())
		require.NoError(t, err, "printed form %q must re-parse", w.String())

		eq, err := w.Equal(back)
		require.NoError(t, err)
		assert.True(t, eq, "round-trip of %q", lit)
	}
}

// TestParse_Errors covers the grammar and alphabet failure modes.
func TestParse_Errors(t *testing.T) {
	g := mustGroup(t)

	tests := []struct {
		name string
		lit  string
		want error
	}{
		{"empty literal", "", word.ErrSyntax},
		{"dangling star", "s*", word.ErrSyntax},
		{"double star", "s**t", word.ErrSyntax},
		{"bad exponent", "s^x", word.ErrSyntax},
		{"missing generator", "^2", word.ErrSyntax},
		{"foreign generator", "s*q^2", word.ErrUnknownGenerator},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := word.Parse(g, tc.lit)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewGroup_Validation covers alphabet preconditions.
func TestNewGroup_Validation(t *testing.T) {
	_, err := word.NewGroup()
	assert.ErrorIs(t, err, word.ErrBadAlphabet, "empty alphabet")

	_, err = word.NewGroup("s", "")
	assert.ErrorIs(t, err, word.ErrBadAlphabet, "empty generator name")

	_, err = word.NewGroup("s", "s")
	assert.ErrorIs(t, err, word.ErrBadAlphabet, "duplicate generator name")

	g, err := word.NewGroup("s", "t")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rank())
	assert.Equal(t, []string{"s", "t"}, g.Generators())
}

// TestUniform_Coercion covers the batch coercion gate.
func TestUniform_Coercion(t *testing.T) {
	g1 := mustGroup(t)
	g2, err := word.NewGroup("s", "t")
	require.NoError(t, err)

	a := mustParse(t, g1, "s")
	b := mustParse(t, g1, "t")
	c := mustParse(t, g2, "s")

	got, err := word.Uniform(a, b)
	require.NoError(t, err)
	assert.Same(t, g1, got)

	_, err = word.Uniform(a, c)
	assert.ErrorIs(t, err, word.ErrCoercion, "mixed groups cannot be coerced")

	_, err = word.Uniform()
	assert.ErrorIs(t, err, word.ErrCoercion, "empty batch has no uniform type")

	_, err = word.Uniform(a, nil)
	assert.ErrorIs(t, err, word.ErrNilWord)
}
