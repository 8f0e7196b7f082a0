package match

import (
	"fmt"

	"github.com/symword/symword/word"
)

// edit is a planned splice: remove count syllables at start and insert
// splice in their place. cursor is the index (in the edited buffer) from
// which the next left-to-right scan may resume — it points at the trailing
// excess syllable when one exists, so a partially consumed boundary can
// still host further matches.
type edit struct {
	start  int
	count  int
	splice []word.Symbol
	cursor int
}

// planEdit validates that pattern occurs at syllable index start in h and
// computes the replacement block
//
//	first_excess · replacement · last_excess
//
// where first_excess = h[start]·p[0]⁻¹ and last_excess =
// h[start+n-1]·p[n-1]⁻¹ (single-syllable products on one generator, so the
// exponents just subtract). Zero-exponent excesses are omitted.
//
// The one-syllable needle is special: first and last boundary are the same
// haystack syllable, so a single excess h[start]·p⁻¹ is emitted after the
// replacement (the match is anchored at the start of the syllable); the
// two-sided formula would count the leftover twice.
//
// This is the assertion mode of the replace pipeline: boundary containment
// and interior equality are re-checked before any mutation, surfacing
// ErrInvalidPattern when the caller's assumptions do not hold.
func planEdit(h, pattern, replacement []word.Symbol, start int) (edit, error) {
	n := len(pattern)
	if n == 0 {
		return edit{}, fmt.Errorf("planEdit: empty pattern: %w", ErrInvalidPattern)
	}
	if start < 0 || start+n > len(h) {
		return edit{}, fmt.Errorf("planEdit: start=%d pattern=%d syllables haystack=%d: %w", start, n, len(h), ErrBadIndex)
	}

	if n == 1 {
		p := pattern[0]
		if !p.SubsymbolOf(h[start]) {
			return edit{}, fmt.Errorf("planEdit: %s is not contained in %s at %d: %w", p, h[start], start, ErrInvalidPattern)
		}
		excess := word.Symbol{Gen: p.Gen, Pow: h[start].Pow - p.Pow}
		splice := append([]word.Symbol(nil), replacement...)
		cursor := start + len(splice)
		if !excess.IsIdentity() {
			splice = append(splice, excess)
		}

		return edit{start: start, count: 1, splice: splice, cursor: cursor}, nil
	}

	if !pattern[0].SubsymbolOf(h[start]) {
		return edit{}, fmt.Errorf("planEdit: leading %s is not contained in %s at %d: %w", pattern[0], h[start], start, ErrInvalidPattern)
	}
	if !pattern[n-1].SubsymbolOf(h[start+n-1]) {
		return edit{}, fmt.Errorf("planEdit: trailing %s is not contained in %s at %d: %w", pattern[n-1], h[start+n-1], start+n-1, ErrInvalidPattern)
	}
	if !interiorEqual(pattern, h, start) {
		return edit{}, fmt.Errorf("planEdit: interior mismatch at %d: %w", start, ErrInvalidPattern)
	}

	first := word.Symbol{Gen: pattern[0].Gen, Pow: h[start].Pow - pattern[0].Pow}
	last := word.Symbol{Gen: pattern[n-1].Gen, Pow: h[start+n-1].Pow - pattern[n-1].Pow}

	splice := make([]word.Symbol, 0, len(replacement)+2)
	if !first.IsIdentity() {
		splice = append(splice, first)
	}
	splice = append(splice, replacement...)
	cursor := start + len(splice)
	if !last.IsIdentity() {
		splice = append(splice, last)
	}

	return edit{start: start, count: n, splice: splice, cursor: cursor}, nil
}

// applyEdit splices e into h, returning a fresh buffer. Reduction is the
// caller's business: ReplaceAt normalizes immediately, the ReplaceAll scan
// defers it to the end of the pattern's pass.
func applyEdit(h []word.Symbol, e edit) []word.Symbol {
	out := make([]word.Symbol, 0, len(h)-e.count+len(e.splice))
	out = append(out, h[:e.start]...)
	out = append(out, e.splice...)
	out = append(out, h[e.start+e.count:]...)

	return out
}
