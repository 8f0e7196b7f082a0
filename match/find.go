package match

import (
	"errors"
	"fmt"

	"github.com/symword/symword/word"
)

// NotFound is returned by Find and FindFrom when no occurrence exists.
const NotFound = -1

// Sentinel errors for search and replace.
var (
	// ErrInvalidPattern indicates a needle of reduced length < 2, or a
	// direct indexed replace whose precondition fails (see ReplaceAt).
	ErrInvalidPattern = errors.New("match: invalid pattern")

	// ErrBadIndex indicates a syllable index outside the haystack.
	ErrBadIndex = errors.New("match: index out of range")
)

// Find returns the 0-based syllable index of the first occurrence of
// needle in haystack, or NotFound. Both words are normalized as a side
// effect; the scan runs over the reduced forms.
//
// Preconditions: non-nil operands of the same group, and a needle of
// reduced length ≥ 2 (ErrInvalidPattern otherwise — single-atom needles
// have no well-defined boundary split).
// Complexity: O(len(haystack)·len(needle)).
func Find(needle, haystack *word.Word) (int, error) {
	return FindFrom(needle, haystack, 0)
}

// FindFrom is Find restricted to the suffix of haystack starting at
// syllable index from; the returned index is absolute. A from beyond the
// last syllable yields NotFound; a negative from is ErrBadIndex.
func FindFrom(needle, haystack *word.Word, from int) (int, error) {
	if needle == nil || haystack == nil {
		return NotFound, fmt.Errorf("FindFrom: %w", word.ErrNilWord)
	}
	if needle.Group().Handle() != haystack.Group().Handle() {
		return NotFound, fmt.Errorf("FindFrom: %w", word.ErrMismatchedParent)
	}
	if from < 0 {
		return NotFound, fmt.Errorf("FindFrom: from=%d: %w", from, ErrBadIndex)
	}
	needle.Normalize()
	haystack.Normalize()
	if needle.Len() < 2 {
		return NotFound, fmt.Errorf("FindFrom: needle %v has length %d < 2: %w", needle, needle.Len(), ErrInvalidPattern)
	}

	return findIn(needle.Syllables(), haystack.Syllables(), from), nil
}

// findIn scans h for p starting at syllable index from. It assumes p is a
// valid needle and works on plain slices so the replace loop can reuse it
// against raw intermediate buffers.
func findIn(p, h []word.Symbol, from int) int {
	n := len(p)
	if n == 0 || from >= len(h) {
		return NotFound
	}
	if n == 1 {
		for idx := from; idx < len(h); idx++ {
			if p[0].SubsymbolOf(h[idx]) {
				return idx
			}
		}

		return NotFound
	}
	for idx := from; idx+n <= len(h); idx++ {
		if !p[0].SubsymbolOf(h[idx]) || !p[n-1].SubsymbolOf(h[idx+n-1]) {
			continue
		}
		if interiorEqual(p, h, idx) {
			return idx
		}
	}

	return NotFound
}

// interiorEqual reports whether p's interior syllables coincide exactly
// with the haystack slice anchored at idx.
func interiorEqual(p, h []word.Symbol, idx int) bool {
	for k := 1; k < len(p)-1; k++ {
		if p[k] != h[idx+k] {
			return false
		}
	}

	return true
}
