package match

import (
	"fmt"
	"sort"

	"github.com/symword/symword/word"
)

// Substitution pairs a pattern with its replacement for ReplaceAll.
type Substitution struct {
	Pattern     *word.Word
	Replacement *word.Word
}

// ReplaceAt replaces the occurrence of pattern at syllable index idx in
// haystack and returns the re-normalized result as a new word. The
// occurrence is re-validated before any mutation (boundary containment and
// interior equality), so a mismatched caller assumption surfaces as
// ErrInvalidPattern instead of corrupting the word.
//
// Preconditions: non-nil operands of one group; pattern of reduced length
// ≥ 2. haystack is normalized as a side effect.
func ReplaceAt(haystack *word.Word, idx int, pattern, replacement *word.Word) (*word.Word, error) {
	g, err := replaceOperands("ReplaceAt", haystack, pattern, replacement)
	if err != nil {
		return nil, err
	}

	e, err := planEdit(haystack.Syllables(), pattern.Syllables(), replacement.Syllables(), idx)
	if err != nil {
		return nil, err
	}

	out, err := g.FromSymbols(applyEdit(haystack.Syllables(), e)...)
	if err != nil {
		return nil, err
	}

	return out.Normalize(), nil
}

// Replace rewrites every non-overlapping occurrence of pattern in haystack
// with replacement, scanning left to right, and returns the normalized
// result. Equivalent to ReplaceAll with a single substitution.
func Replace(haystack, pattern, replacement *word.Word) (*word.Word, error) {
	return ReplaceAll(haystack, []Substitution{{Pattern: pattern, Replacement: replacement}})
}

// ReplaceAll applies each substitution to haystack and returns the
// normalized result as a new word; haystack itself is only normalized,
// never rewritten.
//
// Patterns are processed in descending order of reduced length, so a long
// pattern is never shadowed by a shorter one consuming a sub-range first;
// patterns of equal length keep their original slice order. Within one
// pattern the scan chains non-overlapping matches left to right: after a
// splice it resumes at the trailing-excess syllable of the replaced block,
// and the buffer is reduced once when the pattern is exhausted. That
// deferred reduction is what lets a run like y^9 host four successive y^2
// matches instead of re-merging into a single syllable after each one.
//
// Complexity: O(patterns · occurrences · len(haystack)).
func ReplaceAll(haystack *word.Word, subs []Substitution) (*word.Word, error) {
	if haystack == nil {
		return nil, fmt.Errorf("ReplaceAll: %w", word.ErrNilWord)
	}
	g := haystack.Group()

	ordered := make([]Substitution, len(subs))
	copy(ordered, subs)
	for _, sub := range ordered {
		if _, err := replaceOperands("ReplaceAll", haystack, sub.Pattern, sub.Replacement); err != nil {
			return nil, err
		}
	}
	// Longest reduced pattern first; ties keep insertion order.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Pattern.Len() > ordered[j].Pattern.Len()
	})

	buf := haystack.Normalize().Syllables()
	for _, sub := range ordered {
		p := sub.Pattern.Syllables()
		r := sub.Replacement.Syllables()

		cursor := 0
		for {
			idx := findIn(p, buf, cursor)
			if idx == NotFound {
				break
			}
			e, err := planEdit(buf, p, r, idx)
			if err != nil {
				return nil, err
			}
			buf = applyEdit(buf, e)
			cursor = e.cursor
		}

		// Reduce between patterns so the next pattern scans a normal form.
		reduced, err := g.FromSymbols(buf...)
		if err != nil {
			return nil, err
		}
		buf = reduced.Normalize().Syllables()
	}

	out, err := g.FromSymbols(buf...)
	if err != nil {
		return nil, err
	}

	return out.Normalize(), nil
}

// replaceOperands validates the shared replace preconditions: non-nil
// operands, one parent group, and a pattern of reduced length ≥ 2. All
// three words are normalized as a side effect.
func replaceOperands(op string, haystack, pattern, replacement *word.Word) (*word.Group, error) {
	if haystack == nil || pattern == nil || replacement == nil {
		return nil, fmt.Errorf("%s: %w", op, word.ErrNilWord)
	}
	h := haystack.Group().Handle()
	if pattern.Group().Handle() != h || replacement.Group().Handle() != h {
		return nil, fmt.Errorf("%s: %w", op, word.ErrMismatchedParent)
	}
	haystack.Normalize()
	replacement.Normalize()
	if pattern.Normalize().Len() < 2 {
		return nil, fmt.Errorf("%s: pattern %v has length %d < 2: %w", op, pattern, pattern.Len(), ErrInvalidPattern)
	}

	return haystack.Group(), nil
}
