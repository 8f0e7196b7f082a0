// Package match locates one group word inside another and rewrites the
// occurrences, operating on syllable sequences with sub-symbol containment
// at the two boundary positions.
//
// Matching model: a needle of syllables p[0..n-1] occurs in a haystack at
// syllable index idx when
//
//	(a) p[0] is a sub-symbol of h[idx]            (partial boundary match)
//	(b) p[1..n-2] equal h[idx+1..idx+n-2] exactly (interior)
//	(c) p[n-1] is a sub-symbol of h[idx+n-1]      (partial boundary match)
//
// so a match may consume only part of the two boundary syllables; the
// leftover "excess" is stitched back around the replacement. A needle of
// exactly one syllable matches when it is contained in a single haystack
// syllable. Needles must have reduced length (atom count) at least 2;
// shorter needles are rejected with ErrInvalidPattern.
//
// Replacement is a pure scan/splice pipeline, not a persistent automaton:
// planEdit computes a validated edit (start, count, spliced syllables) and
// a single splice primitive applies it, which keeps the boundary
// arithmetic independently testable. ReplaceAll processes patterns from
// longest reduced length to shortest (equal lengths keep their original
// order) and, within one pattern, chains non-overlapping matches
// left-to-right on the raw buffer, reducing once at the end of the scan.
//
// All indices are 0-based syllable positions in the reduced haystack.
//
// Errors:
//
//	ErrInvalidPattern        - needle shorter than 2 atoms, or a direct
//	                           ReplaceAt whose boundary/interior assumptions
//	                           do not hold at the given index.
//	ErrBadIndex              - a syllable index outside the haystack.
//	word.ErrMismatchedParent - operands from different groups.
//	word.ErrNilWord          - nil operands.
package match
