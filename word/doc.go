// Package word defines the central Symbol, Group, and Word types, and
// provides free reduction, arithmetic, and lazily memoized normal forms
// for group words over a finite generating alphabet.
//
// A Word is an ordered sequence of syllables (Symbol values, each a
// generator name with a signed exponent). Arithmetic always returns fresh
// Words; the in-place builders (PushLeft/PushRight, MulLeft/MulRight) exist
// for incremental construction and mark the word as raw again.
//
// Normal forms are lazy: Equal, Hash, Len, IsIdentity and String normalize
// the word first, and normalization runs at most once between mutations.
// Normalize is the only implicit reduction site in the whole module.
//
// Words are not safe for concurrent mutation. Because normalization
// rewrites the syllable buffer in place, even read-looking calls (Equal,
// Hash, String) mutate a raw word; normalize a word before sharing it
// across goroutines, or guard it externally. Distinct Words may always be
// used concurrently.
//
// Errors:
//
//	ErrBadAlphabet      - empty alphabet, empty or duplicate generator name.
//	ErrUnknownGenerator - a symbol references a generator outside the group's alphabet.
//	ErrMismatchedParent - arithmetic or comparison between words of different groups.
//	ErrCoercion         - a batch of words cannot be coerced to a single group.
//	ErrNilWord          - a nil *Word was supplied where a word is required.
//	ErrSyntax           - a word literal does not follow the canonical text form.
package word
