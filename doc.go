// Package symword is an in-memory engine for symbolic computation over
// finitely presented groups: elements are reduced words over a generating
// alphabet, and everything else is built on top of free reduction.
//
// What is symword?
//
//	A small, dependency-light library that brings together:
//		• Core primitives: symbols (generator + exponent) and syllable words
//		• Free reduction: collapse adjacent same-generator runs, drop trivial syllables
//		• Arithmetic: multiplication, inversion, binary-exponentiation powering
//		• Lazy normal forms: hashing or comparing a word normalizes it exactly once
//		• Pattern machinery: sub-symbol search, indexed replace, multi-pattern rewrite
//		• Enumeration: metric balls of a free group up to a word-length bound
//
// Why choose symword?
//
//   - Predictable contracts – every precondition is a sentinel error, checked via errors.Is
//   - Amortized normal forms – reduction runs at most once per mutation, never twice
//   - Pure Go – no cgo, CPU-bound transformations over plain slices
//   - Deterministic – stable pattern ordering, stable enumeration order
//
// Everything is organized under three subpackages plus a CLI:
//
//	word/      — Symbol, Group, Word: reduction, arithmetic, hashing, parse/print
//	match/     — sub-word search and splice-based replacement
//	ball/      — breadth-first enumeration of group elements by geodesic length
//	cmd/gword  — command-line front-end over the library
//
// Quick example:
//
//	g, _ := word.NewGroup("s", "t")
//	s, _ := g.Generator(0)
//	t, _ := g.Generator(1)
//	ts, _ := word.Mul(t, s)
//	o, _ := word.Pow(ts, 3)
//	fmt.Println(o) // t*s*t*s*t*s
//
// Dive into each package's doc.go for contracts, complexity notes and the
// full error catalogue.
package symword
