// Package ball enumerates group elements up to a word-length bound: the
// metric ball of radius r around the identity, grown one sphere at a time.
//
// Growth is a breadth-first expansion over the word arithmetic in
// package word: sphere k+1 is every product of a sphere-k element with a
// generating step, minus everything already seen. Deduplication uses the
// memoized word hash as a bucket key with full Equal confirmation, so hash
// collisions cannot merge distinct elements. In the free group each
// multiplication by a generator changes geodesic length by exactly one,
// which makes the k-th frontier exactly the sphere of radius k.
//
// The expansion is embarrassingly parallel: with Options.Workers > 1 each
// sphere's multiplications fan out through an errgroup and are merged
// sequentially afterwards, so the output order stays deterministic
// (discovery order: by sphere, then by sphere-element index, then by step
// index). The parallel path never shares a Word between goroutines —
// every product is a fresh word — which is what makes concurrent calls
// into the core safe.
//
// Errors:
//
//	ErrBadRadius       - negative radius.
//	ErrNoGenerators    - empty generating set.
//	word.ErrCoercion   - generating set spanning several groups.
//	word.ErrNilWord    - nil generator.
package ball
