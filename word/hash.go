package word

// Lazy equality and hashing
//
// Comparing or hashing a word triggers normalization of the operands as a
// documented side effect; Normalize's memoization guarantees an already
// reduced word is never reduced twice. Hash equality is only ever a fast
// reject: element-wise syllable comparison has the final word, so hash
// collisions cannot produce false positives.

// Hash returns the memoized structural hash of w's reduced form,
// normalizing w first. Words over different groups hash into disjoint
// streams (the group handle seeds the hash), but equal hashes must still
// be confirmed with Equal.
func (w *Word) Hash() uint64 {
	w.Normalize()

	return w.norm.hash
}

// Equal reports whether w and v represent the same group element.
// Both operands are normalized as a side effect.
//
// Preconditions: both words non-nil and of the same parent group;
// violations surface as ErrNilWord / ErrMismatchedParent.
// Complexity: O(len) reduction amortized, O(syllables) comparison.
func (w *Word) Equal(v *Word) (bool, error) {
	if w == nil || v == nil {
		return false, ErrNilWord
	}
	if err := sameParent("Equal", w, v); err != nil {
		return false, err
	}
	w.Normalize()
	v.Normalize()

	// Fast reject on the memoized hashes.
	if w.norm.hash != v.norm.hash {
		return false, nil
	}
	// Mandatory element-wise confirmation.
	if len(w.syms) != len(v.syms) {
		return false, nil
	}
	for i := range w.syms {
		if w.syms[i] != v.syms[i] {
			return false, nil
		}
	}

	return true, nil
}
