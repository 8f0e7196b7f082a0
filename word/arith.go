package word

import "fmt"

// Arithmetic over group words.
//
// All top-level operations return fresh, normalized Words; the in-place
// builders exist for incremental construction and leave reduction to the
// caller (unreduced mode) or run it immediately (reduced mode).

// Mul returns the normalized product a·b as a new word.
// Returns ErrNilWord / ErrMismatchedParent on precondition violations.
// Complexity: O(len(a)+len(b)) concatenation plus reduction.
func Mul(a, b *Word) (*Word, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilWord)
	}
	if err := sameParent("Mul", a, b); err != nil {
		return nil, err
	}

	return mul(a, b), nil
}

// mul is the unchecked product used internally once parents are known to
// agree. The result is normalized.
func mul(a, b *Word) *Word {
	syms := make([]Symbol, 0, len(a.syms)+len(b.syms))
	syms = append(syms, a.syms...)
	syms = append(syms, b.syms...)
	w := &Word{group: a.group, syms: syms}
	w.Normalize()

	return w
}

// Inv returns the inverse of w as a new word: the syllable sequence
// reversed, each syllable's exponent negated. Inversion preserves free
// reduction, so when w is already normalized the result is marked
// normalized without another reduction pass; the empty word inverts to
// itself.
func Inv(w *Word) (*Word, error) {
	if w == nil {
		return nil, fmt.Errorf("Inv: %w", ErrNilWord)
	}
	syms := make([]Symbol, len(w.syms))
	for i, s := range w.syms {
		syms[len(w.syms)-1-i] = s.Inv()
	}
	out := &Word{group: w.group, syms: syms}
	if w.norm != nil {
		out.norm = &normalForm{hash: hashSyllables(out.group.handle, out.syms)}
	}

	return out, nil
}

// Pow returns wⁿ via binary exponentiation.
//
//	n == 0 → the group identity
//	n <  0 → Pow(Inv(w), -n)
//	n >  0 → square-and-multiply, every intermediate product fully reduced
//
// Satisfies Pow(w, -n) == Inv(Pow(w, n)) and
// Pow(w, a+b) == Pow(w, a)·Pow(w, b) for all integers.
// Complexity: O(log n) multiplications.
func Pow(w *Word, n int) (*Word, error) {
	if w == nil {
		return nil, fmt.Errorf("Pow: %w", ErrNilWord)
	}
	if n == 0 {
		return w.group.Identity(), nil
	}
	if n < 0 {
		inv, err := Inv(w)
		if err != nil {
			return nil, err
		}

		return Pow(inv, -n)
	}

	result := w.group.Identity()
	base := w.Clone().Normalize()
	for n > 0 {
		if n&1 == 1 {
			result = mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = mul(base, base) // doubling step
		}
	}

	return result, nil
}

// PushRight appends syllables to the right end of w in unreduced mode:
// the word becomes raw and stays raw until the next normalization.
// Returns ErrUnknownGenerator on syllables outside w's alphabet.
func (w *Word) PushRight(syms ...Symbol) error {
	for _, s := range syms {
		if _, ok := w.group.index[s.Gen]; !ok {
			return fmt.Errorf("PushRight: symbol %s: %w", s, ErrUnknownGenerator)
		}
	}
	w.syms = append(w.syms, syms...)
	w.norm = nil

	return nil
}

// PushLeft prepends syllables to the left end of w in unreduced mode,
// preserving their order. Same contract as PushRight.
func (w *Word) PushLeft(syms ...Symbol) error {
	for _, s := range syms {
		if _, ok := w.group.index[s.Gen]; !ok {
			return fmt.Errorf("PushLeft: symbol %s: %w", s, ErrUnknownGenerator)
		}
	}
	merged := make([]Symbol, 0, len(syms)+len(w.syms))
	merged = append(merged, syms...)
	merged = append(merged, w.syms...)
	w.syms = merged
	w.norm = nil

	return nil
}

// MulRight multiplies w by v on the right in place (w ← w·v) and
// normalizes the result. Returns ErrNilWord / ErrMismatchedParent.
func (w *Word) MulRight(v *Word) error {
	if v == nil {
		return fmt.Errorf("MulRight: %w", ErrNilWord)
	}
	if err := sameParent("MulRight", w, v); err != nil {
		return err
	}
	w.syms = append(w.syms, v.syms...)
	w.norm = nil
	w.Normalize()

	return nil
}

// MulLeft multiplies w by v on the left in place (w ← v·w) and normalizes
// the result. Returns ErrNilWord / ErrMismatchedParent.
func (w *Word) MulLeft(v *Word) error {
	if v == nil {
		return fmt.Errorf("MulLeft: %w", ErrNilWord)
	}
	if err := sameParent("MulLeft", w, v); err != nil {
		return err
	}
	merged := make([]Symbol, 0, len(v.syms)+len(w.syms))
	merged = append(merged, v.syms...)
	merged = append(merged, w.syms...)
	w.syms = merged
	w.norm = nil
	w.Normalize()

	return nil
}
