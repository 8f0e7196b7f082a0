// Package word: central Group and Word types, sentinel errors, constructors.
//
// This file declares the Group handle, the Word representation with its
// two-state (raw / normalized) lifecycle, and the NewGroup constructor.
// Reduction lives in reduce.go, arithmetic in arith.go, hashing and
// equality in hash.go, text form in parse.go.

package word

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for word construction, arithmetic, and comparison.
var (
	// ErrBadAlphabet indicates an empty alphabet or an empty/duplicate generator name.
	ErrBadAlphabet = errors.New("word: bad generating alphabet")

	// ErrUnknownGenerator indicates a symbol referencing a generator
	// that does not belong to the group's alphabet.
	ErrUnknownGenerator = errors.New("word: unknown generator")

	// ErrMismatchedParent indicates arithmetic or comparison between
	// words that belong to different groups. Never recovered silently.
	ErrMismatchedParent = errors.New("word: mismatched parent group")

	// ErrCoercion indicates a batch of words spanning more than one
	// group, so no uniform element type exists.
	ErrCoercion = errors.New("word: cannot coerce elements to a common group")

	// ErrNilWord indicates a nil *Word operand.
	ErrNilWord = errors.New("word: nil word")

	// ErrSyntax indicates a malformed word literal passed to Parse.
	ErrSyntax = errors.New("word: malformed word literal")
)

// groupHandles issues process-unique group identifiers. Handles are
// compared by value, never by pointer, so parent checks survive copies.
var groupHandles atomic.Uint64

// Group is the parent token shared by all words over one generating
// alphabet. It is the factory for identity words, generator words, and raw
// words, and the precondition gate for arithmetic and comparison: two
// words interoperate iff their groups carry the same handle.
//
// A Group is immutable after construction and safe for concurrent use.
type Group struct {
	handle uint64
	gens   []string
	index  map[string]int
}

// NewGroup creates the free group on the given generator names.
// Returns ErrBadAlphabet when no names are given, a name is empty,
// or a name repeats.
// Complexity: O(len(gens)).
func NewGroup(gens ...string) (*Group, error) {
	if len(gens) == 0 {
		return nil, fmt.Errorf("NewGroup: no generators: %w", ErrBadAlphabet)
	}
	index := make(map[string]int, len(gens))
	for i, name := range gens {
		if name == "" {
			return nil, fmt.Errorf("NewGroup: generator %d is empty: %w", i, ErrBadAlphabet)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("NewGroup: duplicate generator %q: %w", name, ErrBadAlphabet)
		}
		index[name] = i
	}

	return &Group{
		handle: groupHandles.Add(1),
		gens:   append([]string(nil), gens...),
		index:  index,
	}, nil
}

// Handle returns the group's process-unique identifier.
func (g *Group) Handle() uint64 { return g.handle }

// Rank returns the number of generators.
func (g *Group) Rank() int { return len(g.gens) }

// Generators returns a copy of the generator names in declaration order.
func (g *Group) Generators() []string {
	return append([]string(nil), g.gens...)
}

// Identity returns a fresh identity word (the empty word). The result is
// already normalized.
func (g *Group) Identity() *Word {
	w := &Word{group: g, syms: nil}
	w.Normalize()

	return w
}

// Generator returns the i-th generator as a fresh one-syllable word.
// Returns ErrUnknownGenerator when i is out of range.
func (g *Group) Generator(i int) (*Word, error) {
	if i < 0 || i >= len(g.gens) {
		return nil, fmt.Errorf("Generator: index %d out of range [0,%d): %w", i, len(g.gens), ErrUnknownGenerator)
	}

	return g.FromSymbols(Symbol{Gen: g.gens[i], Pow: 1})
}

// GeneratorByName returns the named generator as a fresh one-syllable word.
// Returns ErrUnknownGenerator for names outside the alphabet.
func (g *Group) GeneratorByName(name string) (*Word, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("GeneratorByName: %q: %w", name, ErrUnknownGenerator)
	}

	return g.Generator(i)
}

// FromSymbols builds a raw (unreduced) word from the given syllables.
// Every syllable must reference a generator of g; the slice is copied.
// Returns ErrUnknownGenerator on the first foreign syllable.
// Complexity: O(len(syms)).
func (g *Group) FromSymbols(syms ...Symbol) (*Word, error) {
	for _, s := range syms {
		if _, ok := g.index[s.Gen]; !ok {
			return nil, fmt.Errorf("FromSymbols: symbol %s: %w", s, ErrUnknownGenerator)
		}
	}

	return &Word{group: g, syms: append([]Symbol(nil), syms...)}, nil
}

// Word is a group element represented as a syllable sequence.
//
// A Word is in one of two states:
//
//   - raw: the syllable buffer may contain adjacent same-generator runs or
//     zero-exponent syllables; norm is nil.
//   - normalized: the buffer is freely reduced and norm carries the
//     memoized structural hash.
//
// Normalize is the single raw→normalized conversion; every mutation
// (PushLeft/PushRight, MulLeft/MulRight) resets the word to raw. In its
// public sense a Word is immutable: all arithmetic returns new Words built
// from freshly copied buffers.
type Word struct {
	group *Group
	syms  []Symbol
	norm  *normalForm
}

// normalForm marks a Word as freely reduced and memoizes its hash.
// Its presence (norm != nil) is the normalized state; there is no separate
// staleness flag that could disagree with the cached value.
type normalForm struct {
	hash uint64
}

// Group returns the word's parent group.
func (w *Word) Group() *Group { return w.group }

// SyllableLen returns the number of syllables in the current buffer.
// Unlike Len it does not normalize first.
func (w *Word) SyllableLen() int { return len(w.syms) }

// Syllables returns a copy of the current syllable buffer. The copy
// reflects the word's current state: call Normalize first for the reduced
// sequence.
func (w *Word) Syllables() []Symbol {
	return append([]Symbol(nil), w.syms...)
}

// Clone returns a deep copy of w, preserving its raw/normalized state.
func (w *Word) Clone() *Word {
	c := &Word{group: w.group, syms: append([]Symbol(nil), w.syms...)}
	if w.norm != nil {
		c.norm = &normalForm{hash: w.norm.hash}
	}

	return c
}

// Len returns the geodesic word length: the sum of syllable exponent
// magnitudes after free reduction. Normalizes w as a side effect.
func (w *Word) Len() int {
	w.Normalize()
	n := 0
	for _, s := range w.syms {
		n += s.Len()
	}

	return n
}

// IsIdentity reports whether w reduces to the empty word.
// Normalizes w as a side effect.
func (w *Word) IsIdentity() bool {
	w.Normalize()

	return len(w.syms) == 0
}

// sameParent returns ErrMismatchedParent (with operand context) unless the
// two words carry equal group handles.
func sameParent(op string, a, b *Word) error {
	if a.group.handle != b.group.handle {
		return fmt.Errorf("%s: %v vs %v: %w", op, a.group.gens, b.group.gens, ErrMismatchedParent)
	}

	return nil
}

// Uniform verifies that all words belong to one group and returns it.
// It is the coercion gate for batch operations: ErrCoercion when the batch
// is empty or spans several groups, ErrNilWord on a nil element.
func Uniform(ws ...*Word) (*Group, error) {
	if len(ws) == 0 {
		return nil, fmt.Errorf("Uniform: empty batch: %w", ErrCoercion)
	}
	for i, w := range ws {
		if w == nil {
			return nil, fmt.Errorf("Uniform: element %d: %w", i, ErrNilWord)
		}
		if w.group.handle != ws[0].group.handle {
			return nil, fmt.Errorf("Uniform: element %d belongs to a different group: %w", i, ErrCoercion)
		}
	}

	return ws[0].group, nil
}
