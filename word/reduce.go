package word

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Free reduction
//
// Description:
//
//	A word is freely reduced when no two adjacent syllables share a
//	generator and no syllable carries a zero exponent. The reduced form is
//	the unique shortest representative of the group element, so geodesic
//	length, equality and hashing are only meaningful after reduction.
//
// Algorithm Outline:
//  1. If the buffer holds fewer than two syllables, just drop zero-exponent
//     syllables and stop.
//  2. Scan adjacent pairs left-to-right; whenever a pair shares a
//     generator, store the combined exponent in the second position and
//     zero out the first.
//  3. After the scan, sweep out all zero-exponent syllables.
//  4. Repeat full passes until a pass neither collapses a pair nor removes
//     a syllable.
//
// Complexity:
//
//	Each pass is O(n). Alternating cancellations (a·a⁻¹·a·a⁻¹·…) can demand
//	O(n) passes, so the worst case is O(n²) — fine for typical word lengths.

// reduceSyllables rewrites syms into freely reduced form and returns the
// (possibly shorter) slice. The input backing array is reused.
func reduceSyllables(syms []Symbol) []Symbol {
	if len(syms) < 2 {
		return sweepZeros(syms)
	}
	for {
		changed := false
		// Collapse adjacent same-generator pairs into the second slot.
		for i := 0; i+1 < len(syms); i++ {
			if syms[i].IsIdentity() || !syms[i].SameGenerator(syms[i+1]) {
				continue
			}
			syms[i+1].Pow += syms[i].Pow
			syms[i].Pow = 0
			changed = true
		}
		before := len(syms)
		syms = sweepZeros(syms)
		if !changed && len(syms) == before {
			return syms
		}
	}
}

// sweepZeros removes zero-exponent syllables in place, keeping order.
func sweepZeros(syms []Symbol) []Symbol {
	out := syms[:0]
	for _, s := range syms {
		if !s.IsIdentity() {
			out = append(out, s)
		}
	}

	return out
}

// Normalize converts w to its freely reduced form and memoizes the
// structural hash. It is idempotent and is the only implicit reduction
// site in the module: Equal, Hash, Len, IsIdentity and String all funnel
// through it, everything else must ask for it explicitly.
//
// Returns w for chaining.
func (w *Word) Normalize() *Word {
	if w.norm != nil {
		return w // already normalized, never reduce twice
	}
	w.syms = reduceSyllables(w.syms)
	w.norm = &normalForm{hash: hashSyllables(w.group.handle, w.syms)}

	return w
}

// hashSyllables computes the structural hash of a reduced syllable
// sequence. The group handle acts as the kind discriminator, so words over
// distinct alphabets do not collide by construction; each generator name is
// length-prefixed to keep the byte stream unambiguous.
func hashSyllables(handle uint64, syms []Symbol) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], handle)
	_, _ = d.Write(buf[:])
	for _, s := range syms {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s.Gen)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(s.Gen)
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(s.Pow)))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
