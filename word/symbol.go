package word

import "strconv"

// Symbol is one syllable of a group word: a generator name together with a
// signed integer exponent. The zero exponent denotes the group identity and
// makes the syllable eligible for removal during reduction.
//
// Symbol is a plain value type; all methods are read-only.
type Symbol struct {
	// Gen is the generator name. Two symbols refer to the same generator
	// iff their Gen fields are equal, regardless of exponent.
	Gen string

	// Pow is the signed exponent.
	Pow int
}

// NewSymbol returns the syllable gen^pow.
func NewSymbol(gen string, pow int) Symbol {
	return Symbol{Gen: gen, Pow: pow}
}

// Len returns the syllable's contribution to geodesic word length, |Pow|.
// Complexity: O(1).
func (s Symbol) Len() int {
	if s.Pow < 0 {
		return -s.Pow
	}

	return s.Pow
}

// Inv returns the inverse syllable, gen^-pow.
func (s Symbol) Inv() Symbol {
	return Symbol{Gen: s.Gen, Pow: -s.Pow}
}

// IsIdentity reports whether the syllable denotes the identity (Pow == 0).
func (s Symbol) IsIdentity() bool {
	return s.Pow == 0
}

// SameGenerator reports whether s and t reference the same generator.
func (s Symbol) SameGenerator(t Symbol) bool {
	return s.Gen == t.Gen
}

// SubsymbolOf reports whether s is contained in t: both syllables reference
// the same generator and s.Pow lies between 0 and t.Pow inclusive. In other
// words, s's exponent magnitude does not exceed t's and both point in the
// same rotational direction (a zero exponent is contained in anything on
// the same generator).
//
// Examples: a¹ ⊑ a², a⁻¹ ⊑ a⁻², but a¹ ⋢ a⁻².
func (s Symbol) SubsymbolOf(t Symbol) bool {
	if s.Gen != t.Gen {
		return false
	}
	if s.Pow == 0 {
		return true // the trivial syllable is contained in any exponent
	}
	if s.Pow > 0 {
		return s.Pow <= t.Pow
	}

	return t.Pow <= s.Pow
}

// String renders the syllable in canonical text form: the bare generator
// name when Pow == 1, otherwise "gen^pow" (e.g. "s", "t^-1", "y^3").
func (s Symbol) String() string {
	if s.Pow == 1 {
		return s.Gen
	}

	return s.Gen + "^" + strconv.Itoa(s.Pow)
}
