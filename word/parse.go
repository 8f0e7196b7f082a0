package word

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical text form
//
// The identity prints as "(id)"; any other word prints its syllables
// joined by '*', each syllable as the bare generator name when the
// exponent is 1 and as "gen^pow" otherwise, e.g. "t*s^-1". Parse accepts
// exactly this grammar (whitespace around syllables is tolerated), so
// printing a word and parsing it back yields an equal word.

// identityLiteral is the printed form of the empty word.
const identityLiteral = "(id)"

// String renders w's canonical text form, normalizing w as a side effect
// so the printed form is the reduced representative.
func (w *Word) String() string {
	w.Normalize()
	if len(w.syms) == 0 {
		return identityLiteral
	}
	var b strings.Builder
	for i, s := range w.syms {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(s.String())
	}

	return b.String()
}

// Parse builds a raw word of g from its canonical text form.
//
// Accepted forms: "(id)", or '*'-separated syllables "gen" / "gen^pow"
// with pow a (possibly negative) decimal integer. The result is not
// normalized; comparison and printing normalize lazily as usual.
//
// Errors: ErrSyntax for grammar violations, ErrUnknownGenerator for names
// outside g's alphabet.
func Parse(g *Group, s string) (*Word, error) {
	s = strings.TrimSpace(s)
	if s == identityLiteral {
		return g.Identity(), nil
	}
	if s == "" {
		return nil, fmt.Errorf("Parse: empty literal: %w", ErrSyntax)
	}

	parts := strings.Split(s, "*")
	syms := make([]Symbol, 0, len(parts))
	for _, part := range parts {
		sym, err := parseSyllable(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym)
	}

	return g.FromSymbols(syms...)
}

// parseSyllable decodes one "gen" or "gen^pow" token.
func parseSyllable(tok string) (Symbol, error) {
	if tok == "" {
		return Symbol{}, fmt.Errorf("Parse: empty syllable: %w", ErrSyntax)
	}
	gen, powStr, caret := strings.Cut(tok, "^")
	if gen == "" {
		return Symbol{}, fmt.Errorf("Parse: syllable %q has no generator: %w", tok, ErrSyntax)
	}
	if !caret {
		return Symbol{Gen: gen, Pow: 1}, nil
	}
	pow, err := strconv.Atoi(powStr)
	if err != nil {
		return Symbol{}, fmt.Errorf("Parse: syllable %q has bad exponent: %w", tok, ErrSyntax)
	}

	return Symbol{Gen: gen, Pow: pow}, nil
}
