// Package presentation defines InversePresentation, the description of an
// inverse monoid presentation consumed by Stephen's procedure and the
// structure-theory algorithms built on top of it: an alphabet, an
// involution giving each letter its inverse, a set of rewrite rules, and a
// flag admitting the empty word.
package presentation

// Rule is a single rewrite rule (u, v), both words over the presentation's
// alphabet.
type Rule struct {
	U, V []uint32
}

// InversePresentation is an alphabet {0, ..., n-1}, an involution mapping
// each letter to its inverse, a list of rewrite rules, and a flag for
// whether the empty word is accepted.
type InversePresentation struct {
	alphabetSize      int
	inverses          []uint32
	rules             []Rule
	containsEmptyWord bool
}

// New returns an InversePresentation over an alphabet of the given size
// with the given involution (inverses[a] names the inverse of letter a).
// len(inverses) must equal alphabetSize; this is checked by Validate, not
// by New.
func New(alphabetSize int, inverses []uint32) *InversePresentation {
	return &InversePresentation{
		alphabetSize: alphabetSize,
		inverses:     inverses,
	}
}

// AlphabetSize returns the number of letters in the presentation's
// alphabet.
func (p *InversePresentation) AlphabetSize() int { return p.alphabetSize }

// Inverse returns the inverse of letter a, as given by the presentation's
// involution.
func (p *InversePresentation) Inverse(a uint32) uint32 { return p.inverses[a] }

// Rules returns the presentation's rewrite rules.
func (p *InversePresentation) Rules() []Rule { return p.rules }

// AddRule appends the rule (u, v).
func (p *InversePresentation) AddRule(u, v []uint32) {
	p.rules = append(p.rules, Rule{U: u, V: v})
}

// ContainsEmptyWord reports whether the empty word is accepted by this
// presentation.
func (p *InversePresentation) ContainsEmptyWord() bool { return p.containsEmptyWord }

// SetContainsEmptyWord sets whether the empty word is accepted.
func (p *InversePresentation) SetContainsEmptyWord(v bool) { p.containsEmptyWord = v }
