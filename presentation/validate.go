package presentation

import "fmt"

// Validate fails if inverses is not an involution over the alphabet, or any
// rule letter lies outside the alphabet.
func (p *InversePresentation) Validate() error {
	if p.alphabetSize == 0 {
		return fmt.Errorf("presentation: Validate: %w", ErrEmptyAlphabet)
	}
	if len(p.inverses) != p.alphabetSize {
		return fmt.Errorf("presentation: Validate: inverses has %d entries, alphabet has %d letters: %w", len(p.inverses), p.alphabetSize, ErrNonInvolutiveInverses)
	}
	for a, ia := range p.inverses {
		if int(ia) >= p.alphabetSize {
			return fmt.Errorf("presentation: Validate: inverse of letter %d is %d, outside the alphabet: %w", a, ia, ErrLetterOutOfAlphabet)
		}
		if int(p.inverses[ia]) != a {
			return fmt.Errorf("presentation: Validate: inverses is not an involution at letter %d: %w", a, ErrNonInvolutiveInverses)
		}
	}
	for i, r := range p.rules {
		if err := p.validateWord(r.U); err != nil {
			return fmt.Errorf("presentation: Validate: rule %d left side: %w", i, err)
		}
		if err := p.validateWord(r.V); err != nil {
			return fmt.Errorf("presentation: Validate: rule %d right side: %w", i, err)
		}
	}
	return nil
}

func (p *InversePresentation) validateWord(w []uint32) error {
	for _, a := range w {
		if int(a) >= p.alphabetSize {
			return fmt.Errorf("letter %d outside alphabet of size %d: %w", a, p.alphabetSize, ErrLetterOutOfAlphabet)
		}
	}
	return nil
}
