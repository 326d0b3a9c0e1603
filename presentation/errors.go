package presentation

import "errors"

// Sentinel errors for the presentation package.
var (
	// ErrNonInvolutiveInverses indicates inverses is not an involution:
	// some ι(ι(a)) != a.
	ErrNonInvolutiveInverses = errors.New("presentation: inverses is not an involution")

	// ErrLetterOutOfAlphabet indicates a rule or inverse entry names a
	// letter outside the alphabet.
	ErrLetterOutOfAlphabet = errors.New("presentation: letter outside alphabet")

	// ErrEmptyAlphabet indicates an alphabet of size zero was supplied.
	ErrEmptyAlphabet = errors.New("presentation: alphabet must be non-empty")
)
