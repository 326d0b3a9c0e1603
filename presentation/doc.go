// doc.go records the error set of this package.
//
// Errors:
//
//	ErrNonInvolutiveInverses - inverses fails ι(ι(a)) = a for some letter a
//	ErrLetterOutOfAlphabet   - a rule or inverse entry names an unknown letter
//	ErrEmptyAlphabet         - the alphabet has size zero
package presentation
