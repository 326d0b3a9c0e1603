// doc.go records the error set of this package.
//
// Errors:
//
//	ErrMismatch    - x and y have different out-degrees
//	ErrOutOfBounds - a root node is invalid for its own graph
package hopcroftkarp
