// Package paths enumerates and counts paths in a word graph: lazy
// lex-order and short-lex-order iterators (Pilo/Pstilo, Pislo/Pstislo), and
// an exact NumberOfPaths count over a length range.
//
// Errors:
//
//	ErrOutOfBounds     - a source, target, or endpoint node is invalid
//	ErrInvalidArgument - min > max, or an unbounded max passed to NumberOfPaths
package paths
