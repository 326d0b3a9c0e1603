// doc.go records the error set of this package.
//
// Errors:
//
//	ErrOutOfBounds     - node or label index outside its valid range
//	ErrInvalidArgument  - well-typed argument violating a precondition (MergeNodes requires min < max)
//	ErrInvalidState    - operation would violate an in-progress invariant
package wgsources
