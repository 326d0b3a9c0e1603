// Errors:
//
//	ErrOutOfBounds - node index outside [0, Size())
//	ErrSelfParent  - SetParentAndLabel(v, v, ...)
//	ErrNotAcyclic  - checked edit would close a cycle
package forest
