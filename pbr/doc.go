// doc.go records the error set of this package.
//
// Errors:
//
//	ErrInvalidArgument  - malformed adjacency description or bad aliasing
//	ErrMismatchedDegree - product attempted between PBRs of different degree
//	ErrOutOfBounds      - At called with a point outside [0, NumberOfPoints())
package pbr
