// doc.go holds only the package overview; see types.go for the UnionFind
// struct and unionfind.go for its operations.
//
// Complexity summary:
//
//	Find, Union:            amortised near-constant
//	Normalize:               O(n)
//	NumberOfBlocks:          O(n) on every call
//	Blocks:                  O(n), cached between mutations
//	Join:                    O(n) union operations
//
// Errors:
//
//	ErrOutOfBounds   - Find/Union index outside [0, Size())
//	ErrSizeMismatch  - Join of UnionFinds with differing Size()
package uf
