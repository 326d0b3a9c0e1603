// doc.go records the error set and caching behaviour of this package.
//
// Errors:
//
//	ErrOutOfBounds - a node or component index outside its valid range
//	ErrIncomplete  - the underlying graph has a node missing an out-edge
//
// Run is idempotent and memoized: the first query of any kind runs the
// decomposition once; subsequent queries, including against a failed run,
// reuse the cached result or error without re-running.
package gabow
