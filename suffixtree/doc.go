// doc.go records the error set of this package.
//
// Errors:
//
//	ErrInvalidLetter - a word contains a negative (reserved-terminator) letter
//	ErrUnknownWord    - a query names a word never passed to AddWord
package suffixtree
