package suffixtree

import "errors"

// ErrInvalidLetter is returned when a word passed to AddWord or a query
// contains a letter that collides with an internally reserved terminator.
var ErrInvalidLetter = errors.New("suffixtree: invalid letter")

// ErrUnknownWord is returned by queries that require a word to have been
// previously added verbatim via AddWord.
var ErrUnknownWord = errors.New("suffixtree: unknown word")
