// Package constants defines the sentinel values shared across the word-graph
// and semigroup-structure packages: Undefined, PositiveInfinity,
// NegativeInfinity, and LimitMax.
//
// Each sentinel is a distinct value of the same width as a real node, label,
// or length in this library. They are chosen so that ordinary arithmetic
// comparisons (<, >, ==) between a sentinel and a real index remain
// meaningful: Undefined is the maximum representable value, so any valid
// node index n satisfies n < Undefined. The sentinels are not freely
// orderable against one another — comparing NegativeInfinity to Undefined,
// for instance, is a caller error, not a defined relation.
package constants

// Undefined marks the absence of a node, label, or edge target. It is the
// maximum value of uint32, so every valid node or label index is strictly
// less than Undefined.
const Undefined uint32 = ^uint32(0)

// UndefinedLen marks the absence of a length or depth as the signed int -1,
// which no real length or depth can equal.
const UndefinedLen int = -1

// PositiveInfinity represents an unbounded upper limit, e.g. an unbounded
// maximum path length passed to the paths enumerators.
const PositiveInfinity int64 = 1<<63 - 1

// NegativeInfinity represents an unbounded lower limit.
const NegativeInfinity int64 = -(1 << 62)

// LimitMax is the largest finite bound a caller will accept; distinct from
// PositiveInfinity, which denotes "no bound at all".
const LimitMax int64 = 1<<62 - 1

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v uint32) bool { return v == Undefined }
