package paths

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wordgraph"
)

// ShortLexIterator enumerates paths from a fixed source node in short-lex
// order: increasing length first, lex order among paths of equal length.
// It is a BFS wavefront over (word, node) pairs. Pislo and Pstislo are both
// ShortLexIterator values, differing only in whether Config.Target
// restricts the endpoint.
type ShortLexIterator struct {
	g     *wordgraph.WordGraph
	cfg   Config
	queue []shortLexItem
}

type shortLexItem struct {
	word []uint32
	node uint32
}

// Pislo returns a lazy iterator over every path from s with length in
// [cfg.Min, cfg.Max), in short-lex order.
func Pislo(g *wordgraph.WordGraph, s uint32, opts ...Option) (*ShortLexIterator, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if int(s) >= g.NumberOfNodes() {
		return nil, fmt.Errorf("paths: Pislo: source %d: %w", s, ErrOutOfBounds)
	}
	if cfg.Target != constants.Undefined && int(cfg.Target) >= g.NumberOfNodes() {
		return nil, fmt.Errorf("paths: Pislo: target %d: %w", cfg.Target, ErrOutOfBounds)
	}
	if cfg.Min > cfg.Max {
		return nil, fmt.Errorf("paths: Pislo: min %d > max %d: %w", cfg.Min, cfg.Max, ErrInvalidArgument)
	}
	return &ShortLexIterator{
		g:     g,
		cfg:   cfg,
		queue: []shortLexItem{{word: nil, node: s}},
	}, nil
}

// Pstislo returns a lazy short-lex iterator restricted to paths ending at
// t. It is Pislo with WithTarget(t) folded in.
func Pstislo(g *wordgraph.WordGraph, s, t uint32, opts ...Option) (*ShortLexIterator, error) {
	return Pislo(g, s, append(opts, WithTarget(t))...)
}

// Next advances the iterator and returns the next path's word and
// endpoint. ok is false once every path in range has been produced.
func (it *ShortLexIterator) Next() (word []uint32, endpoint uint32, ok bool) {
	for len(it.queue) > 0 {
		cur := it.queue[0]
		it.queue = it.queue[1:]
		length := int64(len(cur.word))

		if length+1 < it.cfg.Max {
			for a := 0; a < it.g.OutDegree(); a++ {
				t := it.g.TargetNoChecks(cur.node, uint32(a))
				if t == constants.Undefined {
					continue
				}
				nw := make([]uint32, length+1)
				copy(nw, cur.word)
				nw[length] = uint32(a)
				it.queue = append(it.queue, shortLexItem{word: nw, node: t})
			}
		}

		if length >= it.cfg.Min && length < it.cfg.Max &&
			(it.cfg.Target == constants.Undefined || cur.node == it.cfg.Target) {
			return cur.word, cur.node, true
		}
	}
	return nil, 0, false
}
