package paths

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wordgraph"
)

// LexIterator enumerates paths from a fixed source node in lexicographical
// order of their defining word: shorter-label-first at every branch, depth
// first. Pilo and Pstilo are both LexIterator values, differing only in
// whether Config.Target restricts the endpoint.
//
// It is a forward-only iterator: call Next until it returns ok == false.
type LexIterator struct {
	g    *wordgraph.WordGraph
	cfg  Config
	done bool

	stack   []lexFrame
	word    []uint32
	pending bool
}

type lexFrame struct {
	node      uint32
	nextLabel uint32
}

// Pilo returns a lazy iterator over every path from s with length in
// [cfg.Min, cfg.Max), in lex order. If cfg.Target is not
// constants.Undefined, it behaves as Pstilo and only yields paths ending at
// that node.
func Pilo(g *wordgraph.WordGraph, s uint32, opts ...Option) (*LexIterator, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if int(s) >= g.NumberOfNodes() {
		return nil, fmt.Errorf("paths: Pilo: source %d: %w", s, ErrOutOfBounds)
	}
	if cfg.Target != constants.Undefined && int(cfg.Target) >= g.NumberOfNodes() {
		return nil, fmt.Errorf("paths: Pilo: target %d: %w", cfg.Target, ErrOutOfBounds)
	}
	if cfg.Min > cfg.Max {
		return nil, fmt.Errorf("paths: Pilo: min %d > max %d: %w", cfg.Min, cfg.Max, ErrInvalidArgument)
	}
	return &LexIterator{
		g:       g,
		cfg:     cfg,
		stack:   []lexFrame{{node: s, nextLabel: 0}},
		pending: true,
	}, nil
}

// Pstilo returns a lazy lex-order iterator restricted to paths ending at t.
// It is Pilo with WithTarget(t) folded in.
func Pstilo(g *wordgraph.WordGraph, s, t uint32, opts ...Option) (*LexIterator, error) {
	return Pilo(g, s, append(opts, WithTarget(t))...)
}

// Next advances the iterator and returns the next path's word and
// endpoint. ok is false once every path in range has been produced.
func (it *LexIterator) Next() (word []uint32, endpoint uint32, ok bool) {
	for !it.done {
		if it.pending {
			it.pending = false
			cur := it.stack[len(it.stack)-1].node
			length := int64(len(it.word))
			if length >= it.cfg.Min && length < it.cfg.Max &&
				(it.cfg.Target == constants.Undefined || cur == it.cfg.Target) {
				out := append([]uint32(nil), it.word...)
				return out, cur, true
			}
		}

		if int64(len(it.word))+1 >= it.cfg.Max {
			if !it.backtrack() {
				it.done = true
			}
			continue
		}

		top := &it.stack[len(it.stack)-1]
		b, t := it.g.NextLabelAndTarget(top.node, top.nextLabel)
		if b == constants.Undefined {
			if !it.backtrack() {
				it.done = true
			}
			continue
		}
		top.nextLabel = b + 1
		it.word = append(it.word, b)
		it.stack = append(it.stack, lexFrame{node: t, nextLabel: 0})
		it.pending = true
	}
	return nil, 0, false
}

func (it *LexIterator) backtrack() bool {
	if len(it.stack) <= 1 {
		return false
	}
	it.stack = it.stack[:len(it.stack)-1]
	it.word = it.word[:len(it.word)-1]
	return true
}
