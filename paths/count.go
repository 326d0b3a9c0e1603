package paths

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/wordgraph"
)

// NumberOfPaths counts the paths from s with length in [cfg.Min, cfg.Max),
// optionally restricted to endpoint cfg.Target, without enumerating them.
func NumberOfPaths(g *wordgraph.WordGraph, s uint32, opts ...Option) (int64, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if int(s) >= g.NumberOfNodes() {
		return 0, fmt.Errorf("paths: NumberOfPaths: source %d: %w", s, ErrOutOfBounds)
	}
	if cfg.Target != constants.Undefined && int(cfg.Target) >= g.NumberOfNodes() {
		return 0, fmt.Errorf("paths: NumberOfPaths: target %d: %w", cfg.Target, ErrOutOfBounds)
	}
	if cfg.Min > cfg.Max {
		return 0, fmt.Errorf("paths: NumberOfPaths: min %d > max %d: %w", cfg.Min, cfg.Max, ErrInvalidArgument)
	}
	if cfg.Max == constants.PositiveInfinity {
		return 0, fmt.Errorf("paths: NumberOfPaths: unbounded max length: %w", ErrInvalidArgument)
	}

	strategy := cfg.Strategy
	if strategy == Automatic {
		n := int64(g.NumberOfNodes())
		if cfg.Max-cfg.Min > n {
			strategy = Matrix
		} else {
			strategy = DFS
		}
	}

	var target *uint32
	if cfg.Target != constants.Undefined {
		t := cfg.Target
		target = &t
	}

	if strategy == Matrix {
		return countPathsMatrix(g, s, target, cfg.Min, cfg.Max), nil
	}
	return countPathsDFS(g, s, target, cfg.Min, cfg.Max), nil
}

// countPathsDFS counts paths by a depth-bounded layer-by-layer expansion:
// counts[k][v] holds the number of length-k paths from s to v, advanced one
// label-step at a time. This is the DFS strategy's iterative rendition —
// equivalent in result to a depth-bounded recursive DFS, but iterative so it
// never recomputes a shared prefix.
func countPathsDFS(g *wordgraph.WordGraph, s uint32, t *uint32, lo, hi int64) int64 {
	n := g.NumberOfNodes()
	d := g.OutDegree()
	counts := make([]int64, n)
	counts[s] = 1

	var total int64
	for k := int64(0); k < hi; k++ {
		if k >= lo {
			if t == nil {
				for _, c := range counts {
					total += c
				}
			} else {
				total += counts[*t]
			}
		}
		if k+1 == hi {
			break
		}
		next := make([]int64, n)
		for i := 0; i < n; i++ {
			if counts[i] == 0 {
				continue
			}
			for a := 0; a < d; a++ {
				j := g.TargetNoChecks(uint32(i), uint32(a))
				if j == constants.Undefined {
					continue
				}
				next[j] += counts[i]
			}
		}
		counts = next
	}
	return total
}

// countPathsMatrix counts paths via the integer adjacency matrix M, where
// M[i][j] is the number of labels a with target(i,a) == j. The number of
// length-k paths from s to t is (M^k)[s][t]; this advances the row vector
// M^k[s, :] one multiplication at a time and accumulates it over k in
// [lo, hi). Preferred over countPathsDFS when hi-lo is large relative to n,
// since each step is a dense O(n^2) vector-matrix product independent of
// how many nodes currently carry nonzero count.
func countPathsMatrix(g *wordgraph.WordGraph, s uint32, t *uint32, lo, hi int64) int64 {
	n := g.NumberOfNodes()
	d := g.OutDegree()
	m := newIntMatrix(n)
	for i := 0; i < n; i++ {
		for a := 0; a < d; a++ {
			j := g.TargetNoChecks(uint32(i), uint32(a))
			if j == constants.Undefined {
				continue
			}
			m[i][j]++
		}
	}

	// row vector tracking M^k[s, :], advanced one multiplication at a time.
	row := make([]int64, n)
	row[s] = 1

	var total int64
	for k := int64(0); k < hi; k++ {
		if k >= lo {
			if t == nil {
				for _, c := range row {
					total += c
				}
			} else {
				total += row[*t]
			}
		}
		if k+1 == hi {
			break
		}
		row = vecMatMul(row, m)
	}
	return total
}

type intMatrix [][]int64

func newIntMatrix(n int) intMatrix {
	m := make(intMatrix, n)
	for i := range m {
		m[i] = make([]int64, n)
	}
	return m
}

func vecMatMul(row []int64, m intMatrix) []int64 {
	n := len(row)
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		if row[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if m[i][j] != 0 {
				out[j] += row[i] * m[i][j]
			}
		}
	}
	return out
}
