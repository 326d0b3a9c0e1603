// Package hopcroftkarp computes the join and meet of two word graphs over a
// common label alphabet, and tests one for being a subrelation of the
// other.
package hopcroftkarp

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
	"github.com/arvel-sg/semicore/uf"
	"github.com/arvel-sg/semicore/wordgraph"
)

func validate(x *wordgraph.WordGraph, xr uint32, y *wordgraph.WordGraph, yr uint32) error {
	if x.OutDegree() != y.OutDegree() {
		return fmt.Errorf("hopcroftkarp: out-degrees %d and %d: %w", x.OutDegree(), y.OutDegree(), ErrMismatch)
	}
	if int(xr) >= x.NumberOfNodes() {
		return fmt.Errorf("hopcroftkarp: root %d: %w", xr, ErrOutOfBounds)
	}
	if int(yr) >= y.NumberOfNodes() {
		return fmt.Errorf("hopcroftkarp: root %d: %w", yr, ErrOutOfBounds)
	}
	return nil
}

// Join returns the coarsest common quotient automaton of x (rooted at xr)
// and y (rooted at yr): the union-find over the combined |x|+|y| node space
// seeded by identifying xr with yr, then iteratively uniting
// label-corresponding targets of every already-identified pair until no
// more unions occur.
func Join(x *wordgraph.WordGraph, xr uint32, y *wordgraph.WordGraph, yr uint32) (*wordgraph.WordGraph, error) {
	if err := validate(x, xr, y, yr); err != nil {
		return nil, err
	}
	nx, ny := x.NumberOfNodes(), y.NumberOfNodes()
	d := x.OutDegree()

	target := func(n int, a uint32) uint32 {
		if n < nx {
			return x.TargetNoChecks(uint32(n), a)
		}
		t := y.TargetNoChecks(uint32(n-nx), a)
		if t == constants.Undefined {
			return constants.Undefined
		}
		return t + uint32(nx)
	}

	u := uf.New(nx + ny)
	u.Union(int(xr), nx+int(yr))

	type pair struct{ p, q int }
	stack := []pair{{int(xr), nx + int(yr)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for a := 0; a < d; a++ {
			tp := target(top.p, uint32(a))
			tq := target(top.q, uint32(a))
			if tp == constants.Undefined || tq == constants.Undefined {
				continue
			}
			rp, err := u.Find(int(tp))
			if err != nil {
				return nil, err
			}
			rq, err := u.Find(int(tq))
			if err != nil {
				return nil, err
			}
			if rp != rq {
				if err := u.Union(rp, rq); err != nil {
					return nil, err
				}
				stack = append(stack, pair{rp, rq})
			}
		}
	}

	u.Normalize()
	blocks := u.Blocks()
	classOf := make([]uint32, nx+ny)
	for idx, block := range blocks {
		for _, node := range block {
			classOf[node] = uint32(idx)
		}
	}

	out := wordgraph.New(len(blocks), d)
	for s := 0; s < nx+ny; s++ {
		for a := 0; a < d; a++ {
			t := target(s, uint32(a))
			if t == constants.Undefined {
				continue
			}
			if err := out.SetTarget(classOf[s], uint32(a), classOf[t]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// IsSubrelation reports whether x (rooted at xr) is a subrelation of y
// (rooted at yr): x's language is contained in y's iff their join has
// exactly as many classes as y has nodes.
func IsSubrelation(x *wordgraph.WordGraph, xr uint32, y *wordgraph.WordGraph, yr uint32) (bool, error) {
	joined, err := Join(x, xr, y, yr)
	if err != nil {
		return false, err
	}
	return joined.NumberOfNodes() == y.NumberOfNodes(), nil
}
