package wordgraph

import (
	"fmt"

	"github.com/arvel-sg/semicore/constants"
)

// WordGraphView is a non-owning window [start, end) over an underlying
// WordGraph, translating node indices so that the view's own nodes are
// numbered [0, end-start). The view borrows the underlying graph and must
// not outlive it.
type WordGraphView struct {
	g          *WordGraph
	start, end int
}

// NewWordGraphView returns a view of g over nodes [start, end). Requires
// 0 <= start <= end <= g.NumberOfNodes().
func NewWordGraphView(g *WordGraph, start, end int) (*WordGraphView, error) {
	if start < 0 || end < start || end > g.NumberOfNodes() {
		return nil, fmt.Errorf("wordgraph: NewWordGraphView(%d, %d): %w", start, end, ErrInvalidArgument)
	}
	return &WordGraphView{g: g, start: start, end: end}, nil
}

// NumberOfNodes returns end - start.
func (v *WordGraphView) NumberOfNodes() int { return v.end - v.start }

// OutDegree returns the underlying graph's out-degree.
func (v *WordGraphView) OutDegree() int { return v.g.OutDegree() }

// Target returns the a-labelled target of local node s, translated into the
// view's own node numbering. If the underlying edge targets a node outside
// the window, Target reports constants.Undefined.
func (v *WordGraphView) Target(s, a uint32) (uint32, error) {
	if int(s) >= v.NumberOfNodes() {
		return 0, fmt.Errorf("wordgraph: WordGraphView.Target: source %d: %w", s, ErrOutOfBounds)
	}
	t, err := v.g.Target(s+uint32(v.start), a)
	if err != nil {
		return 0, err
	}
	if t == constants.Undefined {
		return constants.Undefined, nil
	}
	if int(t) < v.start || int(t) >= v.end {
		return constants.Undefined, nil
	}
	return t - uint32(v.start), nil
}

// ToOwning converts the view into a freestanding, owning WordGraph. It
// fails if any edge of the underlying graph within the window targets a
// node outside the window (such edges cannot be represented once the view
// is materialized).
func (v *WordGraphView) ToOwning() (*WordGraph, error) {
	out := New(v.NumberOfNodes(), v.OutDegree())
	for s := 0; s < v.NumberOfNodes(); s++ {
		for a := 0; a < v.OutDegree(); a++ {
			underlying, err := v.g.Target(uint32(s+v.start), uint32(a))
			if err != nil {
				return nil, err
			}
			if underlying == constants.Undefined {
				continue
			}
			if int(underlying) < v.start || int(underlying) >= v.end {
				return nil, fmt.Errorf(
					"wordgraph: WordGraphView.ToOwning: node %d label %d targets %d outside window [%d, %d): %w",
					s, a, underlying, v.start, v.end, ErrInvalidArgument)
			}
			out.target[out.index(s, a)] = underlying - uint32(v.start)
		}
	}
	return out, nil
}
