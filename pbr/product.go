package pbr

import "fmt"

// ProductInPlaceNoChecks sets the receiver to x*y, using the scratch buffers
// leased from pool for threadID. x, y, and the receiver must all have the
// same degree, and the receiver must not alias x or y; none of this is
// checked.
func (dst *PBR) ProductInPlaceNoChecks(x, y *PBR, pool *Pool, threadID int) {
	n := x.Degree()
	s := pool.get(threadID, n)
	productInto(s, x, y, n)

	adj := make([][]uint32, 2*n)
	for i := 0; i < 2*n; i++ {
		row := s.out[i]
		for j := 0; j < 2*n; j++ {
			if row[j] {
				adj[i] = append(adj[i], uint32(j))
			}
		}
	}
	dst.adj = adj
}

// ProductInPlaceChecked validates x, y, and their compatibility before
// calling ProductInPlaceNoChecks.
func (dst *PBR) ProductInPlaceChecked(x, y *PBR, pool *Pool, threadID int) error {
	if x.Degree() != y.Degree() {
		return fmt.Errorf("pbr: ProductInPlaceChecked: the degree of the first argument (%d) is not equal to the degree of the second argument (%d): %w", x.Degree(), y.Degree(), ErrMismatchedDegree)
	}
	if dst == x || dst == y {
		return fmt.Errorf("pbr: ProductInPlaceChecked: the destination aliases an argument, expected it to be distinct: %w", ErrInvalidArgument)
	}
	if err := Validate(x); err != nil {
		return err
	}
	if err := Validate(y); err != nil {
		return err
	}
	dst.ProductInPlaceNoChecks(x, y, pool, threadID)
	return nil
}

var defaultPool = &Pool{}

// ProductInPlace sets the receiver to a*b using a package-level scratch pool
// keyed by threadID. It performs no validation; callers that need checked
// behaviour should use ProductInPlaceChecked. This satisfies
// element.Multiplicative.
func (dst *PBR) ProductInPlace(a, b *PBR, threadID int) {
	dst.ProductInPlaceNoChecks(a, b, defaultPool, threadID)
}

// Multiply returns a validated product of x and y, allocating both the
// result and its own scratch pool.
func Multiply(x, y *PBR) (*PBR, error) {
	dst := NewEmpty(x.Degree())
	if err := dst.ProductInPlaceChecked(x, y, &Pool{}, 0); err != nil {
		return nil, err
	}
	return dst, nil
}

// productInto runs the alternating-DFS product algorithm, writing its
// result into s.out.
func productInto(s *Scratch, x, y *PBR, n int) {
	out, tmp, xSeen, ySeen := s.out, s.tmp, s.xSeen, s.ySeen

	for i := 0; i < n; i++ {
		for _, j := range x.adj[i] {
			jj := int(j)
			switch {
			case jj < n:
				out[i][jj] = true
			case tmp[jj][0]:
				uniteRows(out, tmp, i, jj)
			default:
				tmp[jj][0] = true
				xSeen[i] = true
				yDFS(xSeen, ySeen, tmp, n, jj-n, x, y, jj)
				uniteRows(out, tmp, i, jj)
				clearBools(xSeen)
				clearBools(ySeen)
			}
			if allTrue(out[i]) {
				break
			}
		}
	}

	for i := n; i < 2*n; i++ {
		for _, j := range y.adj[i] {
			jj := int(j)
			switch {
			case jj >= n:
				out[i][jj] = true
			case tmp[jj][0]:
				uniteRows(out, tmp, i, jj)
			default:
				tmp[jj][0] = true
				ySeen[i] = true
				xDFS(xSeen, ySeen, tmp, n, jj+n, x, y, jj)
				uniteRows(out, tmp, i, jj)
				clearBools(xSeen)
				clearBools(ySeen)
			}
			if allTrue(out[i]) {
				break
			}
		}
	}
}

// xDFS and yDFS alternate: xDFS follows x's adjacency from a left-indexed
// point, crossing into yDFS whenever it reaches a right point of x; yDFS
// follows y's adjacency from a right-indexed point, crossing into xDFS
// whenever it reaches a left point of y. Every point reached that stays on
// the "home" side of its relation is recorded into tmp's row for adj.
func xDFS(xSeen, ySeen []bool, tmp [][]bool, n, i int, x, y *PBR, adj int) {
	if xSeen[i] {
		return
	}
	xSeen[i] = true
	for _, j := range x.adj[i] {
		jj := int(j)
		if jj < n {
			tmp[adj][jj+1] = true
		} else {
			yDFS(xSeen, ySeen, tmp, n, jj-n, x, y, adj)
		}
	}
}

func yDFS(xSeen, ySeen []bool, tmp [][]bool, n, i int, x, y *PBR, adj int) {
	if ySeen[i] {
		return
	}
	ySeen[i] = true
	for _, j := range y.adj[i] {
		jj := int(j)
		if jj >= n {
			tmp[adj][jj+1] = true
		} else {
			xDFS(xSeen, ySeen, tmp, n, jj+n, x, y, adj)
		}
	}
}

func uniteRows(out, tmp [][]bool, i, j int) {
	row, cache := out[i], tmp[j]
	for k := range row {
		row[k] = row[k] || cache[k+1]
	}
}

func allTrue(row []bool) bool {
	for _, v := range row {
		if !v {
			return false
		}
	}
	return true
}

func clearBools(s []bool) {
	for i := range s {
		s[i] = false
	}
}
