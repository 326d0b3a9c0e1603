package pbr

import "github.com/arvel-sg/semicore/element"

// One returns the identity PBR of degree n, ignoring the receiver.
func (p *PBR) One(n int) *PBR { return One(n) }

var _ element.Multiplicative[*PBR] = (*PBR)(nil)
