// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomesh/dom"
)

// Elem is one finite element of the mesh: a fixed np × np grid of node
// references, stored row-major so that local node l = l1*np + l2 sits at grid
// position (l2, l1), with l2 running along the first local coordinate. The
// element references, but does not own, the macro element it originates from;
// the reference is needed so refinement-generated children can still evaluate
// the exact curved geometry.
type Elem struct {
	Id    int           // number of this element within the mesh
	Np    int           // number of nodes along each edge
	Nodes []*Node       // [np*np] node references (nodes owned by the mesh)
	Macro dom.MacroElem // originating macro element (set by the refineable extension)
	Slo   []float64     // [2] lower corner of the covered patch of the macro element
	Shi   []float64     // [2] upper corner of the covered patch
}

// newElem returns a new element with an unpopulated node grid covering the
// whole patch of its macro element
func newElem(id, np int) (o *Elem) {
	o = new(Elem)
	o.Id = id
	o.Np = np
	o.Nodes = make([]*Node, np*np)
	o.Slo = []float64{-1, -1}
	o.Shi = []float64{1, 1}
	return
}

// EdgeNode returns the local index of the k-th node along the given edge.
// Nodes along S and N run with the first local coordinate, nodes along W and
// E with the second; k ∈ [0, np-1].
func (o *Elem) EdgeNode(side dom.Side, k int) int {
	if k < 0 || k >= o.Np {
		chk.Panic("edge node position must be in [0,%d]. k=%d is invalid", o.Np-1, k)
	}
	switch side {
	case dom.S:
		return k
	case dom.N:
		return o.Np*(o.Np-1) + k
	case dom.W:
		return k * o.Np
	case dom.E:
		return k*o.Np + o.Np - 1
	}
	chk.Panic("side must be one of S, E, N, W. side=%d is invalid", side)
	return -1
}

// EdgeNodes returns the nodes along the given edge, in edge order (or
// reversed if rev is true)
func (o *Elem) EdgeNodes(side dom.Side, rev bool) (nodes []*Node) {
	nodes = make([]*Node, o.Np)
	for k := 0; k < o.Np; k++ {
		kk := k
		if rev {
			kk = o.Np - 1 - k
		}
		nodes[k] = o.Nodes[o.EdgeNode(side, kk)]
	}
	return
}
