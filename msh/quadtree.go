// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomesh/dom"
)

// quadrants of a refined tree node, in son-slice order
const (
	SW = iota // south-west: s0 low, s1 low
	SE        // south-east: s0 high, s1 low
	NW        // north-west: s0 low, s1 high
	NE        // north-east: s0 high, s1 high
)

// TNode is one node of a refinement quadtree. Each TNode covers a rectangular
// patch of its macro element's local coordinates, from Slo to Shi; the root
// covers [-1,1] × [-1,1]. A TNode is either a leaf carrying a finite element
// or an interior node with exactly four sons.
type TNode struct {
	Elem   *Elem     // finite element, if leaf; nil otherwise
	Parent *TNode    // parent node; nil for roots
	Sons   []*TNode  // [4] sons in SW,SE,NW,NE order; nil for leaves
	Slo    []float64 // [2] lower corner in macro local coordinates
	Shi    []float64 // [2] upper corner in macro local coordinates
	Root   int       // macro element index of this node's tree
}

// IsLeaf tells whether this tree node carries an element
func (o *TNode) IsLeaf() bool { return o.Sons == nil }

// Level returns the refinement level: 0 for roots
func (o *TNode) Level() (l int) {
	for p := o.Parent; p != nil; p = p.Parent {
		l++
	}
	return
}

// Quadrant returns the quadrant this node occupies in its parent,
// or -1 for roots
func (o *TNode) Quadrant() int {
	if o.Parent == nil {
		return -1
	}
	for q, son := range o.Parent.Sons {
		if son == o {
			return q
		}
	}
	chk.Panic("tree node is not registered as a son of its parent")
	return -1
}

// Forest holds one refinement quadtree per macro element
type Forest struct {
	Roots []*TNode // [nMacroElems] tree roots
}

// newForest creates one root per macro element, each carrying the base
// element of that macro element
func newForest(top *dom.Topology, elems []*Elem) (o *Forest) {
	o = new(Forest)
	o.Roots = make([]*TNode, top.Nelems)
	for e := 0; e < top.Nelems; e++ {
		o.Roots[e] = &TNode{
			Elem: elems[e],
			Slo:  []float64{-1, -1},
			Shi:  []float64{1, 1},
			Root: e,
		}
	}
	return
}

// Leaves collects all leaves of all trees, in root order then depth-first
// SW,SE,NW,NE order within each tree
func (o *Forest) Leaves() (res []*TNode) {
	var walk func(tn *TNode)
	walk = func(tn *TNode) {
		if tn.IsLeaf() {
			res = append(res, tn)
			return
		}
		for _, son := range tn.Sons {
			walk(son)
		}
	}
	for _, root := range o.Roots {
		walk(root)
	}
	return
}

// span returns the local-coordinate interval of this node's edge along the
// direction the edge runs: s0 for south/north edges, s1 for west/east edges
func (o *TNode) span(edge dom.Side) (lo, hi float64) {
	switch edge {
	case dom.S, dom.N:
		return o.Slo[0], o.Shi[0]
	case dom.W, dom.E:
		return o.Slo[1], o.Shi[1]
	}
	chk.Panic("edge must be S, E, N or W. edge=%v is invalid", edge)
	return
}
