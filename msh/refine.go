// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gomesh/dom"
)

// edgeAdj records the macro element facing one edge of another macro element
type edgeAdj struct {
	other int      // neighbouring macro element
	edge  dom.Side // which edge of the neighbour faces this one
	rev   bool     // true if the edge parametrisations run in opposite senses
	ok    bool     // false if the edge lies on a domain boundary
}

// Refineable wraps a mesh with a quadtree per macro element so that elements
// can be refined adaptively. Refinement splits a leaf element into four sons
// positioned by the macro map, so curved boundaries stay exact at every
// level. Nodes shared between sons, or with previously created elements, are
// reused rather than duplicated; nodes on finer edges facing a coarser
// neighbour are hanging nodes and can be found with LeafNeighbour.
type Refineable struct {
	Msh    *Mesh            // the mesh being refined
	Forest *Forest          // one quadtree per macro element
	adj    [][]edgeAdj      // [nelems][4] edge → neighbouring macro element
	bry    [][]int          // [nelems][4] edge → boundary index or -1
	reg    map[string]*Node // position key → node, for node reuse
	bins   gm.Bins          // tolerance-based node lookup backing the registry
}

// NewRefineable builds the refinement structure for a mesh. The mesh must be
// freshly built or not refined through another Refineable.
func NewRefineable(m *Mesh) (o *Refineable) {
	top := m.Dom.Topology()
	o = new(Refineable)
	o.Msh = m
	o.Forest = newForest(top, m.Elems)

	// macro-edge adjacency and boundary tags
	o.adj = make([][]edgeAdj, top.Nelems)
	o.bry = make([][]int, top.Nelems)
	for e := 0; e < top.Nelems; e++ {
		o.adj[e] = make([]edgeAdj, 4)
		o.bry[e] = []int{-1, -1, -1, -1}
	}
	for _, mm := range top.Matches {
		o.adj[mm.A][mm.Ea] = edgeAdj{mm.B, mm.Eb, mm.Rev, true}
		o.adj[mm.B][mm.Eb] = edgeAdj{mm.A, mm.Ea, mm.Rev, true}
	}
	for b, walk := range top.Walks {
		for _, seg := range walk {
			o.bry[seg.E][seg.Edge] = b
		}
	}

	// seed the node registry with the base mesh. The registry answers "is
	// there already a node at x": exact position keys first, then a binned
	// proximity search catching positions that differ by roundoff when two
	// macro maps evaluate the same shared-edge point
	o.reg = make(map[string]*Node)
	δ := TolC * 2
	o.bins.Init([]float64{m.Xmin - δ, m.Ymin - δ}, []float64{m.Xmax + δ, m.Ymax + δ}, []int{Ndiv, Ndiv})
	for _, nd := range m.Nodes {
		o.reg[posKey(nd.C)] = nd
		o.bins.Append(nd.C, nd.Id, nil)
	}
	return
}

// findNode looks up a node at position x, within tolerance
func (o *Refineable) findNode(x []float64) *Node {
	if nd, ok := o.reg[posKey(x)]; ok {
		return nd
	}
	id, sqDist := o.bins.FindClosest(x)
	if id < 0 || sqDist > TolC*TolC {
		return nil
	}
	return o.Msh.Nodes[id]
}

// addNode registers a new node at x in the registry
func (o *Refineable) addNode(nd *Node) {
	o.reg[posKey(nd.C)] = nd
	o.bins.Append(nd.C, nd.Id, nil)
}

// Refine splits leaf tn into four son elements. The sons' nodes are
// positioned by the macro map over the four quadrants of tn's patch; nodes
// already present in the mesh at the same position are reused. New nodes on
// a domain boundary are classified like the base mesh's boundary nodes.
func (o *Refineable) Refine(tn *TNode) (err error) {
	if !tn.IsLeaf() {
		return chk.Err("only leaf elements can be refined. element %d was already refined", tn.Elem.Id)
	}
	m := o.Msh
	me := m.Dom.MacroElem(tn.Root)
	np := m.Np
	coords := utl.LinSpace(-1, 1, np)
	mid0 := tn.Slo[0] + 0.5*(tn.Shi[0]-tn.Slo[0])
	mid1 := tn.Slo[1] + 0.5*(tn.Shi[1]-tn.Slo[1])
	patches := [][]float64{ // [4][4] slo0, slo1, shi0, shi1 in SW,SE,NW,NE order
		{tn.Slo[0], tn.Slo[1], mid0, mid1},
		{mid0, tn.Slo[1], tn.Shi[0], mid1},
		{tn.Slo[0], mid1, mid0, tn.Shi[1]},
		{mid0, mid1, tn.Shi[0], tn.Shi[1]},
	}
	s := make([]float64, 2)
	x := make([]float64, m.Ndim)
	tn.Sons = make([]*TNode, 4)
	for q, p := range patches {
		el := newElem(len(m.Elems), np)
		el.Macro = me
		el.Slo = []float64{p[0], p[1]}
		el.Shi = []float64{p[2], p[3]}
		for l1 := 0; l1 < np; l1++ {
			for l2 := 0; l2 < np; l2++ {
				s[0] = lerp(p[0], p[2], coords[l2])
				s[1] = lerp(p[1], p[3], coords[l1])
				me.Map(s, x)
				nd := o.findNode(x)
				if nd == nil {
					nd = NewNode(x)
					nd.Id = len(m.Nodes)
					m.Nodes = append(m.Nodes, nd)
					o.addNode(nd)
				}
				el.Nodes[l1*np+l2] = nd
			}
		}
		m.Elems = append(m.Elems, el)
		son := &TNode{
			Elem:   el,
			Parent: tn,
			Slo:    []float64{p[0], p[1]},
			Shi:    []float64{p[2], p[3]},
			Root:   tn.Root,
		}
		tn.Sons[q] = son

		// tag son edges lying on a domain boundary
		for _, edge := range []dom.Side{dom.S, dom.E, dom.N, dom.W} {
			if !o.onMacroEdge(son, edge) {
				continue
			}
			b := o.bry[tn.Root][edge]
			if b < 0 {
				continue
			}
			for _, nd := range el.EdgeNodes(edge, false) {
				m.addBryNode(b, nd)
			}
		}
	}
	tn.Elem = nil
	if Verbose {
		io.Pf(">> element of macro element %d refined to level %d\n", tn.Root, tn.Level()+1)
	}
	return
}

// RefineUniform refines every current leaf once
func (o *Refineable) RefineUniform() (err error) {
	for _, leaf := range o.Forest.Leaves() {
		err = o.Refine(leaf)
		if err != nil {
			return
		}
	}
	return
}

// ActiveElems returns the elements of all leaves; these are the elements a
// computation over the refined mesh should assemble
func (o *Refineable) ActiveElems() (res []*Elem) {
	for _, leaf := range o.Forest.Leaves() {
		res = append(res, leaf.Elem)
	}
	return
}

// LeafNeighbour returns the deepest tree node facing tn across the given
// edge whose facing edge covers the whole of tn's edge. The result may be:
// a leaf at the same level or coarser (a conforming or coarse neighbour), a
// non-leaf (the neighbour side is finer, so tn's edge carries their hanging
// nodes), or nil when the edge lies on a domain boundary.
func (o *Refineable) LeafNeighbour(tn *TNode, edge dom.Side) *TNode {
	lo, hi := tn.span(edge)
	var dir int       // coordinate perpendicular to the edge
	var c float64     // coordinate value of the edge line
	var below bool    // true if the neighbour lies at smaller dir-coordinate
	var outer float64 // value of c when the edge is a macro-element edge
	switch edge {
	case dom.S:
		dir, c, below, outer = 1, tn.Slo[1], true, -1
	case dom.N:
		dir, c, below, outer = 1, tn.Shi[1], false, 1
	case dom.W:
		dir, c, below, outer = 0, tn.Slo[0], true, -1
	case dom.E:
		dir, c, below, outer = 0, tn.Shi[0], false, 1
	default:
		chk.Panic("edge must be S, E, N or W. edge=%v is invalid", edge)
	}

	// cross into the neighbouring macro element's tree
	if c == outer {
		a := o.adj[tn.Root][edge]
		if !a.ok {
			return nil
		}
		if a.rev {
			lo, hi = -hi, -lo
		}
		switch a.edge {
		case dom.S:
			dir, c, below = 1, -1, false
		case dom.N:
			dir, c, below = 1, 1, true
		case dom.W:
			dir, c, below = 0, -1, false
		case dom.E:
			dir, c, below = 0, 1, true
		}
		return descend(o.Forest.Roots[a.other], dir, c, below, lo, hi)
	}
	return descend(o.Forest.Roots[tn.Root], dir, c, below, lo, hi)
}

// descend walks down from tn towards the region touching the line
// s[dir] = c from below (smaller dir-coordinate) or above, following sons
// whose edge span still covers [lo,hi] along the other coordinate. It stops
// at a leaf or at the deepest node still covering the whole span.
func descend(tn *TNode, dir int, c float64, below bool, lo, hi float64) *TNode {
	t := 1 - dir
	for !tn.IsLeaf() {
		var next *TNode
		for _, son := range tn.Sons {
			if below {
				if !(son.Slo[dir] < c && c <= son.Shi[dir]) {
					continue
				}
			} else {
				if !(son.Slo[dir] <= c && c < son.Shi[dir]) {
					continue
				}
			}
			if son.Slo[t] <= lo && hi <= son.Shi[t] {
				next = son
				break
			}
		}
		if next == nil {
			return tn
		}
		tn = next
	}
	return tn
}

// lerp maps t in [-1,1] onto [lo,hi], with exact endpoints so that nodes on
// shared edges of sibling patches get bit-identical positions
func lerp(lo, hi, t float64) float64 {
	if t == -1 {
		return lo
	}
	if t == 1 {
		return hi
	}
	return lo + 0.5*(t+1)*(hi-lo)
}

// onMacroEdge tells whether son's edge lies on the same edge of the whole
// macro element
func (o *Refineable) onMacroEdge(son *TNode, edge dom.Side) bool {
	switch edge {
	case dom.S:
		return son.Slo[1] == -1
	case dom.N:
		return son.Shi[1] == 1
	case dom.W:
		return son.Slo[0] == -1
	case dom.E:
		return son.Shi[0] == 1
	}
	return false
}

// posKey builds a map key from a position, rounded so that positions equal
// up to floating point noise share the same key
func posKey(x []float64) string {
	a, b := x[0], x[1]
	if a == 0 {
		a = 0 // normalise -0
	}
	if b == 0 {
		b = 0
	}
	return io.Sf("%.12f,%.12f", a, b)
}
