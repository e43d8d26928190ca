// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dom implements domains decomposed into macro elements with
// curvilinear and/or time-dependent boundaries
package dom

// Side labels one boundary of a macro element. 2D macro elements use the
// compass names; 3D macro elements use the left/right/down/up/back/front names.
type Side int

// sides of 2D macro elements
const (
	S Side = iota // south: s1 = -1
	E             // east:  s0 = +1
	N             // north: s1 = +1
	W             // west:  s0 = -1
)

// sides (faces) of 3D macro elements
const (
	L Side = iota // left:  s0 = -1
	R             // right: s0 = +1
	D             // down:  s1 = -1
	U             // up:    s1 = +1
	B             // back:  s2 = -1
	F             // front: s2 = +1
)

// Domain defines physical regions decomposed into macro elements. A domain
// owns its macro elements and knows how to evaluate the boundary of each of
// them as a function of a local boundary coordinate and time; curved
// boundaries are delegated to referenced geometric objects. The macro element
// count and topology are fixed at construction time.
type Domain interface {
	Ndim() int                 // dimension of physical space
	NMacroElems() int          // number of macro elements
	MacroElem(e int) MacroElem // e-th macro element

	// Boundary computes the position x of the boundary 'side' of macro
	// element e, at boundary coordinate zeta (components in [-1,1]) and
	// discrete time level t (0: current; t>0: previous)
	Boundary(t, e int, side Side, zeta, x []float64)

	// BoundaryTime is like Boundary but at a continuous time value
	BoundaryTime(time float64, e int, side Side, zeta, x []float64)

	// Topology returns the fixed inter-macro-element connectivity data
	Topology() *Topology
}

// EdgeMatch describes the node correspondence along one edge shared by two
// macro elements. During mesh construction, element A must be processed
// before element B; the nodes instantiated by B along Eb are then replaced by
// A's nodes along Ea. Rev indicates that the node order along Ea runs
// opposite to the node order along Eb.
type EdgeMatch struct {
	A, B   int  // macro element numbers; A is processed first
	Ea, Eb Side // matched edge on A and on B
	Rev    bool // orientation: edge runs reversed on A w.r.t. B
}

// WalkSeg is one leg of a boundary walk: the ordered traversal of one macro
// element edge while tracing a physical boundary of the domain. Rev walks the
// edge from its last node to its first.
type WalkSeg struct {
	E    int  // macro element number
	Edge Side // edge being walked
	Rev  bool // walk the edge in reverse order
}

// Topology holds the fixed inter-macro-element connectivity of a domain:
// which pairs of macro elements share edges (and with which orientation) and
// how each physical boundary of the domain is traced as an ordered walk over
// macro element edges. This is data supplied by the concrete domain; the mesh
// builder never invents index arithmetic.
type Topology struct {
	Nelems  int         // number of macro elements
	Matches []EdgeMatch // shared-edge correspondences
	Nbrys   int         // number of physical boundaries
	Walks   [][]WalkSeg // [Nbrys] ordered walks tracing each boundary
}
