// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gomesh/geo"
)

// boundary indices of RectHole
const (
	RectHoleBottom = iota // bottom wall
	RectHoleRight         // right wall
	RectHoleTop           // top wall
	RectHoleLeft          // left wall
	RectHoleHole          // hole (circle) boundary
)

// bryEval evaluates one boundary curve of one macro element, at discrete time
// levels and at continuous time values
type bryEval struct {
	at func(t int, zeta, x []float64)
	tm func(time float64, zeta, x []float64)
}

// RectHole is a square domain of side length L, centred at the origin, with a
// circular hole described by a referenced geometric object. The object must
// be parametrised such that ζ ∈ [0,2π] sweeps the circumference
// anticlockwise. Four quadrilateral macro elements surround the hole:
//
//                     1 (top)
//              UL ___________ UR
//                |\    1    /|
//                | \ _____ / |
//                |  /     \  |
//       3 (left) |0|       |2| 1 (right)
//                |  \_____ /  |
//                | /   3   \ |
//                |/_________\|
//              LL             LR
//                  0 (bottom)
//
// The macro element count, boundary evaluators and topology are all fixed
// here, at construction time.
type RectHole struct {
	Hole geo.Object // geometric object describing the hole (referenced, not owned)
	L    float64    // side length of the square

	elems []MacroElem // the four macro elements
	bry   [][]bryEval // [4][4] (element, side) → boundary evaluator
	top   *Topology   // fixed connectivity
}

// NewRectHole returns a new rectangle-with-hole domain. hole is the geometric
// object describing the hole boundary and length the side of the square.
func NewRectHole(hole geo.Object, length float64) (o *RectHole) {
	if hole.Ndim() != 2 {
		chk.Panic("rectangle-with-hole domain requires a 2D geometric object. ndim=%d is invalid", hole.Ndim())
	}
	if length <= 0 {
		chk.Panic("side length must be positive. length=%g is invalid", length)
	}
	o = new(RectHole)
	o.Hole = hole
	o.L = length

	// macro elements: 0=left, 1=top, 2=right, 3=bottom
	o.elems = make([]MacroElem, 4)
	for e := 0; e < 4; e++ {
		o.elems[e] = NewQuad2d(o, e)
	}

	// corners of the square
	half := 0.5 * length
	ll := []float64{-half, -half}
	lr := []float64{half, -half}
	ul := []float64{-half, half}
	ur := []float64{half, half}

	// parametric coordinates where the hole faces the square corners
	zll := 5.0 * math.Pi / 4.0
	zlr := 7.0 * math.Pi / 4.0
	zul := 3.0 * math.Pi / 4.0
	zur := math.Pi / 4.0

	// boundary evaluator table
	o.bry = [][]bryEval{
		{ // element 0: left block
			o.joint(ll, zll),     // S: lower-left corner to hole
			o.arc(zll, zul),      // E: left quarter of the hole
			o.joint(ul, zul),     // N: upper-left corner to hole
			o.straight(ll, ul),   // W: left wall
		},
		{ // element 1: top block
			o.arc(zul, zur),      // S: top quarter of the hole (reversed param)
			o.jointRev(zur, ur),  // E: hole to upper-right corner
			o.straight(ul, ur),   // N: top wall
			o.jointRev(zul, ul),  // W: hole to upper-left corner
		},
		{ // element 2: right block
			o.jointRev(zlr, lr),  // S: hole to lower-right corner
			o.straight(lr, ur),   // E: right wall
			o.jointRev(zur, ur),  // N: hole to upper-right corner
			o.arc(zlr, zur+2.0*math.Pi), // W: right quarter of the hole
		},
		{ // element 3: bottom block
			o.straight(ll, lr),   // S: bottom wall
			o.joint(lr, zlr),     // E: lower-right corner to hole
			o.arc(zll, zlr),      // N: bottom quarter of the hole
			o.joint(ll, zll),     // W: lower-left corner to hole
		},
	}

	// topology: shared edges and boundary walks
	o.top = &Topology{
		Nelems: 4,
		Matches: []EdgeMatch{
			{A: 0, B: 1, Ea: N, Eb: W, Rev: true},
			{A: 0, B: 3, Ea: S, Eb: W, Rev: false},
			{A: 1, B: 2, Ea: E, Eb: N, Rev: false},
			{A: 3, B: 2, Ea: E, Eb: S, Rev: true},
		},
		Nbrys: 5,
		Walks: [][]WalkSeg{
			{{E: 3, Edge: S}},             // bottom
			{{E: 2, Edge: E}},             // right
			{{E: 1, Edge: N}},             // top
			{{E: 0, Edge: W}},             // left
			{ // hole, traced anticlockwise
				{E: 3, Edge: N},
				{E: 2, Edge: W},
				{E: 1, Edge: S, Rev: true},
				{E: 0, Edge: E, Rev: true},
			},
		},
	}
	return
}

// Ndim returns the dimension of physical space
func (o *RectHole) Ndim() int {
	return 2
}

// NMacroElems returns the number of macro elements
func (o *RectHole) NMacroElems() int {
	return 4
}

// MacroElem returns the e-th macro element
func (o *RectHole) MacroElem(e int) MacroElem {
	return o.elems[e]
}

// Boundary computes the position x of boundary 'side' of macro element e at
// boundary coordinate zeta and discrete time level t
func (o *RectHole) Boundary(t, e int, side Side, zeta, x []float64) {
	o.eval(e, side).at(t, zeta, x)
}

// BoundaryTime is like Boundary but at a continuous time value
func (o *RectHole) BoundaryTime(time float64, e int, side Side, zeta, x []float64) {
	o.eval(e, side).tm(time, zeta, x)
}

// Topology returns the fixed connectivity data
func (o *RectHole) Topology() *Topology {
	return o.top
}

// eval looks up the boundary evaluator of (e, side)
func (o *RectHole) eval(e int, side Side) bryEval {
	if e < 0 || e > 3 {
		chk.Panic("macro element number must be in [0,3]. e=%d is invalid", e)
	}
	if side < S || side > W {
		chk.Panic("side must be one of S, E, N, W. side=%d is invalid", side)
	}
	return o.bry[e][side]
}

// straight returns the evaluator of a straight, time-independent edge from a
// (zeta=-1) to b (zeta=+1)
func (o *RectHole) straight(a, b []float64) bryEval {
	f := func(zeta, x []float64) {
		for i := 0; i < 2; i++ {
			x[i] = a[i] + (b[i]-a[i])*0.5*(zeta[0]+1.0)
		}
	}
	return bryEval{
		at: func(t int, zeta, x []float64) { f(zeta, x) },
		tm: func(time float64, zeta, x []float64) { f(zeta, x) },
	}
}

// joint returns the evaluator of the straight edge from corner a (zeta=-1) to
// the hole point at parametric coordinate zc (zeta=+1). The hole end is
// re-evaluated per call, so the edge follows a moving hole.
func (o *RectHole) joint(a []float64, zc float64) bryEval {
	blendTo := func(p []float64, zeta, x []float64) {
		for i := 0; i < 2; i++ {
			x[i] = a[i] + (p[i]-a[i])*0.5*(zeta[0]+1.0)
		}
	}
	return bryEval{
		at: func(t int, zeta, x []float64) {
			p := make([]float64, 2)
			o.Hole.PositionAt(t, []float64{zc}, p)
			blendTo(p, zeta, x)
		},
		tm: func(time float64, zeta, x []float64) {
			p := make([]float64, 2)
			o.Hole.PositionTime(time, []float64{zc}, p)
			blendTo(p, zeta, x)
		},
	}
}

// jointRev returns the evaluator of the straight edge from the hole point at
// parametric coordinate zc (zeta=-1) to corner b (zeta=+1)
func (o *RectHole) jointRev(zc float64, b []float64) bryEval {
	blendFrom := func(p []float64, zeta, x []float64) {
		for i := 0; i < 2; i++ {
			x[i] = p[i] + (b[i]-p[i])*0.5*(zeta[0]+1.0)
		}
	}
	return bryEval{
		at: func(t int, zeta, x []float64) {
			p := make([]float64, 2)
			o.Hole.PositionAt(t, []float64{zc}, p)
			blendFrom(p, zeta, x)
		},
		tm: func(time float64, zeta, x []float64) {
			p := make([]float64, 2)
			o.Hole.PositionTime(time, []float64{zc}, p)
			blendFrom(p, zeta, x)
		},
	}
}

// arc returns the evaluator of the hole arc from parametric coordinate z0
// (zeta=-1) to z1 (zeta=+1)
func (o *RectHole) arc(z0, z1 float64) bryEval {
	zc := func(zeta []float64) []float64 {
		return []float64{z0 + (z1-z0)*0.5*(zeta[0]+1.0)}
	}
	return bryEval{
		at: func(t int, zeta, x []float64) {
			o.Hole.PositionAt(t, zc(zeta), x)
		},
		tm: func(time float64, zeta, x []float64) {
			o.Hole.PositionTime(time, zc(zeta), x)
		},
	}
}
