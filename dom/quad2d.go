// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Quad2d is a macro element with quadrilateral shape in 2D. Its map blends
// the four boundary curves f_S, f_E, f_N, f_W supplied by the owning domain
// via transfinite interpolation: each boundary curve is reproduced exactly on
// its edge, and the interior is interpolated smoothly. The boundary curves
// must be consistent at the corners: e.g. f_S(+1) must coincide with f_E(-1).
type Quad2d struct {
	BaseElem
}

// NewQuad2d returns a new 2D quadrilateral macro element belonging to domain
// d, with number num within that domain
func NewQuad2d(d Domain, num int) (o *Quad2d) {
	o = new(Quad2d)
	o.Dmn = d
	o.Idx = num
	return
}

// Map computes x(s) at the current time
func (o *Quad2d) Map(s, x []float64) {
	o.MapAt(0, s, x)
}

// MapAt computes x(t,s) at discrete time level t (0: current; t>0: previous)
func (o *Quad2d) MapAt(t int, s, x []float64) {
	o.blend(func(side Side, zeta, f []float64) {
		o.Dmn.Boundary(t, o.Idx, side, zeta, f)
	}, s, x)
}

// MapTime computes x(t,s) at continuous time value
func (o *Quad2d) MapTime(time float64, s, x []float64) {
	o.blend(func(side Side, zeta, f []float64) {
		o.Dmn.BoundaryTime(time, o.Idx, side, zeta, f)
	}, s, x)
}

// Jacobian computes jac[i][j] = ∂x[i]/∂s[j] of the map at discrete time
// level t, by forward differencing of the map
func (o *Quad2d) Jacobian(t int, s []float64, jac [][]float64) {
	if len(jac) != 2 {
		chk.Panic("Jacobian of 2D macro element needs a 2x2 matrix. %d rows are invalid", len(jac))
	}
	x0 := make([]float64, 2)
	xp := make([]float64, 2)
	ss := make([]float64, 2)
	o.MapAt(t, s, x0)
	for j := 0; j < 2; j++ {
		copy(ss, s)
		ss[j] += fdStep
		o.MapAt(t, ss, xp)
		for i := 0; i < 2; i++ {
			jac[i][j] = (xp[i] - x0[i]) / fdStep
		}
	}
}

// Jacobian2 computes the second derivatives of the map at discrete time level
// t, by central differencing. Row k of jac2 holds ∂²x/∂s0² (k=0), ∂²x/∂s1²
// (k=1) and ∂²x/∂s0∂s1 (k=2); columns are the space components.
func (o *Quad2d) Jacobian2(t int, s []float64, jac2 [][]float64) {
	if len(jac2) != 3 {
		chk.Panic("Jacobian2 of 2D macro element needs a 3x2 matrix. %d rows are invalid", len(jac2))
	}
	h := fdStep2
	x0 := make([]float64, 2)
	xa := make([]float64, 2)
	xb := make([]float64, 2)
	xc := make([]float64, 2)
	xd := make([]float64, 2)
	ss := make([]float64, 2)
	o.MapAt(t, s, x0)

	// pure second derivatives
	for j := 0; j < 2; j++ {
		copy(ss, s)
		ss[j] = s[j] + h
		o.MapAt(t, ss, xa)
		ss[j] = s[j] - h
		o.MapAt(t, ss, xb)
		for i := 0; i < 2; i++ {
			jac2[j][i] = (xa[i] - 2.0*x0[i] + xb[i]) / (h * h)
		}
	}

	// mixed derivative
	ss[0], ss[1] = s[0]+h, s[1]+h
	o.MapAt(t, ss, xa)
	ss[0], ss[1] = s[0]+h, s[1]-h
	o.MapAt(t, ss, xb)
	ss[0], ss[1] = s[0]-h, s[1]+h
	o.MapAt(t, ss, xc)
	ss[0], ss[1] = s[0]-h, s[1]-h
	o.MapAt(t, ss, xd)
	for i := 0; i < 2; i++ {
		jac2[2][i] = (xa[i] - xb[i] - xc[i] + xd[i]) / (4.0 * h * h)
	}
}

// Contour samples the map on an npts × npts grid; useful for plotting
func (o *Quad2d) Contour(t, npts int) (X, Y [][]float64) {
	X = make([][]float64, npts)
	Y = make([][]float64, npts)
	c := utl.LinSpace(-1, 1, npts)
	s := make([]float64, 2)
	x := make([]float64, 2)
	for i := 0; i < npts; i++ {
		X[i] = make([]float64, npts)
		Y[i] = make([]float64, npts)
		s[1] = c[i]
		for j := 0; j < npts; j++ {
			s[0] = c[j]
			o.MapAt(t, s, x)
			X[i][j] = x[0]
			Y[i][j] = x[1]
		}
	}
	return
}

// blend performs the transfinite interpolation given an evaluator of the four
// boundary curves. The formula interpolates the interior of the bilinear
// quadrilateral spanned by the four corners and adds the deviation of each
// curved boundary from its straight chord, weighted to vanish on the opposite
// edge.
func (o *Quad2d) blend(bry func(side Side, zeta, f []float64), s, x []float64) {
	if len(s) != 2 || len(x) != 2 {
		chk.Panic("map of 2D macro element requires len(s)=2 and len(x)=2. %d and %d are invalid", len(s), len(x))
	}

	// boundary curves at the local coordinates
	bS := make([]float64, 2)
	bE := make([]float64, 2)
	bN := make([]float64, 2)
	bW := make([]float64, 2)
	zeta := []float64{0}
	zeta[0] = s[0]
	bry(S, zeta, bS)
	bry(N, zeta, bN)
	zeta[0] = s[1]
	bry(W, zeta, bW)
	bry(E, zeta, bE)

	// corners, from the south and north curves
	cSW := make([]float64, 2)
	cSE := make([]float64, 2)
	cNW := make([]float64, 2)
	cNE := make([]float64, 2)
	zeta[0] = -1
	bry(S, zeta, cSW)
	bry(N, zeta, cNW)
	zeta[0] = 1
	bry(S, zeta, cSE)
	bry(N, zeta, cNE)

	// blending
	for i := 0; i < 2; i++ {

		// position on the straight chords of the south and north edges
		eS := cSW[i] + (cSE[i]-cSW[i])*0.5*(s[0]+1.0)
		eN := cNW[i] + (cNE[i]-cNW[i])*0.5*(s[0]+1.0)

		// position within the bilinear quadrilateral
		rect := eS + (eN-eS)*0.5*(s[1]+1.0)

		// deviations of the curved boundaries from the straight chords
		dS := bS[i] - eS
		dN := bN[i] - eN
		dW := bW[i] - (cSW[i] + (cNW[i]-cSW[i])*0.5*(s[1]+1.0))
		dE := bE[i] - (cSE[i] + (cNE[i]-cSE[i])*0.5*(s[1]+1.0))

		x[i] = rect +
			dS*0.5*(1.0-s[1]) + dN*0.5*(1.0+s[1]) +
			dW*0.5*(1.0-s[0]) + dE*0.5*(1.0+s[0])
	}
}
