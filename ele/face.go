// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gomesh/dom"
	"github.com/cpmech/gomesh/msh"
)

// Face is the geometry of one edge of a 2D finite element. Its nodes run
// anticlockwise along the element boundary, so the outer unit normal points
// away from the element interior. Positions, tangents and the metric are
// interpolated with the 1D Lagrange basis over the edge's node grid, which
// follows curved edges to the same order as the element itself.
type Face struct {
	Side  dom.Side    // which edge of the element
	Nodes []*msh.Node // nodes along the edge, anticlockwise
	sgrid []float64   // local coordinates of the nodes in [-1,1]
}

// NewFace builds the geometry of edge side of element e
func NewFace(e *msh.Elem, side dom.Side) (o *Face) {
	o = new(Face)
	o.Side = side

	// anticlockwise traversal: N and W run against the grid ordering
	rev := side == dom.N || side == dom.W
	o.Nodes = e.EdgeNodes(side, rev)
	o.sgrid = utl.LinSpace(-1, 1, len(o.Nodes))
	return
}

// X computes the physical position at local coordinate s ∈ [-1,1]
func (o *Face) X(s float64, x []float64) {
	if len(x) != 2 {
		chk.Panic("size of position vector must be 2. %d is invalid", len(x))
	}
	x[0], x[1] = 0, 0
	for k, nd := range o.Nodes {
		l := o.lagrange(k, s)
		x[0] += l * nd.C[0]
		x[1] += l * nd.C[1]
	}
}

// Tangent computes the (non-unit) tangent vector dX/ds at s
func (o *Face) Tangent(s float64, t []float64) {
	if len(t) != 2 {
		chk.Panic("size of tangent vector must be 2. %d is invalid", len(t))
	}
	t[0], t[1] = 0, 0
	for k, nd := range o.Nodes {
		d := o.lagrangeD(k, s)
		t[0] += d * nd.C[0]
		t[1] += d * nd.C[1]
	}
}

// Metric computes the 1D metric determinant |dX/ds| at s; the length scale
// relating local and physical arc elements
func (o *Face) Metric(s float64) float64 {
	t := make([]float64, 2)
	o.Tangent(s, t)
	return math.Sqrt(t[0]*t[0] + t[1]*t[1])
}

// Normal computes the outer unit normal at s and returns the metric
// determinant there
func (o *Face) Normal(s float64, n []float64) (det float64) {
	if len(n) != 2 {
		chk.Panic("size of normal vector must be 2. %d is invalid", len(n))
	}
	t := make([]float64, 2)
	o.Tangent(s, t)
	det = math.Sqrt(t[0]*t[0] + t[1]*t[1])
	if det < 1e-14 {
		chk.Panic("edge tangent is degenerate at s=%g", s)
	}
	n[0] = t[1] / det
	n[1] = -t[0] / det
	return
}

// lagrange evaluates the k-th 1D Lagrange shape function at s
func (o *Face) lagrange(k int, s float64) (l float64) {
	l = 1
	for j, sj := range o.sgrid {
		if j == k {
			continue
		}
		l *= (s - sj) / (o.sgrid[k] - sj)
	}
	return
}

// lagrangeD evaluates the derivative of the k-th 1D Lagrange shape function
// at s
func (o *Face) lagrangeD(k int, s float64) (d float64) {
	for i, si := range o.sgrid {
		if i == k {
			continue
		}
		term := 1.0 / (o.sgrid[k] - si)
		for j, sj := range o.sgrid {
			if j == k || j == i {
				continue
			}
			term *= (s - sj) / (o.sgrid[k] - sj)
		}
		d += term
	}
	return
}
