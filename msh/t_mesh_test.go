// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gomesh/dom"
	"github.com/cpmech/gomesh/geo"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
	Verbose = true
}

// twoBox is a domain with two unit boxes side by side: element 0 spans
// [0,1]², element 1 spans [1+gap,2+gap] × [0,1]. The topology declares the
// E edge of 0 and the W edge of 1 as matched; with gap != 0 that declaration
// is a lie, which the mesh builder must detect
type twoBox struct {
	gap   float64
	elems []dom.MacroElem
	top   *dom.Topology
}

func newTwoBox(gap float64) (o *twoBox) {
	o = &twoBox{gap: gap}
	o.elems = []dom.MacroElem{dom.NewQuad2d(o, 0), dom.NewQuad2d(o, 1)}
	o.top = &dom.Topology{
		Nelems:  2,
		Matches: []dom.EdgeMatch{{A: 0, B: 1, Ea: dom.E, Eb: dom.W}},
		Nbrys:   1,
		Walks: [][]dom.WalkSeg{
			{{E: 0, Edge: dom.S}, {E: 1, Edge: dom.S}},
		},
	}
	return
}

func (o *twoBox) Ndim() int { return 2 }

func (o *twoBox) NMacroElems() int { return 2 }

func (o *twoBox) MacroElem(e int) dom.MacroElem { return o.elems[e] }

func (o *twoBox) Topology() *dom.Topology { return o.top }

func (o *twoBox) Boundary(t, e int, side dom.Side, zeta, x []float64) {
	x0 := float64(e) * (1.0 + o.gap)
	h := 0.5 * (zeta[0] + 1.0)
	switch side {
	case dom.S:
		x[0], x[1] = x0+h, 0
	case dom.E:
		x[0], x[1] = x0+1, h
	case dom.N:
		x[0], x[1] = x0+h, 1
	case dom.W:
		x[0], x[1] = x0, h
	}
}

func (o *twoBox) BoundaryTime(time float64, e int, side dom.Side, zeta, x []float64) {
	o.Boundary(0, e, side, zeta, x)
}

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. two boxes: stitching and node count")

	d := newTwoBox(0)
	np := 3
	m, err := NewMesh(d, np)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(m.Elems), 2)
	chk.IntAssert(len(m.Nodes), 2*np*np-np)

	// shared-edge nodes are the same instances in both elements
	na := m.Elems[0].EdgeNodes(dom.E, false)
	nb := m.Elems[1].EdgeNodes(dom.W, false)
	for k := 0; k < np; k++ {
		if na[k] != nb[k] {
			tst.Errorf("test failed: edge nodes %d are distinct instances\n", k)
			return
		}
	}

	// bottom boundary: np + np - 1 distinct nodes (shared corner once)
	chk.IntAssert(len(m.Brys), 1)
	chk.IntAssert(len(m.Brys[0]), 2*np-1)

	// node ids follow the surviving buffer order
	for i, nd := range m.Nodes {
		chk.IntAssert(nd.Id, i)
	}
}

func Test_mesh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh02. rectangle with hole: end-to-end scenario")

	hole := geo.NewCircle(0, 0, 1.0)
	d := dom.NewRectHole(hole, 4.0)
	np := 5
	m, err := NewMesh(d, np)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// 4 elements; 4·np² minus np per stitched edge
	chk.IntAssert(len(m.Elems), 4)
	chk.IntAssert(len(m.Nodes), 4*np*np-4*np)

	// 5 boundary sets: four walls with np nodes, hole with 4·(np-1)
	chk.IntAssert(len(m.Brys), 5)
	for b := 0; b < 4; b++ {
		chk.IntAssert(len(m.Brys[b]), np)
	}
	chk.IntAssert(len(m.Brys[dom.RectHoleHole]), 4*(np-1))

	// every hole node sits on the circle
	for _, nd := range m.Brys[dom.RectHoleHole] {
		r := math.Sqrt(nd.C[0]*nd.C[0] + nd.C[1]*nd.C[1])
		chk.Float64(tst, io.Sf("radius of node %d", nd.Id), 1e-14, r, 1.0)
	}

	// shared-edge nodes are single instances with consistent orientation
	for _, mm := range d.Topology().Matches {
		na := m.Elems[mm.A].EdgeNodes(mm.Ea, mm.Rev)
		nb := m.Elems[mm.B].EdgeNodes(mm.Eb, false)
		for k := 0; k < np; k++ {
			if na[k] != nb[k] {
				tst.Errorf("test failed: matched nodes %d of elements %d and %d are distinct instances\n", k, mm.A, mm.B)
				return
			}
		}
	}

	// the lower-left corner belongs to both the bottom and the left wall,
	// once in each set
	ll := m.Elems[3].Nodes[0]
	chk.Array(tst, "LL position", 1e-15, ll.C, []float64{-2, -2})
	if !ll.OnBry(dom.RectHoleBottom) || !ll.OnBry(dom.RectHoleLeft) {
		tst.Errorf("test failed: corner node is not tagged with both boundaries\n")
		return
	}
	count := 0
	for _, nd := range m.Brys[dom.RectHoleBottom] {
		if nd == ll {
			count++
		}
	}
	chk.IntAssert(count, 1)

	// mesh limits
	chk.Float64(tst, "xmin", 1e-15, m.Xmin, -2)
	chk.Float64(tst, "xmax", 1e-15, m.Xmax, 2)
	chk.Float64(tst, "ymin", 1e-15, m.Ymin, -2)
	chk.Float64(tst, "ymax", 1e-15, m.Ymax, 2)
}

func Test_mesh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh03. malformed inputs are reported as errors")

	// too few nodes along the edge
	d := newTwoBox(0)
	_, err := NewMesh(d, 1)
	if err == nil {
		tst.Errorf("test failed: error should have happened\n")
		return
	}

	// topology declaring a match between edges that do not coincide
	d = newTwoBox(0.5)
	_, err = NewMesh(d, 3)
	if err == nil {
		tst.Errorf("test failed: error should have happened\n")
		return
	}
}

func Test_mesh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh04. node locator")

	hole := geo.NewCircle(0, 0, 1.0)
	d := dom.NewRectHole(hole, 4.0)
	m, err := NewMesh(d, 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	m.InitBins()
	nd := m.FindNode([]float64{-2, -2})
	if nd == nil {
		tst.Errorf("test failed: corner node was not found\n")
		return
	}
	chk.Array(tst, "found node", 1e-15, nd.C, []float64{-2, -2})

	// positions away from any node yield no match
	if nd := m.FindNode([]float64{-1.9, -1.9}); nd != nil {
		tst.Errorf("test failed: no node should exist at (-1.9,-1.9); got %d\n", nd.Id)
		return
	}
}

func Test_mesh05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh05. position update with history")

	d := newTwoBox(0)
	m, err := NewMesh(d, 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	m.UpdatePositions(true)
	for _, nd := range m.Nodes {
		chk.IntAssert(len(nd.Hist), 1)
		chk.Array(tst, io.Sf("hist of node %d", nd.Id), 1e-15, nd.Hist[0], nd.C)
	}
}
