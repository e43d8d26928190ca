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

func Test_refine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine01. adjacency works without any refinement")

	hole := geo.NewCircle(0, 0, 1.0)
	d := dom.NewRectHole(hole, 4.0)
	m, err := NewMesh(d, 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := NewRefineable(m)

	// one leaf per macro element
	chk.IntAssert(len(r.ActiveElems()), 4)
	chk.IntAssert(len(r.Forest.Leaves()), 4)

	// neighbour queries across macro elements resolve on the unrefined
	// forest: element 0 (left block) touches 1 (top) across N and 3 (bottom)
	// across S; its W edge is the left wall
	root0 := r.Forest.Roots[0]
	if nb := r.LeafNeighbour(root0, dom.N); nb != r.Forest.Roots[1] {
		tst.Errorf("test failed: N neighbour of macro element 0 should be the tree of 1\n")
		return
	}
	if nb := r.LeafNeighbour(root0, dom.S); nb != r.Forest.Roots[3] {
		tst.Errorf("test failed: S neighbour of macro element 0 should be the tree of 3\n")
		return
	}
	if nb := r.LeafNeighbour(root0, dom.W); nb != nil {
		tst.Errorf("test failed: W edge of macro element 0 is a wall; neighbour must be nil\n")
		return
	}
}

func Test_refine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine02. uniform refinement reuses shared nodes")

	hole := geo.NewCircle(0, 0, 1.0)
	d := dom.NewRectHole(hole, 4.0)
	np := 3
	m, err := NewMesh(d, np)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(m.Nodes), 4*np*np-4*np)

	r := NewRefineable(m)
	err = r.RefineUniform()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// 4 sons per macro element
	chk.IntAssert(len(r.ActiveElems()), 16)

	// the union of the son grids matches the grid of an unrefined mesh with
	// 2·np-1 nodes per edge; no duplicate may survive on shared edges
	npf := 2*np - 1
	chk.IntAssert(len(m.Nodes), 4*npf*npf-4*npf)

	// refinement-created hole nodes sit exactly on the circle
	chk.IntAssert(len(m.Brys[dom.RectHoleHole]), 4*(npf-1))
	for _, nd := range m.Brys[dom.RectHoleHole] {
		rr := math.Sqrt(nd.C[0]*nd.C[0] + nd.C[1]*nd.C[1])
		chk.Float64(tst, io.Sf("radius of node %d", nd.Id), 1e-14, rr, 1.0)
	}

	// active elements reference only live nodes
	for _, el := range r.ActiveElems() {
		for _, nd := range el.Nodes {
			if nd == nil || nd.Id < 0 || nd.Id >= len(m.Nodes) {
				tst.Errorf("test failed: active element %d references an invalid node\n", el.Id)
				return
			}
		}
	}
}

func Test_refine03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine03. neighbour queries after non-uniform refinement")

	hole := geo.NewCircle(0, 0, 1.0)
	d := dom.NewRectHole(hole, 4.0)
	m, err := NewMesh(d, 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := NewRefineable(m)

	// refine only macro element 0 (left block)
	root0 := r.Forest.Roots[0]
	err = r.Refine(root0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(r.ActiveElems()), 7)

	// sibling neighbours within the refined tree
	sw, se := root0.Sons[SW], root0.Sons[SE]
	if nb := r.LeafNeighbour(sw, dom.E); nb != se {
		tst.Errorf("test failed: E neighbour of the SW son should be the SE son\n")
		return
	}
	chk.IntAssert(sw.Level(), 1)
	chk.IntAssert(sw.Quadrant(), SW)

	// the unrefined macro element 3 sees a finer neighbour across its W edge:
	// the query returns the deepest node covering the whole edge, the root of
	// tree 0, which is no longer a leaf
	root3 := r.Forest.Roots[3]
	nb := r.LeafNeighbour(root3, dom.W)
	if nb != root0 {
		tst.Errorf("test failed: W neighbour of macro element 3 should be the root of tree 0\n")
		return
	}
	if nb.IsLeaf() {
		tst.Errorf("test failed: the W neighbour must be refined (hanging nodes on the shared edge)\n")
		return
	}

	// a son's neighbour across the macro edge resolves into the coarser tree:
	// macro elements 0 and 3 share 0's S edge with 3's W edge (not reversed)
	if nb := r.LeafNeighbour(sw, dom.S); nb != r.Forest.Roots[3] {
		tst.Errorf("test failed: S neighbour of the SW son should be the unrefined tree of 3\n")
		return
	}

	// refining a non-leaf is an error
	err = r.Refine(root0)
	if err == nil {
		tst.Errorf("test failed: error should have happened\n")
		return
	}
}

func Test_refine04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine04. two levels of refinement keep the circle exact")

	hole := geo.NewCircle(0, 0, 1.0)
	d := dom.NewRectHole(hole, 3.0)
	m, err := NewMesh(d, 2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := NewRefineable(m)
	err = r.RefineUniform()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = r.RefineUniform()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(r.ActiveElems()), 64)

	// every hole-boundary node, including those created two levels deep, is
	// positioned by the macro map and therefore sits exactly on the circle
	for _, nd := range m.Brys[dom.RectHoleHole] {
		rr := math.Sqrt(nd.C[0]*nd.C[0] + nd.C[1]*nd.C[1])
		chk.Float64(tst, io.Sf("radius of node %d", nd.Id), 1e-14, rr, 1.0)
	}
}

func Test_refine05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine05. position update respects refinement patches")

	hole := geo.NewCircle(0, 0, 1.0)
	d := dom.NewRectHole(hole, 4.0)
	m, err := NewMesh(d, 3)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r := NewRefineable(m)
	err = r.RefineUniform()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// with static geometry, recomputing positions must reproduce the mesh:
	// son elements remap their own sub-patch, not the whole macro element
	old := make([][]float64, len(m.Nodes))
	for i, nd := range m.Nodes {
		old[i] = []float64{nd.C[0], nd.C[1]}
	}
	m.UpdatePositions(false)
	for i, nd := range m.Nodes {
		chk.Array(tst, io.Sf("node %d", nd.Id), 1e-14, nd.C, old[i])
	}

	// hole nodes stay on the circle
	for _, nd := range m.Brys[dom.RectHoleHole] {
		rr := math.Sqrt(nd.C[0]*nd.C[0] + nd.C[1]*nd.C[1])
		chk.Float64(tst, io.Sf("radius of node %d", nd.Id), 1e-14, rr, 1.0)
	}
}
