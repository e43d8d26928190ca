// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the construction of globally-consistent finite
// element meshes over macro-element domains, including shared-edge node
// stitching, boundary classification and adaptive (quadtree) refinement
package msh

import (
	"github.com/cpmech/gosl/chk"
)

// Node is a point of the mesh in physical space. Nodes hold the current
// position, an optional history of previous positions (index 0 = one step
// back) and the set of boundary indices the node belongs to. A node is owned
// by the mesh; finite elements and boundary sets only reference it.
type Node struct {
	Id   int         // number of this node within the mesh; -1 until the mesh is finalised
	C    []float64   // current coordinates
	Hist [][]float64 // previous coordinates; Hist[0] = one step back
	brys []int       // boundary indices this node belongs to
}

// NewNode returns a new node at position x. The position is copied.
func NewNode(x []float64) (o *Node) {
	o = new(Node)
	o.Id = -1
	o.C = make([]float64, len(x))
	copy(o.C, x)
	return
}

// PushHist prepends a copy of the current coordinates to the history
func (o *Node) PushHist() {
	c := make([]float64, len(o.C))
	copy(c, o.C)
	o.Hist = append([][]float64{c}, o.Hist...)
}

// SetBry tags this node as belonging to boundary idx. Tagging is idempotent:
// repeated calls with the same index leave the node unchanged.
func (o *Node) SetBry(idx int) {
	if idx < 0 {
		chk.Panic("boundary index must be non-negative. idx=%d is invalid", idx)
	}
	if o.OnBry(idx) {
		return
	}
	o.brys = append(o.brys, idx)
}

// OnBry tells whether this node belongs to boundary idx
func (o *Node) OnBry(idx int) bool {
	for _, b := range o.brys {
		if b == idx {
			return true
		}
	}
	return false
}

// Brys returns the boundary indices this node belongs to
func (o *Node) Brys() []int {
	return o.brys
}
