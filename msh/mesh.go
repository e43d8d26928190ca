// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gomesh/dom"
)

// TolC is the tolerance used to compare x-y coordinates of stitched nodes
const TolC = 1e-8

// Ndiv is the number of divisions used by the node-locating bins
const Ndiv = 20

// Verbose enables messages during mesh construction and refinement
var Verbose = false

// Mesh holds the finite elements and the de-duplicated node set built from a
// macro-element domain: one element per macro element, each with an np × np
// node grid positioned by the macro map, with nodes on shared edges resolved
// to a single instance and boundary nodes classified into boundary-index
// sets. The mesh owns all elements and nodes; boundary sets only reference
// nodes.
type Mesh struct {

	// input
	Dom  dom.Domain // the domain (referenced, not owned)
	Np   int        // number of nodes along each element edge
	Ndim int        // dimension of physical space

	// elements, nodes and boundaries
	Elems []*Elem   // all finite elements
	Nodes []*Node   // all nodes, after de-duplication
	Brys  [][]*Node // [nbrys] boundary index → nodes on that boundary (each node once)

	// limits
	Xmin, Xmax float64 // x limits
	Ymin, Ymax float64 // y limits

	// node-locating bins
	bins   gm.Bins
	binsOk bool
}

// NewMesh builds a mesh over the macro elements of domain d, with np nodes
// along each element edge. Node positions are taken from the macro maps at
// the current time level.
func NewMesh(d dom.Domain, np int) (o *Mesh, err error) {
	if np < 2 {
		err = chk.Err("number of nodes along element edge must be at least 2. np=%d is invalid", np)
		return
	}
	top := d.Topology()
	if top == nil || top.Nelems != d.NMacroElems() {
		err = chk.Err("domain topology is missing or inconsistent with the number of macro elements")
		return
	}
	if len(top.Walks) != top.Nbrys {
		err = chk.Err("domain topology must provide one boundary walk per boundary. %d != %d", len(top.Walks), top.Nbrys)
		return
	}
	o = new(Mesh)
	o.Dom = d
	o.Np = np
	o.Ndim = d.Ndim()

	// instantiate one finite element per macro element and populate its node
	// grid via the macro map; all new nodes go to the temporary buffer
	buf := newArena()
	coords := utl.LinSpace(-1, 1, np)
	s := make([]float64, 2)
	x := make([]float64, o.Ndim)
	for e := 0; e < top.Nelems; e++ {
		el := newElem(e, np)
		me := d.MacroElem(e)
		for l1 := 0; l1 < np; l1++ {
			for l2 := 0; l2 < np; l2++ {
				s[0], s[1] = coords[l2], coords[l1]
				me.Map(s, x)
				nd := NewNode(x)
				el.Nodes[l1*np+l2] = nd
				buf.push(nd)
			}
		}
		o.Elems = append(o.Elems, el)
	}

	// stitch shared edges: re-point the later element's edge nodes at the
	// earlier element's nodes and supersede the duplicate buffer slots
	for _, m := range top.Matches {
		if m.A < 0 || m.A >= top.Nelems || m.B < 0 || m.B >= top.Nelems {
			err = chk.Err("edge match references macro element out of range: %d and %d", m.A, m.B)
			return
		}
		ea, eb := o.Elems[m.A], o.Elems[m.B]
		for k := 0; k < np; k++ {
			ka := k
			if m.Rev {
				ka = np - 1 - k
			}
			keep := ea.Nodes[ea.EdgeNode(m.Ea, ka)]
			lb := eb.EdgeNode(m.Eb, k)
			dup := eb.Nodes[lb]
			if dist(keep.C, dup.C) > TolC {
				err = chk.Err("edge correspondence between macro elements %d and %d is inconsistent: positions %v and %v differ", m.A, m.B, keep.C, dup.C)
				return
			}
			eb.Nodes[lb] = keep
			buf.supersede(dup, keep)
		}
	}

	// the real node list is the scan of the surviving buffer slots
	o.Nodes = buf.collect()

	// no element may still reach a released node
	for _, el := range o.Elems {
		for _, nd := range el.Nodes {
			if buf.released(nd) {
				err = chk.Err("element %d still references a released node", el.Id)
				return
			}
		}
	}

	// classify boundary nodes
	o.Brys = make([][]*Node, top.Nbrys)
	for b, walk := range top.Walks {
		for _, seg := range walk {
			el := o.Elems[seg.E]
			for _, nd := range el.EdgeNodes(seg.Edge, seg.Rev) {
				o.addBryNode(b, nd)
			}
		}
	}

	// limits
	o.limits()

	if Verbose {
		io.Pf(">> mesh with %d elements, %d nodes and %d boundaries built\n", len(o.Elems), len(o.Nodes), top.Nbrys)
	}
	return
}

// addBryNode registers nd under boundary b, once; repeated registrations of
// the same node for the same boundary are no-ops
func (o *Mesh) addBryNode(b int, nd *Node) {
	if nd.OnBry(b) {
		return
	}
	nd.SetBry(b)
	o.Brys[b] = append(o.Brys[b], nd)
}

// UpdatePositions recomputes all node positions from the macro maps at the
// current time level; e.g. after the domain's geometric objects have moved.
// Each element maps its own patch, so refinement-generated elements keep
// covering their sub-patch. If pushHist is true, the old position of each
// node is first pushed onto its history.
func (o *Mesh) UpdatePositions(pushHist bool) {
	if pushHist {
		for _, nd := range o.Nodes {
			nd.PushHist()
		}
	}
	coords := utl.LinSpace(-1, 1, o.Np)
	s := make([]float64, 2)
	x := make([]float64, o.Ndim)
	for _, el := range o.Elems {
		me := el.Macro
		if me == nil {
			me = o.Dom.MacroElem(el.Id)
		}
		for l1 := 0; l1 < o.Np; l1++ {
			for l2 := 0; l2 < o.Np; l2++ {
				s[0] = lerp(el.Slo[0], el.Shi[0], coords[l2])
				s[1] = lerp(el.Slo[1], el.Shi[1], coords[l1])
				me.Map(s, x)
				copy(el.Nodes[l1*o.Np+l2].C, x)
			}
		}
	}
	o.limits()
	o.binsOk = false
}

// InitBins initialises the node-locating bins. Must be called again after
// node positions change.
func (o *Mesh) InitBins() {
	δ := TolC * 2
	xi := []float64{o.Xmin - δ, o.Ymin - δ}
	xf := []float64{o.Xmax + δ, o.Ymax + δ}
	o.bins.Init(xi, xf, []int{Ndiv, Ndiv})
	for _, nd := range o.Nodes {
		o.bins.Append(nd.C, nd.Id, nil)
	}
	o.binsOk = true
}

// FindNode returns the node at position x, or nil if no node lies within TolC
// of x. InitBins must have been called.
func (o *Mesh) FindNode(x []float64) *Node {
	if !o.binsOk {
		chk.Panic("bins have not been initialised; call InitBins first")
	}
	id, sqDist := o.bins.FindClosest(x)
	if id < 0 || math.Sqrt(sqDist) > TolC {
		return nil
	}
	return o.Nodes[id]
}

// limits recomputes the coordinate limits
func (o *Mesh) limits() {
	o.Xmin, o.Ymin = math.MaxFloat64, math.MaxFloat64
	o.Xmax, o.Ymax = -math.MaxFloat64, -math.MaxFloat64
	for _, nd := range o.Nodes {
		o.Xmin = utl.Min(o.Xmin, nd.C[0])
		o.Xmax = utl.Max(o.Xmax, nd.C[0])
		o.Ymin = utl.Min(o.Ymin, nd.C[1])
		o.Ymax = utl.Max(o.Ymax, nd.C[1])
	}
}

// dist computes the Euclidean distance between a and b
func dist(a, b []float64) (d float64) {
	for i := 0; i < len(a); i++ {
		d += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(d)
}
