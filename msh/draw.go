// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/gomesh/dom"
)

// Draw plots the mesh: element edges as lines and, if withIds is true, node
// ids at node positions. Call plt.Save afterwards to save the figure.
func (o *Mesh) Draw(withIds bool) {
	argsEdge := &plt.A{C: "b", Lw: 0.7, NoClip: true}
	for _, el := range o.Elems {
		o.drawEdges(el, argsEdge)
	}
	if withIds {
		argsTxt := &plt.A{Ha: "center", Fsz: 7, NoClip: true}
		for _, nd := range o.Nodes {
			plt.Text(nd.C[0], nd.C[1], io.Sf("%d", nd.Id), argsTxt)
		}
	}
	plt.Gll("$x$", "$y$", nil)
}

// DrawActive plots only the given elements; e.g. the active elements of a
// refined mesh
func (o *Mesh) DrawActive(elems []*Elem) {
	argsEdge := &plt.A{C: "b", Lw: 0.7, NoClip: true}
	for _, el := range elems {
		o.drawEdges(el, argsEdge)
	}
	plt.Gll("$x$", "$y$", nil)
}

// DrawBry highlights the nodes of boundary b
func (o *Mesh) DrawBry(b int, args *plt.A) {
	if args == nil {
		args = &plt.A{C: "r", M: "o", Ls: "none", Ms: 4, NoClip: true}
	}
	nn := o.Brys[b]
	xx := make([]float64, len(nn))
	yy := make([]float64, len(nn))
	for i, nd := range nn {
		xx[i], yy[i] = nd.C[0], nd.C[1]
	}
	plt.Plot(xx, yy, args)
}

// drawEdges plots the four edges of one element, following the nodes so that
// curved edges show their actual polyline
func (o *Mesh) drawEdges(el *Elem, args *plt.A) {
	for _, edge := range []dom.Side{dom.S, dom.E, dom.N, dom.W} {
		nn := el.EdgeNodes(edge, false)
		xx := make([]float64, len(nn))
		yy := make([]float64, len(nn))
		for i, nd := range nn {
			xx[i], yy[i] = nd.C[0], nd.C[1]
		}
		plt.Plot(xx, yy, args)
	}
}
