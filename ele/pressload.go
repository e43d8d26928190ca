// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// PressLoad is a natural boundary condition applying a (possibly
// time-dependent) normal pressure over one face of a bulk element. The
// traction is -p·n with n the face's outer unit normal, so a positive
// pressure pushes into the element.
type PressLoad struct {
	Face *Face // face geometry (referenced, not owned)
	Fcn  dbf.T // pressure magnitude as a function of time
}

// NewPressLoad creates a pressure load over face f
func NewPressLoad(f *Face, fcn dbf.T) *PressLoad {
	return &PressLoad{Face: f, Fcn: fcn}
}

// Traction computes the traction vector at face coordinate s and the given
// time
func (o *PressLoad) Traction(s, time float64, trac []float64) {
	n := make([]float64, 2)
	o.Face.Normal(s, n)
	p := o.Fcn.F(time, nil)
	trac[0] = -p * n[0]
	trac[1] = -p * n[1]
}

// NodalForces integrates the traction against the face's shape functions,
// with the trapezoidal rule over the face node grid, producing the force
// contribution of each face node. f must have one 2-component slot per face
// node. The Bulk's UIndex tells the caller where to scatter each component.
func (o *PressLoad) NodalForces(time float64, f [][]float64) {
	nn := len(o.Face.Nodes)
	h := 2.0 / float64(nn-1)
	trac := make([]float64, 2)
	for k := 0; k < nn; k++ {
		s := o.Face.sgrid[k]
		w := h
		if k == 0 || k == nn-1 {
			w = 0.5 * h
		}
		det := o.Face.Metric(s)
		o.Traction(s, time, trac)
		f[k][0] = w * det * trac[0]
		f[k][1] = w * det * trac[1]
	}
}
