// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/gomesh/dom"
	"github.com/cpmech/gomesh/geo"
	"github.com/cpmech/gomesh/msh"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// input parameters
	length := io.ArgToFloat(0, 4.0)
	radius := io.ArgToFloat(1, 1.0)
	np := io.ArgToInt(2, 5)
	nref := io.ArgToInt(3, 0)
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nGomesh -- macro-element meshes for curved domains\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"side length of the square", "length", length,
			"radius of the hole", "radius", radius,
			"nodes along element edges", "np", np,
			"number of uniform refinements", "nref", nref,
			"show messages", "verbose", verbose,
		))
	}
	msh.Verbose = verbose

	// mesh
	hole := geo.NewCircle(0, 0, radius)
	d := dom.NewRectHole(hole, length)
	m, err := msh.NewMesh(d, np)
	if err != nil {
		chk.Panic("mesh construction failed:\n%v", err)
	}

	// refinement
	plt.Reset(false, nil)
	if nref > 0 {
		r := msh.NewRefineable(m)
		for i := 0; i < nref; i++ {
			err = r.RefineUniform()
			if err != nil {
				chk.Panic("refinement failed:\n%v", err)
			}
		}
		m.DrawActive(r.ActiveElems())
	} else {
		m.Draw(false)
	}
	m.DrawBry(dom.RectHoleHole, nil)
	plt.Save("/tmp/gomesh", "mesh")

	// results
	if verbose {
		io.Pf("elements = %d\n", len(m.Elems))
		io.Pf("nodes    = %d\n", len(m.Nodes))
		io.Pf("figure saved to /tmp/gomesh/mesh.png\n")
	}
}
