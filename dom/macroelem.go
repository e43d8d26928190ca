// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"github.com/cpmech/gosl/chk"
)

// fdStep is the forward-difference step used when assembling map Jacobians
const fdStep = 1e-8

// fdStep2 is the central-difference step used for second-derivative Jacobians
const fdStep2 = 1e-4

// MacroElem defines the local-to-global coordinate map of one sub-region of a
// domain. The map takes a vector s of local coordinates (components in
// [-1,1]) to the global (Eulerian) position x; the time-dependent versions
// give x(t,s) where t is a discrete time level (0: current; t>0: previous) or
// a continuous time value. Macro elements establish the domain shape via the
// owning Domain's Boundary function; they are stateless beyond their number
// and domain back-reference.
type MacroElem interface {
	Num() int       // number of this macro element within its domain
	Domain() Domain // owning domain (back-reference; not owned)

	Map(s, x []float64)                     // x(s) at the current time
	MapAt(t int, s, x []float64)            // x(t,s) at discrete time level t
	MapTime(time float64, s, x []float64)   // x(t,s) at continuous time value
	Jacobian(t int, s []float64, jac [][]float64)   // jac[i][j] = ∂x[i]/∂s[j]
	Jacobian2(t int, s []float64, jac2 [][]float64) // second derivatives of the map
}

// BaseElem implements the deliberately-unimplemented defaults of MacroElem.
// Concrete macro elements embed BaseElem and must override the operations
// they support; calling an operation that was not overridden is a programming
// error and fails immediately.
type BaseElem struct {
	Dmn Domain // owning domain
	Idx int    // number of this macro element within the domain
}

// Num returns the number of this macro element within its domain
func (o *BaseElem) Num() int {
	return o.Idx
}

// Domain returns the owning domain
func (o *BaseElem) Domain() Domain {
	return o.Dmn
}

// MapTime is unimplemented on the base macro element
func (o *BaseElem) MapTime(time float64, s, x []float64) {
	chk.Panic("MapTime (continuous time) is not implemented for this macro element")
}

// Jacobian is unimplemented on the base macro element
func (o *BaseElem) Jacobian(t int, s []float64, jac [][]float64) {
	chk.Panic("Jacobian is not implemented for this macro element")
}

// Jacobian2 is unimplemented on the base macro element
func (o *BaseElem) Jacobian2(t int, s []float64, jac2 [][]float64) {
	chk.Panic("Jacobian2 is not implemented for this macro element")
}
