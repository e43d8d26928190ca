// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements geometric objects; i.e. parametrised curves and surfaces
// that describe curvilinear and/or time-dependent domain boundaries
package geo

// Object defines parametrised geometric objects. An object maps a parametric
// coordinate ζ to a physical position x. For closed curves, ζ ∈ [0,2π] must
// sweep the curve in anticlockwise direction. Objects are immutable once
// constructed, apart from the recording of time levels; they are referenced,
// never owned, by domains.
type Object interface {
	Ndim() int                                      // dimension of physical space
	Position(zeta, x []float64)                     // x(ζ) at the current time
	PositionAt(t int, zeta, x []float64)            // x(ζ) at discrete time level t (0: current; t>0: previous)
	PositionTime(time float64, zeta, x []float64)   // x(ζ) at continuous time value
}
