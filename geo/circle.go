// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Circle implements a circle parametrised by ζ ∈ [0,2π], swept anticlockwise.
// The centre may move in time according to two optional motion functions; the
// instantaneous centre is (Xc + xmot(t), Yc + ymot(t)). Discrete time levels
// are served from a recorded history of time values; level 0 is the current
// time, level t>0 the t-th previous recorded time.
type Circle struct {

	// configuration
	Xc, Yc float64 // reference centre coordinates
	R      float64 // radius

	// optional centre motion
	xmot, ymot dbf.T // motion functions; nil means static

	// recorded time levels; times[0] is the current time
	times []float64
}

// NewCircle returns a new static circle with centre (xc,yc) and radius r
func NewCircle(xc, yc, r float64) (o *Circle) {
	if r <= 0 {
		chk.Panic("circle radius must be positive. r=%g is invalid", r)
	}
	o = new(Circle)
	o.Xc, o.Yc, o.R = xc, yc, r
	o.times = []float64{0}
	return
}

// SetMotion sets the centre motion functions. Either function may be nil, in
// which case the corresponding centre coordinate remains fixed.
func (o *Circle) SetMotion(xmot, ymot dbf.T) {
	o.xmot, o.ymot = xmot, ymot
}

// RecordTime records a new current time; the previously current time becomes
// time level 1, and so on
func (o *Circle) RecordTime(time float64) {
	o.times = append([]float64{time}, o.times...)
}

// NumTimeLevels returns the number of recorded time levels
func (o *Circle) NumTimeLevels() int {
	return len(o.times)
}

// Ndim returns the dimension of physical space
func (o *Circle) Ndim() int {
	return 2
}

// Position computes x(ζ) at the current time
func (o *Circle) Position(zeta, x []float64) {
	o.PositionAt(0, zeta, x)
}

// PositionAt computes x(ζ) at discrete time level t (0: current; t>0: previous)
func (o *Circle) PositionAt(t int, zeta, x []float64) {
	if t < 0 || t >= len(o.times) {
		chk.Panic("time level %d is not available in circle with %d recorded levels", t, len(o.times))
	}
	o.PositionTime(o.times[t], zeta, x)
}

// PositionTime computes x(ζ) at continuous time value
func (o *Circle) PositionTime(time float64, zeta, x []float64) {
	if len(zeta) != 1 || len(x) != 2 {
		chk.Panic("circle position requires len(zeta)=1 and len(x)=2. %d and %d are invalid", len(zeta), len(x))
	}
	xc, yc := o.Xc, o.Yc
	if o.xmot != nil {
		xc += o.xmot.F(time, nil)
	}
	if o.ymot != nil {
		yc += o.ymot.F(time, nil)
	}
	x[0] = xc + o.R*math.Cos(zeta[0])
	x[1] = yc + o.R*math.Sin(zeta[0])
}
