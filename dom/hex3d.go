// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"github.com/cpmech/gosl/chk"
)

// Hex3d is a macro element with hexahedral shape in 3D. Its map blends the
// six boundary surfaces supplied by the owning domain via the Boolean-sum
// transfinite interpolation: face blending, minus the doubly-counted edge
// contributions, plus the triply-counted corner contributions. Each boundary
// surface is reproduced exactly on its face. The faces are parametrised by
// 2D local coordinates: L/R by (s1,s2), D/U by (s0,s2), B/F by (s0,s1); the
// surfaces must agree along shared edges and corners.
//
// Only the discrete-time map is provided; the continuous-time map and the
// Jacobians fall through to the unimplemented base defaults.
type Hex3d struct {
	BaseElem
}

// NewHex3d returns a new 3D hexahedral macro element belonging to domain d,
// with number num within that domain
func NewHex3d(d Domain, num int) (o *Hex3d) {
	o = new(Hex3d)
	o.Dmn = d
	o.Idx = num
	return
}

// Map computes x(s) at the current time
func (o *Hex3d) Map(s, x []float64) {
	o.MapAt(0, s, x)
}

// MapAt computes x(t,s) at discrete time level t (0: current; t>0: previous)
func (o *Hex3d) MapAt(t int, s, x []float64) {
	if len(s) != 3 || len(x) != 3 {
		chk.Panic("map of 3D macro element requires len(s)=3 and len(x)=3. %d and %d are invalid", len(s), len(x))
	}

	// face evaluator: fc(side, u, v) with the face's own 2D parametrisation
	f := make([]float64, 3)
	zeta := make([]float64, 2)
	fc := func(side Side, u, v float64) []float64 {
		zeta[0], zeta[1] = u, v
		o.Dmn.Boundary(t, o.Idx, side, zeta, f)
		return f
	}

	// face of constant s0 = a (a = ±1): L or R
	face0 := func(a float64) Side {
		if a < 0 {
			return L
		}
		return R
	}

	// face of constant s1 = b: D or U
	face1 := func(b float64) Side {
		if b < 0 {
			return D
		}
		return U
	}

	signs := []float64{-1, 1}
	for i := 0; i < 3; i++ {
		x[i] = 0
	}

	// face blending
	for _, a := range signs {
		w := 0.5 * (1.0 + a*s[0])
		v := fc(face0(a), s[1], s[2])
		for i := 0; i < 3; i++ {
			x[i] += w * v[i]
		}
	}
	for _, b := range signs {
		w := 0.5 * (1.0 + b*s[1])
		v := fc(face1(b), s[0], s[2])
		for i := 0; i < 3; i++ {
			x[i] += w * v[i]
		}
	}
	for _, c := range signs {
		w := 0.5 * (1.0 + c*s[2])
		side := B
		if c > 0 {
			side = F
		}
		v := fc(side, s[0], s[1])
		for i := 0; i < 3; i++ {
			x[i] += w * v[i]
		}
	}

	// edge corrections: edges along s2 (constant s0,s1), along s1 (constant
	// s0,s2) and along s0 (constant s1,s2); each edge curve is read from one
	// canonical adjacent face
	for _, a := range signs {
		for _, b := range signs {
			w := 0.25 * (1.0 + a*s[0]) * (1.0 + b*s[1])
			v := fc(face0(a), b, s[2])
			for i := 0; i < 3; i++ {
				x[i] -= w * v[i]
			}
		}
	}
	for _, a := range signs {
		for _, c := range signs {
			w := 0.25 * (1.0 + a*s[0]) * (1.0 + c*s[2])
			v := fc(face0(a), s[1], c)
			for i := 0; i < 3; i++ {
				x[i] -= w * v[i]
			}
		}
	}
	for _, b := range signs {
		for _, c := range signs {
			w := 0.25 * (1.0 + b*s[1]) * (1.0 + c*s[2])
			v := fc(face1(b), s[0], c)
			for i := 0; i < 3; i++ {
				x[i] -= w * v[i]
			}
		}
	}

	// corner corrections
	for _, a := range signs {
		for _, b := range signs {
			for _, c := range signs {
				w := 0.125 * (1.0 + a*s[0]) * (1.0 + b*s[1]) * (1.0 + c*s[2])
				v := fc(face0(a), b, c)
				for i := 0; i < 3; i++ {
					x[i] += w * v[i]
				}
			}
		}
	}
}
