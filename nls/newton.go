// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nls implements a black-box damped Newton solver for small dense
// systems of nonlinear equations. The Jacobian may be supplied analytically
// or computed by finite differences, and the update may be globalised with a
// backtracking line search.
package nls

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// ResidFcn computes the residuals of the system: res = R(u), with prms
// holding problem parameters
type ResidFcn func(prms, u, res []float64)

// JacoFcn computes the Jacobian jac[i][j] = ∂R[i]/∂u[j]
type JacoFcn func(prms, u []float64, jac [][]float64)

// Config holds the solver parameters. Each call to Solve takes its own
// Config, so concurrent solves with different settings do not interfere.
type Config struct {
	MaxIt    int     // maximum number of Newton iterations
	Tol      float64 // tolerance on the maximum absolute residual
	FdStep   float64 // step for the finite-difference Jacobian
	LnSearch bool    // globalise the update with a backtracking line search
	Verbose  bool    // show convergence progress
}

// NewConfig returns a Config with default parameters
func NewConfig() *Config {
	return &Config{
		MaxIt:  20,
		Tol:    1e-8,
		FdStep: 1e-8,
	}
}

// Solve finds u such that R(u) = 0, starting from the given u and updating
// it in place. If jfcn is nil, the Jacobian is computed by finite
// differences of rfcn. Returns the number of iterations taken. Convergence
// failure, a singular Jacobian and line-search breakdown are reported as
// errors, with u left at the last iterate.
func Solve(cfg *Config, rfcn ResidFcn, jfcn JacoFcn, prms, u []float64) (it int, err error) {
	if cfg == nil {
		chk.Panic("configuration must be provided")
	}
	if rfcn == nil {
		chk.Panic("residual function must be provided")
	}
	n := len(u)
	if n < 1 {
		chk.Panic("system must have at least one unknown. n=%d is invalid", n)
	}
	res := make([]float64, n)
	jac := utl.Alloc(n, n)
	dir := make([]float64, n)
	for it = 0; it < cfg.MaxIt; it++ {

		// check convergence
		rfcn(prms, u, res)
		maxRes := 0.0
		for i := 0; i < n; i++ {
			maxRes = math.Max(maxRes, math.Abs(res[i]))
		}
		if cfg.Verbose {
			io.Pf("it=%2d  max(|R|)=%13.7e\n", it, maxRes)
		}
		if maxRes < cfg.Tol {
			return
		}

		// Jacobian and Newton direction: jac * dir = res, update is u -= dir
		if jfcn != nil {
			jfcn(prms, u, jac)
		} else {
			fdJacobian(cfg, rfcn, prms, u, res, jac)
		}
		err = denseSolve(jac, res, dir)
		if err != nil {
			return
		}

		// update
		if cfg.LnSearch {
			err = lineSearch(rfcn, prms, u, res, jac, dir)
			if err != nil {
				return
			}
		} else {
			for i := 0; i < n; i++ {
				u[i] -= dir[i]
			}
		}
	}
	err = chk.Err("solver did not converge after %d iterations", cfg.MaxIt)
	return
}

// fdJacobian computes the Jacobian by forward finite differences; res must
// hold the residuals at u already
func fdJacobian(cfg *Config, rfcn ResidFcn, prms, u, res []float64, jac [][]float64) {
	n := len(u)
	tmp := make([]float64, n)
	for j := 0; j < n; j++ {
		uj := u[j]
		u[j] += cfg.FdStep
		rfcn(prms, u, tmp)
		for i := 0; i < n; i++ {
			jac[i][j] = (tmp[i] - res[i]) / cfg.FdStep
		}
		u[j] = uj
	}
}

// denseSolve solves jac * x = b with a dense LU factorisation
func denseSolve(jac [][]float64, b, x []float64) (err error) {
	n := len(b)
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.SetRow(i, jac[i])
	}
	var lu mat.LU
	lu.Factorize(a)
	xv := mat.NewVecDense(n, x)
	err = lu.SolveVecTo(xv, false, mat.NewVecDense(n, b))
	if err != nil {
		return chk.Err("Jacobian is singular or badly conditioned: %v", err)
	}
	return
}

// line-search parameters
const (
	lnsAlpha   = 1e-4  // sufficient-decrease parameter
	lnsTolX    = 1e-16 // tolerance on the relative step size
	lnsMaxFact = 100   // factor on the maximum step length
)

// lineSearch damps the Newton update u -= dir with backtracking so that the
// squared residual norm decreases sufficiently. res and jac must hold the
// residuals and Jacobian at u. When the step underflows, u keeps the last
// tried iterate and a warning is printed instead of failing the solve.
func lineSearch(rfcn ResidFcn, prms, u, res []float64, jac [][]float64, dir []float64) (err error) {
	n := len(u)

	// f = half of the squared residual norm; the merit function
	fOld := 0.0
	for i := 0; i < n; i++ {
		fOld += 0.5 * res[i] * res[i]
	}

	// search direction p = -dir; its slope must be a descent direction
	p := make([]float64, n)
	slope := 0.0
	for i := 0; i < n; i++ {
		p[i] = -dir[i]
		g := 0.0
		for j := 0; j < n; j++ {
			g += jac[j][i] * res[j]
		}
		slope += g * p[i]
	}
	if slope >= 0 {
		return chk.Err("roundoff problem in line search: slope=%g is not negative", slope)
	}

	// cap overly long steps
	stpmax := lnsMaxFact * math.Max(la.Vector(u).Norm(), float64(n))
	if pnorm := la.Vector(p).Norm(); pnorm > stpmax {
		for i := 0; i < n; i++ {
			p[i] *= stpmax / pnorm
		}
	}

	// smallest meaningful step factor
	test := 0.0
	for i := 0; i < n; i++ {
		test = math.Max(test, math.Abs(p[i])/math.Max(math.Abs(u[i]), 1))
	}
	λmin := lnsTolX / test

	uOld := make([]float64, n)
	copy(uOld, u)
	tmp := make([]float64, n)
	λ, λ2, f2 := 1.0, 0.0, 0.0
	for {

		// try step
		for i := 0; i < n; i++ {
			u[i] = uOld[i] + λ*p[i]
		}
		rfcn(prms, u, tmp)
		fNew := 0.0
		for i := 0; i < n; i++ {
			fNew += 0.5 * tmp[i] * tmp[i]
		}

		// step underflow: accept whatever we have, with a warning
		if λ < λmin {
			io.Pfyel("warning: line search step fell below minimum (λ=%g < %g); continuing with the last iterate\n", λ, λmin)
			return
		}

		// sufficient decrease
		if fNew <= fOld+lnsAlpha*λ*slope {
			return
		}

		// backtrack: quadratic model first, cubic afterwards
		var λtmp float64
		if λ == 1 {
			λtmp = -slope / (2 * (fNew - fOld - slope))
		} else {
			rhs1 := fNew - fOld - λ*slope
			rhs2 := f2 - fOld - λ2*slope
			a := (rhs1/(λ*λ) - rhs2/(λ2*λ2)) / (λ - λ2)
			b := (-λ2*rhs1/(λ*λ) + λ*rhs2/(λ2*λ2)) / (λ - λ2)
			if a == 0 {
				λtmp = -slope / (2 * b)
			} else {
				disc := b*b - 3*a*slope
				switch {
				case disc < 0:
					λtmp = 0.5 * λ
				case b <= 0:
					λtmp = (-b + math.Sqrt(disc)) / (3 * a)
				default:
					λtmp = -slope / (b + math.Sqrt(disc))
				}
			}
			λtmp = math.Min(λtmp, 0.5*λ)
		}
		λ2, f2 = λ, fNew
		λ = math.Max(λtmp, 0.1*λ)
	}
}
