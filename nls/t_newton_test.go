// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nls

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_newton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton01. linear system with FD Jacobian")

	// 2x + y = 4, x + 3y = 7  =>  x = 1, y = 2
	rfcn := func(prms, u, res []float64) {
		res[0] = 2.0*u[0] + u[1] - 4.0
		res[1] = u[0] + 3.0*u[1] - 7.0
	}
	u := []float64{-3, 10}
	cfg := NewConfig()
	it, err := Solve(cfg, rfcn, nil, nil, u)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("it = %d\n", it)
	if it > 3 {
		tst.Errorf("test failed: linear system should converge in very few iterations. it=%d\n", it)
		return
	}
	chk.Array(tst, "u", 1e-7, u, []float64{1, 2})
}

func Test_newton02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton02. nonlinear system with analytic Jacobian")

	// x² + y² = 2, x = y  =>  x = y = 1 (from a positive guess)
	rfcn := func(prms, u, res []float64) {
		res[0] = u[0]*u[0] + u[1]*u[1] - 2.0
		res[1] = u[0] - u[1]
	}
	jfcn := func(prms, u []float64, jac [][]float64) {
		jac[0][0], jac[0][1] = 2.0*u[0], 2.0*u[1]
		jac[1][0], jac[1][1] = 1.0, -1.0
	}
	u := []float64{2, 3}
	cfg := NewConfig()
	it, err := Solve(cfg, rfcn, jfcn, nil, u)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("it = %d\n", it)
	chk.Array(tst, "u", 1e-7, u, []float64{1, 1})
}

func Test_newton03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton03. line search damps an overshooting start")

	// atan has a long flat tail; from far away the raw Newton step
	// overshoots wildly and the damped iteration must still come home
	rfcn := func(prms, u, res []float64) {
		res[0] = math.Atan(u[0])
	}
	u := []float64{3}
	cfg := NewConfig()
	cfg.MaxIt = 40
	cfg.LnSearch = true
	it, err := Solve(cfg, rfcn, nil, nil, u)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("it = %d\n", it)
	chk.Float64(tst, "u", 1e-7, u[0], 0)
}

func Test_newton04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton04. parameters reach the residual callback")

	// m·x - c = 0 with (m,c) from prms
	rfcn := func(prms, u, res []float64) {
		res[0] = prms[0]*u[0] - prms[1]
	}
	u := []float64{0}
	cfg := NewConfig()
	_, err := Solve(cfg, rfcn, nil, []float64{2, 5}, u)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "u", 1e-7, u[0], 2.5)
}

func Test_newton05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton05. non-convergence is an error carrying the cap")

	rfcn := func(prms, u, res []float64) {
		res[0] = math.Exp(u[0]) + 1.0 // no root
	}
	u := []float64{0}
	cfg := NewConfig()
	cfg.MaxIt = 5
	_, err := Solve(cfg, rfcn, nil, nil, u)
	if err == nil {
		tst.Errorf("test failed: error should have happened\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_newton06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton06. vanishing slope in line search is an error")

	// residuals scaled so far down that ‖R‖² underflows to zero; the line
	// search then sees a non-negative slope and must report it
	rfcn := func(prms, u, res []float64) {
		res[0] = 1e-200 * (u[0] - 2.0)
	}
	u := []float64{5}
	cfg := NewConfig()
	cfg.Tol = 1e-210
	cfg.LnSearch = true
	_, err := Solve(cfg, rfcn, nil, nil, u)
	if err == nil {
		tst.Errorf("test failed: error should have happened\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_newton07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton07. singular Jacobian is an error")

	rfcn := func(prms, u, res []float64) {
		res[0] = u[0] + u[1] - 1.0
		res[1] = 2.0*u[0] + 2.0*u[1] - 2.0
	}
	u := []float64{5, 5}
	cfg := NewConfig()
	_, err := Solve(cfg, rfcn, nil, nil, u)
	if err == nil {
		tst.Errorf("test failed: error should have happened\n")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_newton08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newton08. empty system must panic")

	cfg := NewConfig()
	rfcn := func(prms, u, res []float64) {}
	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("test failed: panic should have happened\n")
		}
	}()
	Solve(cfg, rfcn, nil, nil, []float64{})
}
