// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verification
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// CteStressPstress implements the homogeneous plane-stress state of a
// rectangular plate under constant normal tractions qh (along x) and qv
// (along y), with ux = 0 at x=0 and uy = 0 at y=0:
//
//	σxx = qh,  σyy = qv,  σxy = 0
//	ux  = (qh - ν*qv)/E * x
//	uy  = (qv - ν*qh)/E * y
type CteStressPstress struct {

	// input
	E  float64 // Young's modulus
	ν  float64 // Poisson's coefficient
	qh float64 // horizontal traction
	qv float64 // vertical traction
}

// Init initialises this structure
func (o *CteStressPstress) Init(prms fun.Params) {
	o.E = 1e5
	o.ν = 0.3
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "qh":
			o.qh = p.V
		case "qv":
			o.qv = p.V
		}
	}
}

// Displ computes displacements @ (x,y)
func (o CteStressPstress) Displ(x, y float64) (ux, uy float64) {
	ux = (o.qh - o.ν*o.qv) / o.E * x
	uy = (o.qv - o.ν*o.qh) / o.E * y
	return
}

// Stress returns the (constant) stress vector {σxx, σyy, σxy}
func (o CteStressPstress) Stress() []float64 {
	return []float64{o.qh, o.qv, 0}
}

// CheckDispl compares the numerical displacement pair u @ coordinates x
// against the analytical solution
func (o CteStressPstress) CheckDispl(tst *testing.T, u, x []float64, tol float64) {
	ux, uy := o.Displ(x[0], x[1])
	chk.Vector(tst, "u", tol, u, []float64{ux, uy})
}

// CheckStress compares a numerical stress vector against the analytical one
func (o CteStressPstress) CheckStress(tst *testing.T, σ []float64, tol float64) {
	chk.Vector(tst, "σ", tol, σ, o.Stress())
}
