// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// LinElast implements isotropic linear elasticity (Hooke's law) for
// plane-stress or plane-strain conditions
type LinElast struct {
	E       float64 // Young's modulus
	ν       float64 // Poisson's coefficient
	Pstress bool    // plane stress
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Init initialises model. Parameters are not validated: non-physical values of
// E or ν produce a numerically defined but non-physical D matrix
func (o *LinElast) Init(pstress bool, prms fun.Params) (err error) {
	o.Pstress = pstress
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o LinElast) GetPrms() fun.Params {
	return []*fun.P{
		&fun.P{N: "E", V: 2.0000e+11},
		&fun.P{N: "nu", V: 2.8000e-01},
	}
}

// CalcD computes the 3x3 elasticity matrix:
//
//	plane stress:  D = E/(1-ν²) * [[1, ν, 0], [ν, 1, 0], [0, 0, (1-ν)/2]]
//	plane strain:  D = E/((1+ν)(1-2ν)) * [[1-ν, ν, 0], [ν, 1-ν, 0], [0, 0, (1-2ν)/2]]
func (o LinElast) CalcD(D [][]float64) (err error) {
	la.MatFill(D, 0)
	if o.Pstress {
		c := o.E / (1.0 - o.ν*o.ν)
		D[0][0] = c
		D[0][1] = c * o.ν
		D[1][0] = c * o.ν
		D[1][1] = c
		D[2][2] = c * (1.0 - o.ν) / 2.0
		return
	}
	c := o.E / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	D[0][0] = c * (1.0 - o.ν)
	D[0][1] = c * o.ν
	D[1][0] = c * o.ν
	D[1][1] = c * (1.0 - o.ν)
	D[2][2] = c * (1.0 - 2.0*o.ν) / 2.0
	return
}
