// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for 2D solids
package solid

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for 2D solid constitutive models relating the
// 3-component strain vector {εxx, εyy, γxy} to the stress vector {σxx, σyy, σxy}
type Model interface {
	Init(pstress bool, prms fun.Params) error // initialises model
	CalcD(D [][]float64) error              // computes the 3x3 elasticity matrix
	GetPrms() fun.Params                      // gets (an example of) parameters
}

// New returns a new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
