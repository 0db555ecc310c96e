// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/chk"

// Solver solves the partitioned linear system: given the global stiffness
// matrix and the free/fixed equation sets, it computes the unknown
// displacements at free equations and the unknown reactions at fixed ones:
//
//	d_free  = K_free_free⁻¹ * f_known
//	r_fixed = K_fixed_free * d_free
//
// The K_free_fixed cross term vanishes because prescribed displacements are
// zero (see Bcs.FixU).
type Solver interface {
	Solve(K [][]float64, free, fixed []int, fknown []float64) (du, freact []float64, err error)
}

// NewSolver returns a solver by name; e.g. "dense", "umfpack"
func NewSolver(name string) (s Solver, err error) {
	allocator, ok := solvers[name]
	if !ok {
		return nil, chk.Err("cannot find solver named %q", name)
	}
	return allocator(), nil
}

// solvers holds all available solvers
var solvers = map[string]func() Solver{}
