// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/la"

// DenseSolver solves the reduced system by direct dense inversion of
// K_free_free. No pivoting strategy, no sparsity exploitation: this is the
// naive approach and the dominant cost of the pipeline; prefer the sparse
// solver for meshes beyond a few hundred equations.
type DenseSolver struct{}

// register solver
func init() {
	solvers["dense"] = func() Solver { return new(DenseSolver) }
}

// Solve computes du = inv(Kff)*fknown and freact = Kxf*du
func (o *DenseSolver) Solve(K [][]float64, free, fixed []int, fknown []float64) (du, freact []float64, err error) {

	// reduced matrix: rows/cols restricted to the free set
	nf := len(free)
	Kff := la.MatAlloc(nf, nf)
	for i, I := range free {
		for j, J := range free {
			Kff[i][j] = K[I][J]
		}
	}

	// invert
	Kffi := la.MatAlloc(nf, nf)
	err = la.MatInvG(Kffi, Kff, 1e-13)
	if err != nil {
		return nil, nil, &SingularSystemError{err.Error()}
	}

	// unknown displacements
	du = make([]float64, nf)
	la.MatVecMul(du, 1, Kffi, fknown)

	// unknown (reaction) forces: rows restricted to the fixed set, columns to
	// the free set
	freact = make([]float64, len(fixed))
	for i, I := range fixed {
		for j, J := range free {
			freact[i] += K[I][J] * du[j]
		}
	}
	return
}
