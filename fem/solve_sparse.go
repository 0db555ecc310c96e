// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/la"

// SpSolver solves the reduced system with a sparse factorisation (umfpack),
// the recommended strategy for realistic mesh sizes. It implements the same
// interface as DenseSolver, so the two are swappable.
type SpSolver struct {
	name string // linear solver name; e.g. "umfpack"
}

// register solver. "sparse" is an alias for the default sparse strategy
func init() {
	solvers["umfpack"] = func() Solver { return &SpSolver{"umfpack"} }
	solvers["sparse"] = solvers["umfpack"]
}

// Solve computes du from the sparse factorisation of Kff and freact = Kxf*du
func (o *SpSolver) Solve(K [][]float64, free, fixed []int, fknown []float64) (du, freact []float64, err error) {

	// global-to-local map for the free set
	nf := len(free)
	glob2free := make(map[int]int, nf)
	for i, I := range free {
		glob2free[I] = i
	}

	// count non-zeros
	nnzFF, nnzXF := 0, 0
	for _, I := range free {
		for _, J := range free {
			if K[I][J] != 0 {
				nnzFF++
			}
		}
	}
	for _, I := range fixed {
		for _, J := range free {
			if K[I][J] != 0 {
				nnzXF++
			}
		}
	}

	// reduced triplets
	var Kff, Kxf la.Triplet
	Kff.Init(nf, nf, nnzFF)
	for i, I := range free {
		for j, J := range free {
			if K[I][J] != 0 {
				Kff.Put(i, j, K[I][J])
			}
		}
	}
	Kxf.Init(len(fixed), nf, nnzXF)
	for i, I := range fixed {
		for _, J := range free {
			if K[I][J] != 0 {
				Kxf.Put(i, glob2free[J], K[I][J])
			}
		}
	}

	// factorise and solve
	lis := la.GetSolver(o.name)
	defer lis.Free()
	err = lis.InitR(&Kff, false, false, false)
	if err != nil {
		return nil, nil, &SingularSystemError{err.Error()}
	}
	err = lis.Fact()
	if err != nil {
		return nil, nil, &SingularSystemError{err.Error()}
	}
	du = make([]float64, nf)
	err = lis.SolveR(du, fknown, false)
	if err != nil {
		return nil, nil, &SingularSystemError{err.Error()}
	}

	// unknown (reaction) forces
	freact = make([]float64, len(fixed))
	la.SpMatVecMulAdd(freact, 1, Kxf.ToMatrix(nil), du)
	return
}
