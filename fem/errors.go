// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// DegenerateElementError indicates cells whose vertices are collinear or
// coincident; their area was clamped to ele.AreaEps and their stiffness
// contribution is therefore meaningless
type DegenerateElementError struct {
	Cells []int // ids of degenerate cells
}

func (o *DegenerateElementError) Error() string {
	return io.Sf("mesh has %d degenerate (zero-area) cells: %v", len(o.Cells), o.Cells)
}

// SingularSystemError indicates that the reduced stiffness matrix could not be
// factorised/inverted; e.g. the structure is insufficiently constrained and has
// rigid-body modes
type SingularSystemError struct {
	Reason string
}

func (o *SingularSystemError) Error() string {
	return io.Sf("reduced stiffness matrix is singular (under-constrained structure?): %s", o.Reason)
}

// InvalidBoundaryConditionError indicates an equation with an inconsistent
// boundary condition: both displacement and force prescribed, neither
// prescribed (in strict mode), or a nonzero prescribed displacement
type InvalidBoundaryConditionError struct {
	Eq     int    // equation number
	Reason string
}

func (o *InvalidBoundaryConditionError) Error() string {
	return io.Sf("invalid boundary condition at equation %d: %s", o.Eq, o.Reason)
}
