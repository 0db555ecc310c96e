// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// kind of boundary condition at one equation
const (
	bcUnset = iota // nothing prescribed yet
	bcFixU         // prescribed (zero) displacement; unknown reaction
	bcForce        // known external force; unknown displacement
)

// Bcs records, per equation of the global system, either a known (zero)
// displacement or a known external force, but never both: before solving,
// exactly one of {force, displacement} must be known at each equation.
// Unset equations may be defaulted to force-free via FillFree.
type Bcs struct {
	kind []int     // [ny] bcUnset, bcFixU or bcForce
	val  []float64 // [ny] external force at bcForce equations
}

// NewBcs returns a new Bcs structure for a system with ny equations
func NewBcs(ny int) (o *Bcs) {
	o = new(Bcs)
	o.kind = make([]int, ny)
	o.val = make([]float64, ny)
	return
}

// FixU prescribes a displacement at an equation. Only zero values are
// supported: with zero Dirichlet values the K_free_fixed cross term vanishes
// and is omitted from the reduced system.
func (o *Bcs) FixU(eq int, value float64) error {
	if value != 0 {
		return &InvalidBoundaryConditionError{eq, "nonzero prescribed displacements are not supported"}
	}
	if o.kind[eq] == bcForce {
		return &InvalidBoundaryConditionError{eq, "both displacement and force prescribed"}
	}
	o.kind[eq] = bcFixU
	o.val[eq] = 0
	return nil
}

// AddF adds a known external force at an equation. Forces are additive: calling
// AddF twice accumulates point loads.
func (o *Bcs) AddF(eq int, value float64) error {
	if o.kind[eq] == bcFixU {
		return &InvalidBoundaryConditionError{eq, "both displacement and force prescribed"}
	}
	o.kind[eq] = bcForce
	o.val[eq] += value
	return nil
}

// FillFree marks all unset equations as force-known with zero external force
// (load-free-to-move), the default condition of interior nodes
func (o *Bcs) FillFree() {
	for i, k := range o.kind {
		if k == bcUnset {
			o.kind[i] = bcForce
		}
	}
}

// Partition splits the equations of the global system into the knownForce set
// (free; unknown displacements) and the knownDisplacement set (fixed; unknown
// reactions), and extracts the known right-hand side restricted to the free
// rows. Unset equations are rejected.
func (o *Bcs) Partition() (free, fixed []int, fknown []float64, err error) {
	for eq, k := range o.kind {
		switch k {
		case bcForce:
			free = append(free, eq)
			fknown = append(fknown, o.val[eq])
		case bcFixU:
			fixed = append(fixed, eq)
		default:
			return nil, nil, nil, &InvalidBoundaryConditionError{eq, "neither displacement nor force prescribed"}
		}
	}
	return
}

// Fext returns the external force at an equation (zero at fixed equations)
func (o *Bcs) Fext(eq int) float64 {
	if o.kind[eq] == bcForce {
		return o.val[eq]
	}
	return 0
}

// IsFixed tells whether a displacement is prescribed at an equation
func (o *Bcs) IsFixed(eq int) bool {
	return o.kind[eq] == bcFixU
}
