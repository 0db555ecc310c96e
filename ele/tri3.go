// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements
package ele

import (
	"github.com/cpmech/gosl/la"

	"github.com/zeemarquez/trifem/inp"
)

// AreaEps is the area assigned to degenerate (zero-area) triangles so that the
// strain-displacement matrix never divides by zero
const AreaEps = 1e-12

// Tri3 represents a 3-node linear (constant-strain) triangle for 2D elasticity,
// with 2 displacement unknowns per node and constant stiffness matrix; i.e. no
// numerical integration is needed
type Tri3 struct {

	// basic data
	Cell  *inp.Cell   // the cell structure
	V     []int       // [3] vertex ids, reordered to counter-clockwise winding
	X     [][]float64 // [3][2] nodal coordinates, same order as V
	Thick float64     // out-of-plane thickness

	// derived geometry
	A          float64 // area (positive; AreaEps if degenerate)
	Degenerate bool    // the three vertices are collinear or coincident

	// problem variables
	Umap []int // [6] assembly map (location array/element equations)

	// matrices
	B [][]float64 // [3][6] strain-displacement matrix
	K [][]float64 // [6][6] element stiffness matrix

	// scratchpad
	ue []float64 // [6] nodal displacements
}

// NewTri3 returns a new Tri3 element for a given cell. The vertex triple is
// reordered to counter-clockwise winding before any geometry is derived.
func NewTri3(cell *inp.Cell, msh *inp.Mesh, thick float64) (o *Tri3) {

	// basic data
	o = new(Tri3)
	o.Cell = cell
	o.Thick = thick
	o.V = []int{cell.Verts[0], cell.Verts[1], cell.Verts[2]}

	// counter-clockwise winding and assembly map
	o.orderCcw(msh)

	// geometry and matrices
	o.calcArea()
	o.calcB()
	o.K = la.MatAlloc(6, 6)
	o.ue = make([]float64, 6)
	return
}

// orderCcw reorders the vertex triple to counter-clockwise winding, using the
// sign of the cross product of the first two edge vectors; a positive value
// means clockwise winding and triggers swapping the first two vertices. It also
// sets the nodal coordinates and the flattened global equation map.
func (o *Tri3) orderCcw(msh *inp.Mesh) {
	c0 := msh.Verts[o.V[0]].C
	c1 := msh.Verts[o.V[1]].C
	c2 := msh.Verts[o.V[2]].C
	cross := (c1[1]-c0[1])*(c2[0]-c1[0]) - (c1[0]-c0[0])*(c2[1]-c1[1])
	if cross > 0 {
		o.V[0], o.V[1] = o.V[1], o.V[0]
	}
	o.X = la.MatAlloc(3, 2)
	o.Umap = make([]int, 6)
	for m, v := range o.V {
		o.X[m][0] = msh.Verts[v].C[0]
		o.X[m][1] = msh.Verts[v].C[1]
		o.Umap[2*m] = 2 * v
		o.Umap[2*m+1] = 2*v + 1
	}
}

// calcArea computes the signed area via the shoelace formula over the (already
// counter-clockwise) vertices. A degenerate (zero) result is replaced by AreaEps
// rather than failing, so downstream division never breaks.
func (o *Tri3) calcArea() {
	x0, y0 := o.X[0][0], o.X[0][1]
	x1, y1 := o.X[1][0], o.X[1][1]
	x2, y2 := o.X[2][0], o.X[2][1]
	o.A = ((x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)) / 2.0
	if o.A < AreaEps {
		o.A = AreaEps
		o.Degenerate = true
	}
}

// calcB computes the constant 3x6 strain-displacement matrix relating nodal
// displacements to the strain vector {εxx, εyy, γxy}. The result is exact since
// the interpolation is linear.
func (o *Tri3) calcB() {
	x0, y0 := o.X[0][0], o.X[0][1]
	x1, y1 := o.X[1][0], o.X[1][1]
	x2, y2 := o.X[2][0], o.X[2][1]
	b0, b1, b2 := y1-y2, y2-y0, y0-y1
	c0, c1, c2 := x2-x1, x0-x2, x1-x0
	s := 1.0 / (2.0 * o.A)
	o.B = [][]float64{
		{s * b0, 0, s * b1, 0, s * b2, 0},
		{0, s * c0, 0, s * c1, 0, s * c2},
		{s * c0, s * b0, s * c1, s * b1, s * c2, s * b2},
	}
}

// CalcK computes the element stiffness matrix K = thick * A * Bᵀ * D * B
// for a given elasticity matrix D
func (o *Tri3) CalcK(D [][]float64) {
	la.MatTrMul3(o.K, o.Thick*o.A, o.B, D, o.B)
}

// StrainStress recovers the element strain and stress vectors from the global
// displacement vector U:  ε = B * ue  and  σ = D * ε
func (o *Tri3) StrainStress(D [][]float64, U []float64) (ε, σ []float64) {
	for i, I := range o.Umap {
		o.ue[i] = U[I]
	}
	ε = make([]float64, 3)
	σ = make([]float64, 3)
	la.MatVecMul(ε, 1, o.B, o.ue)
	la.MatVecMul(σ, 1, D, ε)
	return
}
