// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the FEM solver for 2D linear elasticity with
// 3-node triangles
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/zeemarquez/trifem/ele"
	"github.com/zeemarquez/trifem/inp"
	"github.com/zeemarquez/trifem/mdl/solid"
)

// Domain holds all nodes and elements together with the global linear system.
// The data flows strictly forward: mesh => nodes/elements => boundary
// conditions => assembly => solve => write-back; nodes and elements are then
// read-only for post-processing.
type Domain struct {

	// input
	Msh      *inp.Mesh   // mesh data
	Mdl      solid.Model // material model (same for all cells)
	Thick    float64     // out-of-plane thickness
	Verbose  bool        // show messages
	StrictBc bool        // reject equations left without explicit conditions

	// nodes and elements
	Nodes []*Node     // [nverts] nodes
	Elems []*ele.Tri3 // [ncells] elements
	Ny    int         // total number of equations == 2 * nverts

	// material
	D [][]float64 // [3][3] elasticity matrix

	// boundary conditions and global system
	Bcs  *Bcs        // per-equation conditions
	K    [][]float64 // [Ny][Ny] global stiffness matrix
	U    []float64   // [Ny] displacements (resolved after solving)
	Fext []float64   // [Ny] external forces
	Reac []float64   // [Ny] reaction forces (resolved at fixed equations)

	// status
	Solved bool // system has been solved
}

// NewDomain builds a domain from a mesh and a material model: allocates nodes,
// elements (reordered counter-clockwise) and their stiffness matrices
func NewDomain(msh *inp.Mesh, mdl solid.Model, thick float64) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Msh = msh
	o.Mdl = mdl
	o.Thick = thick
	o.Ny = 2 * len(msh.Verts)

	// elasticity matrix
	o.D = la.MatAlloc(3, 3)
	err = mdl.CalcD(o.D)
	if err != nil {
		return nil, chk.Err("cannot compute elasticity matrix:\n%v", err)
	}

	// nodes
	o.Nodes = make([]*Node, len(msh.Verts))
	for i, v := range msh.Verts {
		o.Nodes[i] = NewNode(v)
	}

	// elements
	o.Elems = make([]*ele.Tri3, len(msh.Cells))
	for i, c := range msh.Cells {
		o.Elems[i] = ele.NewTri3(c, msh, thick)
		o.Elems[i].CalcK(o.D)
	}

	// boundary conditions and global system
	o.Bcs = NewBcs(o.Ny)
	o.K = la.MatAlloc(o.Ny, o.Ny)
	o.U = make([]float64, o.Ny)
	o.Fext = make([]float64, o.Ny)
	o.Reac = make([]float64, o.Ny)
	return
}

// NewDomainFromSim builds a domain from simulation input data, applying the
// boundary conditions given by vertex tags
func NewDomainFromSim(sim *inp.Sim) (o *Domain, err error) {

	// material model
	mdl, err := solid.New(sim.Mat.Model)
	if err != nil {
		return
	}
	err = mdl.Init(sim.Data.Pstress, sim.Mat.Prms)
	if err != nil {
		return
	}

	// domain
	o, err = NewDomain(sim.Msh, mdl, sim.Data.Thick)
	if err != nil {
		return
	}

	// essential conditions
	for _, fc := range sim.Fix {
		err = o.FixVertsByTag(fc.Tag, fc.Keys...)
		if err != nil {
			return
		}
	}

	// point loads
	for _, lc := range sim.Loads {
		for j, key := range lc.Keys {
			err = o.LoadVertsByTag(lc.Tag, key, lc.Values[j], lc.Dist)
			if err != nil {
				return
			}
		}
	}
	return
}

// CheckMesh returns a DegenerateElementError if any element has a clamped
// (zero) area. Degenerate elements do not fail construction; this check is for
// callers that want strictness before solving.
func (o *Domain) CheckMesh() error {
	var bad []int
	for _, e := range o.Elems {
		if e.Degenerate {
			bad = append(bad, e.Cell.Id)
		}
	}
	if len(bad) > 0 {
		return &DegenerateElementError{bad}
	}
	return nil
}

// eqOfKey maps a condition key to the equation number at a vertex
func eqOfKey(v *inp.Vert, key string) (eq int, err error) {
	switch key {
	case "ux", "fx":
		return 2 * v.Id, nil
	case "uy", "fy":
		return 2*v.Id + 1, nil
	}
	return -1, chk.Err("unknown condition key %q", key)
}

// FixVertsByTag prescribes zero displacement for the given keys ("ux", "uy")
// at all vertices with the given tag
func (o *Domain) FixVertsByTag(tag int, keys ...string) (err error) {
	verts, ok := o.Msh.VertTag2verts[tag]
	if !ok {
		return chk.Err("cannot find vertices with tag = %d to assign fixities", tag)
	}
	for _, v := range verts {
		for _, key := range keys {
			eq, err := eqOfKey(v, key)
			if err != nil {
				return err
			}
			err = o.Bcs.FixU(eq, 0)
			if err != nil {
				return err
			}
		}
	}
	return
}

// LoadVertsByTag adds a point load with the given key ("fx", "fy") at all
// vertices with the given tag. With dist=true, value is a total distributed
// equally among the tagged vertices.
func (o *Domain) LoadVertsByTag(tag int, key string, value float64, dist bool) (err error) {
	verts, ok := o.Msh.VertTag2verts[tag]
	if !ok {
		return chk.Err("cannot find vertices with tag = %d to assign loads", tag)
	}
	if dist {
		value /= float64(len(verts))
	}
	for _, v := range verts {
		eq, err := eqOfKey(v, key)
		if err != nil {
			return err
		}
		err = o.Bcs.AddF(eq, value)
		if err != nil {
			return err
		}
	}
	return
}

// Fix prescribes zero displacement for the given keys at all vertices selected
// by a coordinate predicate; returns the number of vertices affected
func (o *Domain) Fix(pred func(x, y float64) bool, keys ...string) (n int, err error) {
	for _, v := range o.Msh.Verts {
		if pred(v.C[0], v.C[1]) {
			n++
			for _, key := range keys {
				eq, err := eqOfKey(v, key)
				if err != nil {
					return n, err
				}
				err = o.Bcs.FixU(eq, 0)
				if err != nil {
					return n, err
				}
			}
		}
	}
	return
}

// Load adds a point load at all vertices selected by a coordinate predicate;
// returns the number of vertices affected
func (o *Domain) Load(pred func(x, y float64) bool, key string, value float64) (n int, err error) {
	for _, v := range o.Msh.Verts {
		if pred(v.C[0], v.C[1]) {
			n++
			eq, err := eqOfKey(v, key)
			if err != nil {
				return n, err
			}
			err = o.Bcs.AddF(eq, value)
			if err != nil {
				return n, err
			}
		}
	}
	return
}

// assembleK scatters a local stiffness matrix into the global one, adding each
// local (i,j) value into K[umap[i]][umap[j]]. Accumulation is commutative:
// elements sharing equations contribute additively in any order.
func assembleK(K [][]float64, Ke [][]float64, umap []int) {
	for i, I := range umap {
		for j, J := range umap {
			K[I][J] += Ke[i][j]
		}
	}
}

// Assemble builds the global stiffness matrix from all element contributions
func (o *Domain) Assemble() {
	la.MatFill(o.K, 0)
	for _, e := range o.Elems {
		assembleK(o.K, e.K, e.Umap)
	}
}

// Solve runs the full pipeline: default unset conditions, partition, assemble,
// solve for unknown displacements, recover reactions and write results back.
// An empty solverName selects "dense" for small systems and "umfpack" otherwise.
func (o *Domain) Solve(solverName string) (err error) {

	// boundary conditions
	if !o.StrictBc {
		o.Bcs.FillFree()
	}
	free, fixed, fknown, err := o.Bcs.Partition()
	if err != nil {
		return
	}
	if len(fixed) == 0 {
		return &SingularSystemError{"no essential boundary conditions: structure has rigid-body modes"}
	}

	// assemble
	o.Assemble()
	if o.Verbose {
		io.Pf("> %d equations: %d free, %d fixed\n", o.Ny, len(free), len(fixed))
	}

	// solver
	if solverName == "" {
		solverName = "umfpack"
		if len(free) <= 600 {
			solverName = "dense"
		}
	}
	solver, err := NewSolver(solverName)
	if err != nil {
		return
	}
	if o.Verbose {
		io.Pf("> Running %q solver\n", solverName)
	}

	// solve
	du, freact, err := solver.Solve(o.K, free, fixed, fknown)
	if err != nil {
		return
	}

	// write results back
	for i, eq := range free {
		o.U[eq] = du[i]
		o.Fext[eq] = fknown[i]
	}
	for i, eq := range fixed {
		o.U[eq] = 0
		o.Reac[eq] = freact[i]
	}
	o.Solved = true
	if o.Verbose {
		io.Pf("> Success\n")
	}
	return
}

// SumForces returns the sums of external forces and reactions per direction.
// Global equilibrium requires rx ≈ -fx and ry ≈ -fy.
func (o *Domain) SumForces() (fx, fy, rx, ry float64) {
	for _, n := range o.Nodes {
		fx += o.Fext[n.GetEq("ux")]
		fy += o.Fext[n.GetEq("uy")]
		rx += o.Reac[n.GetEq("ux")]
		ry += o.Reac[n.GetEq("uy")]
	}
	return
}
