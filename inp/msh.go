// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data structures: mesh, materials and simulation files
package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"i"` // id
	Tag int       `json:"t"` // tag
	C   []float64 `json:"c"` // coordinates [x, y]
}

// Cell holds 3-node triangle cell data
type Cell struct {
	Id    int   `json:"i"` // id
	Tag   int   `json:"t"` // tag
	Verts []int `json:"v"` // vertices (3 ids)
}

// Mesh holds a 2D mesh of 3-node triangles
type Mesh struct {

	// input
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell // cell tag => set of cells
	Xmin          float64         // min x-coordinate
	Xmax          float64         // max x-coordinate
	Ymin          float64         // min y-coordinate
	Ymax          float64         // max y-coordinate
}

// ReadMsh reads a mesh (.msh) JSON file
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	o = new(Mesh)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse mesh file %q:\n%v", fn, err)
	}

	// derived data
	err = o.CalcDerived()
	if err != nil {
		return nil, chk.Err("mesh file %q is invalid:\n%v", fn, err)
	}
	return
}

// MeshFromRaw builds a mesh from the raw arrays produced by an external mesh generator:
// an ordered sequence of 2D point coordinates and an ordered sequence of 3-tuples of
// point indices. Auxiliary construction points not referenced by any triangle (e.g.
// circle centres used by the generator) are skipped and the remaining points are
// renumbered starting from 0.
func MeshFromRaw(points [][]float64, triples [][]int) (o *Mesh, err error) {

	// find referenced points
	used := make(map[int]bool)
	for i, t := range triples {
		if len(t) != 3 {
			return nil, chk.Err("triple %d must have 3 point indices. %d is invalid", i, len(t))
		}
		for _, p := range t {
			if p < 0 || p >= len(points) {
				return nil, chk.Err("triple %d refers to out-of-range point index %d", i, p)
			}
			used[p] = true
		}
	}

	// renumber
	o = new(Mesh)
	new2old := make([]int, 0, len(used))
	old2new := make(map[int]int)
	for i := range points {
		if used[i] {
			old2new[i] = len(new2old)
			new2old = append(new2old, i)
		}
	}

	// vertices
	o.Verts = make([]*Vert, len(new2old))
	for i, old := range new2old {
		c := points[old]
		if len(c) != 2 {
			return nil, chk.Err("point %d must have 2 coordinates. %d is invalid", old, len(c))
		}
		o.Verts[i] = &Vert{Id: i, C: []float64{c[0], c[1]}}
	}

	// cells
	o.Cells = make([]*Cell, len(triples))
	for i, t := range triples {
		o.Cells[i] = &Cell{Id: i, Verts: []int{old2new[t[0]], old2new[t[1]], old2new[t[2]]}}
	}

	// derived data
	err = o.CalcDerived()
	return
}

// CalcDerived computes derived maps and the mesh limits, checking consistency
func (o *Mesh) CalcDerived() (err error) {

	// check and collect vertices
	o.Xmin, o.Ymin = math.Inf(+1), math.Inf(+1)
	o.Xmax, o.Ymax = math.Inf(-1), math.Inf(-1)
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must be sequential. %d != %d", v.Id, i)
		}
		if len(v.C) != 2 {
			return chk.Err("vertex %d must have 2 coordinates. %d is invalid", v.Id, len(v.C))
		}
		if v.Tag != 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
	}

	// check and collect cells
	o.CellTag2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell ids must be sequential. %d != %d", c.Id, i)
		}
		if len(c.Verts) != 3 {
			return chk.Err("cell %d must have 3 vertices. %d is invalid", c.Id, len(c.Verts))
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d refers to unknown vertex %d", c.Id, v)
			}
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
	}
	return
}
