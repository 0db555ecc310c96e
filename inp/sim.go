// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global simulation data
type Data struct {
	Desc    string  `json:"desc"`    // description of simulation
	Matfile string  `json:"matfile"` // materials file path, relative to the .sim file
	Mshfile string  `json:"mshfile"` // mesh file path, relative to the .sim file
	Mat     string  `json:"mat"`     // name of material assigned to all cells
	Pstress bool    `json:"pstress"` // plane-stress analysis (plane-strain otherwise)
	Thick   float64 `json:"thick"`   // out-of-plane thickness
	Solver  string  `json:"solver"`  // solver name; e.g. "dense", "umfpack". empty => default
}

// BcSpec holds one boundary condition rule attached to a vertex tag
type BcSpec struct {
	Tag    int       `json:"tag"`    // vertex tag
	Keys   []string  `json:"keys"`   // Dof keys; e.g. "ux", "uy", "fx", "fy"
	Values []float64 `json:"values"` // values; may be absent for fixities (zero)
	Dist   bool      `json:"dist"`   // values are totals distributed equally among tagged vertices
}

// PlotData holds visualization configuration
type PlotData struct {
	Legend    bool    `json:"legend"`    // show legend
	AutoScale bool    `json:"autoscale"` // auto-scale colour range from results
	Dscale    float64 `json:"dscale"`    // deformation multiplier for the deformed-shape overlay
	Title     string  `json:"title"`     // legend title
}

// Sim holds all simulation input data
type Sim struct {

	// input
	Data  Data      `json:"data"`  // global data
	Fix   []*BcSpec `json:"fix"`   // essential (fixed displacement) conditions
	Loads []*BcSpec `json:"loads"` // natural (point load) conditions
	Plot  PlotData  `json:"plot"`  // visualization configuration

	// derived
	DirIn string    // directory of the .sim file
	Msh   *Mesh     // the mesh
	Mat   *Material // the material assigned to all cells
}

// ReadSim reads a simulation (.sim) JSON file, its mesh and its materials database
func ReadSim(simfilepath string) (o *Sim, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, err
	}

	// decode
	o = new(Sim)
	o.Data.Thick = 1.0
	o.Data.Pstress = true
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	o.DirIn = filepath.Dir(simfilepath)

	// check
	if o.Data.Thick <= 0 {
		return nil, chk.Err("thickness must be positive. %g is invalid", o.Data.Thick)
	}

	// mesh
	o.Msh, err = ReadMsh(o.DirIn, o.Data.Mshfile)
	if err != nil {
		return nil, err
	}

	// material
	mdb, err := ReadMat(o.DirIn, o.Data.Matfile)
	if err != nil {
		return nil, err
	}
	o.Mat = mdb.Get(o.Data.Mat)
	if o.Mat == nil {
		return nil, chk.Err("cannot find material %q in %q", o.Data.Mat, o.Data.Matfile)
	}
	return
}
