// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of model; e.g. "lin-elast"
	Prms  fun.Params `json:"prms"`  // model parameters
}

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials []*Material `json:"materials"` // all materials

	// derived
	Name2mat map[string]*Material // material name => material
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot parse materials file %q:\n%v", fn, err)
	}

	// name map
	mdb.Name2mat = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.Name2mat[m.Name]; ok {
			return nil, chk.Err("duplicate material name %q in %q", m.Name, fn)
		}
		mdb.Name2mat[m.Name] = m
	}
	return
}

// Get returns a material by name; nil if not found
func (o *MatDb) Get(name string) *Material {
	return o.Name2mat[name]
}
