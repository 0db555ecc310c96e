// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// NodalValues extrapolates the element-constant field to the mesh vertices by
// averaging over all elements sharing each vertex, weighted by element area.
// The result smooths the piecewise-constant stress picture that constant
// strain triangles produce. Process must have been called first.
func (o *Context) NodalValues() (vals []float64) {
	nverts := len(o.Dom.Msh.Verts)
	vals = make([]float64, nverts)
	weights := make([]float64, nverts)
	for i, e := range o.Dom.Elems {
		for _, v := range e.V {
			vals[v] += e.A * o.Vals[i]
			weights[v] += e.A
		}
	}
	for v := 0; v < nverts; v++ {
		if weights[v] > 0 {
			vals[v] /= weights[v]
		}
	}
	return
}
