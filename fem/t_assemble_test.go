// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/zeemarquez/trifem/inp"
	"github.com/zeemarquez/trifem/mdl/solid"
)

// squareDomain builds a unit square made of two triangles sharing a diagonal
func squareDomain(tst *testing.T, E, ν float64) *Domain {
	msh, err := inp.MeshFromRaw(
		[][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{0, 1, 2}, {0, 2, 3}},
	)
	if err != nil {
		tst.Fatalf("MeshFromRaw failed:\n%v", err)
	}
	mdl, err := solid.New("lin-elast")
	if err != nil {
		tst.Fatalf("New model failed:\n%v", err)
	}
	err = mdl.Init(true, fun.Params{
		&fun.P{N: "E", V: E},
		&fun.P{N: "nu", V: ν},
	})
	if err != nil {
		tst.Fatalf("Init model failed:\n%v", err)
	}
	dom, err := NewDomain(msh, mdl, 1.0)
	if err != nil {
		tst.Fatalf("NewDomain failed:\n%v", err)
	}
	return dom
}

func Test_assemble01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble01. scatter-add additivity and order independence")

	dom := squareDomain(tst, 1000.0, 0.25)
	dom.Assemble()

	// sum of the individually scattered contributions, in reverse order
	Ksum := la.MatAlloc(dom.Ny, dom.Ny)
	for i := len(dom.Elems) - 1; i >= 0; i-- {
		e := dom.Elems[i]
		assembleK(Ksum, e.K, e.Umap)
	}
	chk.Matrix(tst, "K == ΣKe", 1e-12, dom.K, Ksum)

	// shared equations (diagonal vertices 0 and 2) accumulate both elements
	e0, e1 := dom.Elems[0], dom.Elems[1]
	for _, eq := range []int{0, 1, 4, 5} {
		i0, i1 := -1, -1
		for k, I := range e0.Umap {
			if I == eq {
				i0 = k
			}
		}
		for k, I := range e1.Umap {
			if I == eq {
				i1 = k
			}
		}
		if i0 < 0 || i1 < 0 {
			tst.Errorf("equation %d should be shared by both elements", eq)
			return
		}
		chk.Scalar(tst, "K diag accumulates", 1e-12, dom.K[eq][eq], e0.K[i0][i0]+e1.K[i1][i1])
	}
}

func Test_assemble02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble02. global K is symmetric")

	dom := squareDomain(tst, 200e9, 0.28)
	dom.Assemble()
	kref := la.MatLargest(dom.K, 1)
	for i := 0; i < dom.Ny; i++ {
		for j := i + 1; j < dom.Ny; j++ {
			chk.Scalar(tst, "Kij == Kji", 1e-12*kref, dom.K[i][j], dom.K[j][i])
		}
	}
}
