// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"

	"github.com/zeemarquez/trifem/fem"
	"github.com/zeemarquez/trifem/inp"
	"github.com/zeemarquez/trifem/mdl/solid"
)

func Test_map01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("map01. value-to-fraction and colour mapping")

	// linear map
	chk.Scalar(tst, "lin(vmin)", 1e-17, LinMap(0, 0, 10), 0)
	chk.Scalar(tst, "lin(mid) ", 1e-17, LinMap(5, 0, 10), 0.5)
	chk.Scalar(tst, "lin(vmax)", 1e-17, LinMap(10, 0, 10), 1)
	chk.Scalar(tst, "lin(flat)", 1e-17, LinMap(3, 3, 3), 0.5)

	// logarithmic map
	chk.Scalar(tst, "log(vmin)", 1e-15, LogMap(0, 0, 10), 0)
	chk.Scalar(tst, "log(vmax)", 1e-15, LogMap(10, 0, 10), 1)
	chk.Scalar(tst, "log(flat)", 1e-17, LogMap(3, 3, 3), 0.5)
	if LogMap(5, 0, 10) <= LinMap(5, 0, 10) {
		tst.Errorf("logarithmic map must lie above the linear one at mid-range")
		return
	}

	// colour ramp: blue-dominant at 0, green-dominant at 0.5, red-dominant at 1
	r, g, b := Rgb(0)
	chk.Vector(tst, "rgb(0)  ", 1e-17, []float64{r, g, b}, []float64{0, 0, 0.5})
	r, g, b = Rgb(0.5)
	chk.Vector(tst, "rgb(0.5)", 1e-17, []float64{r, g, b}, []float64{0.5, 1, 0.5})
	r, g, b = Rgb(1)
	chk.Vector(tst, "rgb(1)  ", 1e-17, []float64{r, g, b}, []float64{0.5, 0, 0})

	// hex colours
	chk.StrAssert(HexColor(0), "#00007f")
	chk.StrAssert(HexColor(0.5), "#7fff7f")
	chk.StrAssert(HexColor(1), "#7f0000")
}

// uniaxialSquare builds and solves a unit square under horizontal traction qh
// so that the stress field is uniform: σxx = qh, σyy = σxy = 0
func uniaxialSquare(tst *testing.T, qh float64) (dom *fem.Domain) {

	// mesh and material
	msh, err := inp.ReadMsh("../data", "square.msh")
	if err != nil {
		tst.Errorf("cannot read mesh:\n%v", err)
		return nil
	}
	mdl, err := solid.New("lin-elast")
	if err != nil {
		tst.Errorf("cannot allocate model:\n%v", err)
		return nil
	}
	err = mdl.Init(true, fun.Params{
		&fun.P{N: "E", V: 1000},
		&fun.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("cannot initialise model:\n%v", err)
		return nil
	}

	// domain and boundary conditions
	dom, err = fem.NewDomain(msh, mdl, 1.0)
	if err != nil {
		tst.Errorf("cannot create domain:\n%v", err)
		return nil
	}
	_, err = dom.Fix(func(x, y float64) bool { return x < 1e-10 }, "ux")
	if err != nil {
		tst.Errorf("cannot fix ux:\n%v", err)
		return nil
	}
	_, err = dom.Fix(func(x, y float64) bool { return x < 1e-10 && y < 1e-10 }, "uy")
	if err != nil {
		tst.Errorf("cannot fix uy:\n%v", err)
		return nil
	}
	_, err = dom.Load(func(x, y float64) bool { return x > 1-1e-10 }, "fx", qh/2.0)
	if err != nil {
		tst.Errorf("cannot apply loads:\n%v", err)
		return nil
	}

	// solve
	err = dom.Solve("dense")
	if err != nil {
		tst.Errorf("solver failed:\n%v", err)
		return nil
	}
	return
}

func Test_post01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("post01. uniform stress field recovery")

	qh := 10.0
	dom := uniaxialSquare(tst, qh)
	if dom == nil {
		return
	}

	// context
	ctx, err := NewContext(dom)
	if err != nil {
		tst.Errorf("cannot create context:\n%v", err)
		return
	}

	// horizontal stress: uniform field
	err = ctx.Process("sx")
	if err != nil {
		tst.Errorf("process failed:\n%v", err)
		return
	}
	for i := range dom.Elems {
		chk.Scalar(tst, "σxx", 1e-9, ctx.Vals[i], qh)
		chk.Scalar(tst, "σyy", 1e-9, ctx.Sig[i][1], 0)
		chk.Scalar(tst, "σxy", 1e-9, ctx.Sig[i][2], 0)
	}
	chk.Scalar(tst, "min", 1e-9, ctx.MinVal, qh)
	chk.Scalar(tst, "max", 1e-9, ctx.MaxVal, qh)

	// flat field maps to the middle of the colour range
	chk.Scalar(tst, "frac(flat)", 1e-17, ctx.Frac(qh), 0.5)

	// nodal averaging preserves a uniform field
	nv := ctx.NodalValues()
	for v := range dom.Msh.Verts {
		chk.Scalar(tst, "nodal σxx", 1e-9, nv[v], qh)
	}

	// von Mises equals |σxx| under uniaxial stress
	err = ctx.Process("svm")
	if err != nil {
		tst.Errorf("process failed:\n%v", err)
		return
	}
	for i := range dom.Elems {
		chk.Scalar(tst, "σvm", 1e-9, ctx.Vals[i], qh)
	}

	// prescribed colour range
	ctx.SetRange(0, 2*qh)
	chk.Scalar(tst, "frac(qh)  ", 1e-15, ctx.Frac(qh), 0.5)
	chk.Scalar(tst, "frac(clip)", 1e-17, ctx.Frac(3*qh), 1)

	// unknown key
	err = ctx.Process("wrong")
	if err == nil {
		tst.Errorf("processing an unknown key must fail")
		return
	}
}

func Test_post02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("post02. context requires a solved domain")

	msh, err := inp.ReadMsh("../data", "square.msh")
	if err != nil {
		tst.Errorf("cannot read mesh:\n%v", err)
		return
	}
	mdl, err := solid.New("lin-elast")
	if err != nil {
		tst.Errorf("cannot allocate model:\n%v", err)
		return
	}
	err = mdl.Init(true, fun.Params{
		&fun.P{N: "E", V: 1000},
		&fun.P{N: "nu", V: 0.25},
	})
	if err != nil {
		tst.Errorf("cannot initialise model:\n%v", err)
		return
	}
	dom, err := fem.NewDomain(msh, mdl, 1.0)
	if err != nil {
		tst.Errorf("cannot create domain:\n%v", err)
		return
	}
	_, err = NewContext(dom)
	if err == nil {
		tst.Errorf("creating a context from an unsolved domain must fail")
		return
	}
}

func Test_post03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("post03. stress concentration around hole")

	// solve plate-with-hole scenario
	sim, err := inp.ReadSim("../data/platehole.sim")
	if err != nil {
		tst.Errorf("cannot read sim file:\n%v", err)
		return
	}
	dom, err := fem.NewDomainFromSim(sim)
	if err != nil {
		tst.Errorf("cannot create domain:\n%v", err)
		return
	}
	err = dom.Solve(sim.Data.Solver)
	if err != nil {
		tst.Errorf("solver failed:\n%v", err)
		return
	}

	// context configured from input
	ctx, err := NewContextFromSim(dom, &sim.Plot)
	if err != nil {
		tst.Errorf("cannot create context:\n%v", err)
		return
	}
	chk.Scalar(tst, "dscale", 1e-17, ctx.Dscale, 100)
	if !ctx.ShowLegend || !ctx.AutoScale {
		tst.Errorf("plot configuration was not carried over")
		return
	}

	// von Mises field: peak near the hole must exceed the nominal (gross
	// section) stress by a concentration factor, but remain bounded
	err = ctx.Process("svm")
	if err != nil {
		tst.Errorf("process failed:\n%v", err)
		return
	}
	nominal := 1000.0 / 3.0 // load / (height * thickness)
	if ctx.MaxVal < 1.3*nominal {
		tst.Errorf("peak von Mises %g too low: no stress concentration captured", ctx.MaxVal)
		return
	}
	if ctx.MaxVal > 6.0*nominal {
		tst.Errorf("peak von Mises %g too high", ctx.MaxVal)
		return
	}
	if ctx.MinVal < 0 {
		tst.Errorf("von Mises stress cannot be negative: min = %g", ctx.MinVal)
		return
	}

	// extrema map to the ends of the colour range
	chk.Scalar(tst, "frac(min)", 1e-15, ctx.Frac(ctx.MinVal), 0)
	chk.Scalar(tst, "frac(max)", 1e-15, ctx.Frac(ctx.MaxVal), 1)

	// the most stressed element must sit close to the hole
	imax := 0
	for i, v := range ctx.Vals {
		if v > ctx.Vals[imax] {
			imax = i
		}
	}
	e := dom.Elems[imax]
	xc := (e.X[0][0] + e.X[1][0] + e.X[2][0]) / 3.0
	yc := (e.X[0][1] + e.X[1][1] + e.X[2][1]) / 3.0
	if math.Hypot(xc-5.0, yc-1.5) > 1.5 {
		tst.Errorf("most stressed element at (%g,%g) is too far from the hole", xc, yc)
		return
	}
}
