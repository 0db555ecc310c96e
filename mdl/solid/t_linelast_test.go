// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. plane-stress elasticity matrix")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	E, ν := 200e9, 0.28
	err = mdl.Init(true, fun.Params{
		&fun.P{N: "E", V: E},
		&fun.P{N: "nu", V: ν},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	D := la.MatAlloc(3, 3)
	err = mdl.CalcD(D)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}

	c := E / (1.0 - ν*ν)
	Dref := [][]float64{
		{c, c * ν, 0},
		{c * ν, c, 0},
		{0, 0, c * (1.0 - ν) / 2.0},
	}
	chk.Matrix(tst, "D", 1e-5, D, Dref)
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. plane-strain elasticity matrix")

	var mdl LinElast
	E, ν := 1000.0, 0.25
	mdl.Init(false, fun.Params{
		&fun.P{N: "E", V: E},
		&fun.P{N: "nu", V: ν},
	})

	D := la.MatAlloc(3, 3)
	err := mdl.CalcD(D)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}

	c := E / ((1.0 + ν) * (1.0 - 2.0*ν))
	Dref := [][]float64{
		{c * (1.0 - ν), c * ν, 0},
		{c * ν, c * (1.0 - ν), 0},
		{0, 0, c * (1.0 - 2.0*ν) / 2.0},
	}
	chk.Matrix(tst, "D", 1e-12, D, Dref)
}

func Test_linelast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast03. unknown model name")

	_, err := New("kirchhoff-love")
	if err == nil {
		tst.Errorf("New should have failed with unknown model name")
	}
}
