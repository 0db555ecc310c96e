// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/zeemarquez/trifem/fem"
	"github.com/zeemarquez/trifem/inp"
	"github.com/zeemarquez/trifem/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/platehole", ".sim", true)
	verbose := io.ArgToBool(1, true)
	field := io.ArgToString(2, "svm")
	dirout := io.ArgToString(3, "/tmp/trifem")

	// message
	if verbose {
		io.PfWhite("\nTrifem -- Linear-Triangle Finite Elements for 2D Elasticity\n")
		io.Pf("Copyright 2016 The Trifem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"field to plot: sx, sy, sxy, svm", "field", field,
			"output directory", "dirout", dirout,
		))
	}

	// read input data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}

	// domain
	dom, err := fem.NewDomainFromSim(sim)
	if err != nil {
		chk.Panic("cannot create domain:\n%v", err)
	}
	dom.Verbose = verbose
	err = dom.CheckMesh()
	if err != nil {
		chk.Panic("mesh check failed:\n%v", err)
	}

	// solve
	err = dom.Solve(sim.Data.Solver)
	if err != nil {
		chk.Panic("solver failed:\n%v", err)
	}

	// equilibrium summary
	if verbose {
		fx, fy, rx, ry := dom.SumForces()
		io.Pf("external forces: Σfx=%g Σfy=%g\n", fx, fy)
		io.Pf("reactions:       Σrx=%g Σry=%g\n", rx, ry)
	}

	// post-processing
	ctx, err := out.NewContextFromSim(dom, &sim.Plot)
	if err != nil {
		chk.Panic("cannot create post-processing context:\n%v", err)
	}
	err = ctx.Process(field)
	if err != nil {
		chk.Panic("cannot extract field:\n%v", err)
	}
	if verbose {
		io.Pf("%s range: min=%g max=%g\n", field, ctx.MinVal, ctx.MaxVal)
	}

	// save figure
	fnplot := io.Sf("%s_%s.png", fnkey, field)
	ctx.Draw(dirout, fnplot)
	if verbose {
		io.Pfblue2("file <%s/%s> written\n", dirout, fnplot)
	}
}
