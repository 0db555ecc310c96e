// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	fun "github.com/cpmech/gosl/fun/dbf"
)

// PlateHole implements Kirsch's solution for an infinite plate with a circular
// hole of radius r centred at (xc, yc), under far-field horizontal tension qh.
// Useful as a reference for the finite plate-with-hole scenario: near the hole
// boundary the tangential stress reaches 3*qh (at the poles) and -qh (at the
// equator); far from the hole the uniaxial state {qh, 0, 0} is recovered.
type PlateHole struct {

	// input
	r  float64 // hole radius
	xc float64 // hole centre x
	yc float64 // hole centre y
	qh float64 // far-field horizontal tension
}

// Init initialises this structure
func (o *PlateHole) Init(prms fun.Params) {
	o.r = 1.0
	o.qh = 10.0
	for _, p := range prms {
		switch p.N {
		case "r":
			o.r = p.V
		case "xc":
			o.xc = p.V
		case "yc":
			o.yc = p.V
		case "qh":
			o.qh = p.V
		}
	}
}

// Stress computes the stress vector {σxx, σyy, σxy} @ (x,y). Points inside the
// hole have no defined stress; the hole-boundary values are returned there.
func (o PlateHole) Stress(x, y float64) (σ []float64) {

	// polar coordinates
	dx, dy := x-o.xc, y-o.yc
	d := math.Sqrt(dx*dx + dy*dy)
	if d < o.r {
		d = o.r
	}
	c, s := dx/d, dy/d
	cc, ss := c*c, s*s
	cs := c * s
	c2t := cc - ss
	s2t := 2.0 * cs

	// solution in polar coordinates
	p := o.qh / 2.0
	b := o.r * o.r / (d * d)
	sr := p*(1.0-b) + p*(1.0-4.0*b+3.0*b*b)*c2t
	st := p*(1.0+b) - p*(1.0+3.0*b*b)*c2t
	srt := -p * (1.0 + 2.0*b - 3.0*b*b) * s2t

	// rotation to x-y coordinates
	sx := cc*sr + ss*st - 2.0*cs*srt
	sy := ss*sr + cc*st + 2.0*cs*srt
	sxy := cs*sr - cs*st + c2t*srt
	return []float64{sx, sy, sxy}
}

// HoopStress computes the tangential stress at the hole boundary for a given
// angle θ measured from the x-axis: σθ = qh*(1 - 2*cos(2θ))
func (o PlateHole) HoopStress(θ float64) float64 {
	return o.qh * (1.0 - 2.0*math.Cos(2.0*θ))
}
