// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/zeemarquez/trifem/ele"
)

// HexColor converts a colour fraction within [0, 1] to a matplotlib colour
// string such as "#00ff7f"
func HexColor(f float64) string {
	r, g, b := Rgb(f)
	return io.Sf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255))
}

// elemCoords returns the polyline of one element, optionally displaced by
// dscale times the nodal displacements
func (o *Context) elemCoords(e *ele.Tri3, dscale float64) (pts [][]float64) {
	pts = make([][]float64, 3)
	for m := 0; m < 3; m++ {
		pts[m] = []float64{
			e.X[m][0] + dscale*o.Dom.U[e.Umap[2*m]],
			e.X[m][1] + dscale*o.Dom.U[e.Umap[2*m+1]],
		}
	}
	return
}

// DrawMesh draws the undeformed mesh outline
func (o *Context) DrawMesh() {
	for _, e := range o.Dom.Elems {
		plt.DrawPolyline(o.elemCoords(e, 0), &plt.Sty{Ec: "#d5d5d5", Fc: "none", Lw: 0.7}, "")
	}
}

// DrawField draws the extracted scalar field on the deformed mesh: each
// element is filled with the colour of its (constant) field value. Process
// must have been called first.
func (o *Context) DrawField() {
	for i, e := range o.Dom.Elems {
		clr := HexColor(o.Frac(o.Vals[i]))
		plt.DrawPolyline(o.elemCoords(e, o.Dscale), &plt.Sty{Ec: clr, Fc: clr, Lw: 0.3}, "")
	}
}

// DrawLegend draws proxy entries with the extreme and middle field values so
// that Gll can render a colour legend
func (o *Context) DrawLegend() {
	x, y := []float64{o.Dom.Msh.Xmin}, []float64{o.Dom.Msh.Ymin}
	vals := []float64{o.MaxVal, (o.MinVal + o.MaxVal) / 2.0, o.MinVal}
	for _, v := range vals {
		args := io.Sf("'s', color='%s', label='%g', clip_on=0", HexColor(o.Frac(v)), v)
		plt.Plot(x, y, args)
	}
}

// Draw draws the field plot and saves it to dirout/fname. With fname == ""
// the figure is shown on screen instead.
func (o *Context) Draw(dirout, fname string) {

	// field on deformed mesh over undeformed outline
	plt.Reset()
	o.DrawMesh()
	o.DrawField()

	// decorations
	if o.LegendTitle != "" {
		plt.Title(o.LegendTitle, "")
	}
	if o.ShowLegend {
		o.DrawLegend()
		plt.Gll("x", "y", "leg_loc='upper right'")
	}

	// axes covering mesh and deformed shape
	m := o.Dom.Msh
	dx := math.Max(m.Xmax-m.Xmin, m.Ymax-m.Ymin) * 0.15
	plt.AxisXrange(m.Xmin-dx, m.Xmax+dx)
	plt.AxisYrange(m.Ymin-dx, m.Ymax+dx)

	// save or show
	if fname == "" {
		plt.Show()
		return
	}
	plt.SaveD(dirout, fname)
}
