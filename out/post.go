// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of solved domains: strain/stress
// recovery, scalar field extraction and colour mapping for plotting
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/zeemarquez/trifem/fem"
	"github.com/zeemarquez/trifem/inp"
)

// MapFunc maps a value within [vmin, vmax] to a fraction within [0, 1]
type MapFunc func(v, vmin, vmax float64) float64

// LinMap is the default (linear) value-to-fraction mapping. A flat field
// (vmax == vmin) maps to 0.5.
func LinMap(v, vmin, vmax float64) float64 {
	if vmax-vmin < 1e-300 {
		return 0.5
	}
	return (v - vmin) / (vmax - vmin)
}

// LogMap is a logarithmic value-to-fraction mapping; useful for fields with
// strong concentrations where a linear map saturates. Values are shifted to
// be positive before taking logs.
func LogMap(v, vmin, vmax float64) float64 {
	if vmax-vmin < 1e-300 {
		return 0.5
	}
	shift := 1.0 - vmin
	return math.Log(v+shift) / math.Log(vmax+shift)
}

// Context holds the results of one post-processing pass over a solved domain.
// All state is explicit here so that many contexts (e.g. one per stress
// component) can coexist for the same domain.
type Context struct {

	// input
	Dom *fem.Domain // solved domain
	Map MapFunc     // value-to-fraction mapping. LinMap if nil

	// plot configuration
	ShowLegend  bool    // draw colour legend
	AutoScale   bool    // scale colour range from computed extrema (otherwise from SetRange)
	LegendTitle string  // legend/plot title
	Dscale      float64 // deformation multiplier for the deformed-shape overlay

	// results
	Key    string      // extracted field key
	Eps    [][]float64 // [ncells][3] strains {εxx, εyy, γxy}
	Sig    [][]float64 // [ncells][3] stresses {σxx, σyy, σxy}
	Vals   []float64   // [ncells] extracted scalar field (constant per element)
	MinVal float64     // minimum of Vals
	MaxVal float64     // maximum of Vals
}

// NewContext returns a post-processing context for a solved domain
func NewContext(dom *fem.Domain) (o *Context, err error) {
	if !dom.Solved {
		return nil, chk.Err("domain must be solved before post-processing")
	}
	o = new(Context)
	o.Dom = dom
	o.Map = LinMap
	o.AutoScale = true
	o.Dscale = 1
	return
}

// NewContextFromSim returns a context configured from the simulation input
func NewContextFromSim(dom *fem.Domain, plot *inp.PlotData) (o *Context, err error) {
	o, err = NewContext(dom)
	if err != nil {
		return
	}
	o.ShowLegend = plot.Legend
	o.AutoScale = plot.AutoScale
	o.LegendTitle = plot.Title
	if plot.Dscale > 0 {
		o.Dscale = plot.Dscale
	}
	return
}

// VonMises returns the von Mises equivalent stress for a plane-stress state
// {σxx, σyy, σxy}. The radicand is clamped at zero to guard against negative
// round-off for near-hydrostatic states.
func VonMises(σ []float64) float64 {
	sx, sy, sxy := σ[0], σ[1], σ[2]
	return math.Sqrt(math.Max(0, sx*sx+sy*sy-sx*sy+3.0*sxy*sxy))
}

// Process recovers strains and stresses in all elements and extracts the
// scalar field given by key:
//  "sx"  -- σxx
//  "sy"  -- σyy
//  "sxy" -- σxy
//  "svm" -- von Mises equivalent stress
// Extrema are tracked over all elements for colour mapping.
func (o *Context) Process(key string) (err error) {
	dom := o.Dom
	nele := len(dom.Elems)
	o.Key = key
	o.Eps = make([][]float64, nele)
	o.Sig = make([][]float64, nele)
	o.Vals = make([]float64, nele)
	for i, e := range dom.Elems {
		o.Eps[i], o.Sig[i] = e.StrainStress(dom.D, dom.U)
		switch key {
		case "sx":
			o.Vals[i] = o.Sig[i][0]
		case "sy":
			o.Vals[i] = o.Sig[i][1]
		case "sxy":
			o.Vals[i] = o.Sig[i][2]
		case "svm":
			o.Vals[i] = VonMises(o.Sig[i])
		default:
			return chk.Err("unknown field key %q", key)
		}
		if i == 0 {
			o.MinVal, o.MaxVal = o.Vals[0], o.Vals[0]
		} else {
			o.MinVal = math.Min(o.MinVal, o.Vals[i])
			o.MaxVal = math.Max(o.MaxVal, o.Vals[i])
		}
	}
	return
}

// SetRange prescribes the colour range explicitly and disables auto-scaling
func (o *Context) SetRange(vmin, vmax float64) {
	o.MinVal, o.MaxVal = vmin, vmax
	o.AutoScale = false
}

// Frac maps a field value to a colour fraction within [0, 1] using the
// configured mapping and the current extrema
func (o *Context) Frac(v float64) float64 {
	m := o.Map
	if m == nil {
		m = LinMap
	}
	f := m(v, o.MinVal, o.MaxVal)
	return clamp01(f)
}

// Rgb converts a colour fraction within [0, 1] to an RGB triple on a
// blue-green-red ramp: low fractions are blue-dominant, 0.5 is green-dominant
// and high fractions are red-dominant
func Rgb(f float64) (r, g, b float64) {
	r = clamp01(1.0 - 2.0*math.Abs(f-0.75))
	g = clamp01(1.0 - 2.0*math.Abs(f-0.5))
	b = clamp01(1.0 - 2.0*math.Abs(f-0.25))
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
