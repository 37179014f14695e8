// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"github.com/stbgeom/stbgeom/dims"
	"github.com/stbgeom/stbgeom/loft"
	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/profile"
	"github.com/stbgeom/stbgeom/section"
)

// defaultTaperAngle stands in when the taper angle attribute is
// missing or out of range.
const defaultTaperAngle = 45

// taperRun returns the axial length over which the radius change dr
// tapers at the given angle in degrees.
func taperRun(dr float32, angle dims.Scalar) float32 {
	a := angle.Or(defaultTaperAngle)
	if a <= 0 || a >= 90 {
		a = defaultTaperAngle
	}
	return math32.Abs(dr) / math32.Tan(math32.DegToRad(a))
}

// pileLoft synthesizes the station sequence of an extended pile: a
// cylinder over each enlarged end, a conical taper back to the shaft
// diameter, and the uniform shaft between. All stations are circles
// with the shared segment count, so they always loft.
func pileLoft(d *dims.Dimensions, length float32) (*loft.Solid, error) {
	ext := d.Extended
	if ext == nil || !d.Diameter.Positive() {
		return nil, ErrDegenerateGeometry
	}
	shaft := d.Diameter.Value

	type cut struct {
		t  float32
		dv float32
	}
	var cuts []cut

	if ext.Foot.Positive() {
		foot := ext.Foot.Value
		footLen := ext.FootLength.Or(0)
		run := taperRun((foot-shaft)/2, ext.FootTaperAngle)
		cuts = append(cuts, cut{0, foot})
		if footLen > 0 {
			cuts = append(cuts, cut{footLen / length, foot})
		}
		cuts = append(cuts, cut{(footLen + run) / length, shaft})
	} else {
		cuts = append(cuts, cut{0, shaft})
	}

	if ext.Top.Positive() {
		top := ext.Top.Value
		topLen := ext.TopLength.Or(0)
		run := taperRun((top-shaft)/2, ext.TopTaperAngle)
		cuts = append(cuts, cut{1 - (topLen+run)/length, shaft})
		if topLen > 0 {
			cuts = append(cuts, cut{1 - topLen/length, top})
		}
		cuts = append(cuts, cut{1, top})
	} else {
		cuts = append(cuts, cut{1, shaft})
	}

	// taper zones must fit inside the member, without overlap; a
	// taper ending exactly at a member end synthesizes a coincident
	// cut of the same diameter, which collapses to one station
	const tEps = 1e-4
	stations := make([]loft.Station, 0, len(cuts))
	prevT := float32(-1)
	prevD := float32(0)
	for _, c := range cuts {
		if c.t > 1 && c.t <= 1+tEps {
			c.t = 1
		}
		if math32.Abs(c.t-prevT) <= tEps && c.dv == prevD {
			continue
		}
		if c.t < 0 || c.t > 1 || c.t <= prevT {
			return nil, ErrTaperOverrun
		}
		prevT, prevD = c.t, c.dv
		prof := profile.Build(section.CircleParams{Diameter: c.dv})
		if !prof.NonDegenerate() {
			return nil, ErrDegenerateGeometry
		}
		stations = append(stations, loft.At(c.t, prof))
	}
	return loft.Build(&loft.Spec{Stations: stations}, length)
}
