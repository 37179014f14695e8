// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/section"
)

// Build produces the 2D profile for the given family parameter
// record. It returns nil when required parameters are non-positive or
// inconsistent even after defaulting, rather than a zero-area polygon.
func Build(p section.Params) *Profile {
	switch tp := p.(type) {
	case section.RectangleParams:
		return buildRectangle(tp)
	case section.CircleParams:
		return buildCircle(tp)
	case section.HParams:
		return buildH(tp)
	case section.BoxParams:
		return buildBox(tp)
	case section.PipeParams:
		return buildPipe(tp)
	case section.CParams:
		return buildC(tp)
	case section.LParams:
		return buildL(tp)
	case section.TParams:
		return buildT(tp)
	case section.CrossHParams:
		return buildCrossH(tp)
	default:
		return nil
	}
}

func rectangleLoop(w, h float32) []math32.Vector2 {
	hw, hh := w/2, h/2
	return []math32.Vector2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}

// circleLoop polygonizes a circle of the given radius with
// [CircleSegments] vertices; ccw selects the winding.
func circleLoop(r float32, ccw bool) []math32.Vector2 {
	loop := make([]math32.Vector2, CircleSegments)
	for i := range loop {
		ang := 2 * math32.Pi * float32(i) / CircleSegments
		if !ccw {
			ang = -ang
		}
		loop[i] = math32.Vec2(r*math32.Cos(ang), r*math32.Sin(ang))
	}
	return loop
}

func buildRectangle(p section.RectangleParams) *Profile {
	if p.Width <= 0 || p.Height <= 0 {
		return nil
	}
	return &Profile{Outer: rectangleLoop(p.Width, p.Height)}
}

func buildCircle(p section.CircleParams) *Profile {
	if p.Diameter <= 0 {
		return nil
	}
	return &Profile{Outer: circleLoop(p.Diameter/2, true)}
}

// hLoop returns the 12-vertex wide-flange outline, counterclockwise
// from the bottom-left flange corner.
func hLoop(d, b, tw, tf float32) []math32.Vector2 {
	hd, hb, hw := d/2, b/2, tw/2
	return []math32.Vector2{
		{X: -hb, Y: -hd},
		{X: hb, Y: -hd},
		{X: hb, Y: -hd + tf},
		{X: hw, Y: -hd + tf},
		{X: hw, Y: hd - tf},
		{X: hb, Y: hd - tf},
		{X: hb, Y: hd},
		{X: -hb, Y: hd},
		{X: -hb, Y: hd - tf},
		{X: -hw, Y: hd - tf},
		{X: -hw, Y: -hd + tf},
		{X: -hb, Y: -hd + tf},
	}
}

func buildH(p section.HParams) *Profile {
	if p.OverallDepth <= 0 || p.OverallWidth <= 0 ||
		p.WebThickness <= 0 || p.FlangeThickness <= 0 ||
		2*p.FlangeThickness >= p.OverallDepth || p.WebThickness >= p.OverallWidth {
		return nil
	}
	return &Profile{Outer: hLoop(p.OverallDepth, p.OverallWidth, p.WebThickness, p.FlangeThickness)}
}

func buildBox(p section.BoxParams) *Profile {
	if p.Width <= 0 || p.Height <= 0 || p.Thickness <= 0 ||
		2*p.Thickness >= p.Width || 2*p.Thickness >= p.Height {
		return nil
	}
	outer := rectangleLoop(p.Width, p.Height)
	inner := rectangleLoop(p.Width-2*p.Thickness, p.Height-2*p.Thickness)
	reverse(inner)
	return &Profile{Outer: outer, Holes: [][]math32.Vector2{inner}}
}

func buildPipe(p section.PipeParams) *Profile {
	r := p.Diameter / 2
	if p.Diameter <= 0 || p.WallThickness <= 0 || p.WallThickness >= r {
		return nil
	}
	return &Profile{
		Outer: circleLoop(r, true),
		Holes: [][]math32.Vector2{circleLoop(r-p.WallThickness, false)},
	}
}

func buildC(p section.CParams) *Profile {
	if p.OverallDepth <= 0 || p.FlangeWidth <= 0 ||
		p.WebThickness <= 0 || p.FlangeThickness <= 0 ||
		2*p.FlangeThickness >= p.OverallDepth || p.WebThickness >= p.FlangeWidth {
		return nil
	}
	hd, hb := p.OverallDepth/2, p.FlangeWidth/2
	tw, tf := p.WebThickness, p.FlangeThickness
	return &Profile{Outer: []math32.Vector2{
		{X: -hb, Y: -hd},
		{X: hb, Y: -hd},
		{X: hb, Y: -hd + tf},
		{X: -hb + tw, Y: -hd + tf},
		{X: -hb + tw, Y: hd - tf},
		{X: hb, Y: hd - tf},
		{X: hb, Y: hd},
		{X: -hb, Y: hd},
	}}
}

func buildL(p section.LParams) *Profile {
	if p.Depth <= 0 || p.Width <= 0 || p.Thickness <= 0 ||
		p.Thickness >= p.Width || p.Thickness >= p.Depth {
		return nil
	}
	hd, hw, t := p.Depth/2, p.Width/2, p.Thickness
	return &Profile{Outer: []math32.Vector2{
		{X: -hw, Y: -hd},
		{X: hw, Y: -hd},
		{X: hw, Y: -hd + t},
		{X: -hw + t, Y: -hd + t},
		{X: -hw + t, Y: hd},
		{X: -hw, Y: hd},
	}}
}

func buildT(p section.TParams) *Profile {
	if p.OverallDepth <= 0 || p.FlangeWidth <= 0 ||
		p.WebThickness <= 0 || p.FlangeThickness <= 0 ||
		p.FlangeThickness >= p.OverallDepth || p.WebThickness >= p.FlangeWidth {
		return nil
	}
	hd, hb, hw := p.OverallDepth/2, p.FlangeWidth/2, p.WebThickness/2
	tf := p.FlangeThickness
	return &Profile{Outer: []math32.Vector2{
		{X: -hw, Y: -hd},
		{X: hw, Y: -hd},
		{X: hw, Y: hd - tf},
		{X: hb, Y: hd - tf},
		{X: hb, Y: hd},
		{X: -hb, Y: hd},
		{X: -hb, Y: hd - tf},
		{X: -hw, Y: hd - tf},
	}}
}

// buildCrossH emits two perpendicular H arms as two overlapping
// loops. The loops are never boolean-unioned; downstream consumers
// accept overlapping-loop profiles for extrusion.
func buildCrossH(p section.CrossHParams) *Profile {
	arm := buildH(section.HParams{
		OverallDepth:    p.OverallDepth,
		OverallWidth:    p.OverallWidth,
		WebThickness:    p.WebThickness,
		FlangeThickness: p.FlangeThickness,
	})
	if arm == nil {
		return nil
	}
	cross := arm.Rotated(math32.DegToRad(90))
	return &Profile{
		Outer: arm.Outer,
		Extra: [][]math32.Vector2{cross.Outer},
	}
}

func reverse(loop []math32.Vector2) {
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
}
