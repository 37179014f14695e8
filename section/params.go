// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import "github.com/stbgeom/stbgeom/dims"

// Params is the closed union of family-specific profile parameter
// records. Each family has exactly one params type; the profile
// builder dispatches exhaustively on the concrete type. All lengths
// are in millimeters.
type Params interface {
	// Family returns the section family this record parameterizes.
	Family() Family
}

// RectangleParams parameterizes a solid rectangular section.
type RectangleParams struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

func (p RectangleParams) Family() Family { return Rectangle }

// CircleParams parameterizes a solid round section.
type CircleParams struct {
	Diameter float32 `toml:"diameter"`
}

func (p CircleParams) Family() Family { return Circle }

// HParams parameterizes a wide-flange section.
type HParams struct {
	OverallDepth    float32 `toml:"overall_depth"`
	OverallWidth    float32 `toml:"overall_width"`
	WebThickness    float32 `toml:"web_thickness"`
	FlangeThickness float32 `toml:"flange_thickness"`
}

func (p HParams) Family() Family { return H }

// BoxParams parameterizes a hollow rectangular section.
type BoxParams struct {
	Width     float32 `toml:"width"`
	Height    float32 `toml:"height"`
	Thickness float32 `toml:"thickness"`
}

func (p BoxParams) Family() Family { return Box }

// PipeParams parameterizes a hollow round section.
type PipeParams struct {
	Diameter      float32 `toml:"diameter"`
	WallThickness float32 `toml:"wall_thickness"`
}

func (p PipeParams) Family() Family { return Pipe }

// CParams parameterizes a channel section.
type CParams struct {
	OverallDepth    float32 `toml:"overall_depth"`
	FlangeWidth     float32 `toml:"flange_width"`
	WebThickness    float32 `toml:"web_thickness"`
	FlangeThickness float32 `toml:"flange_thickness"`
}

func (p CParams) Family() Family { return C }

// LParams parameterizes an angle section.
type LParams struct {
	Depth     float32 `toml:"depth"`
	Width     float32 `toml:"width"`
	Thickness float32 `toml:"thickness"`
}

func (p LParams) Family() Family { return L }

// TParams parameterizes a tee section.
type TParams struct {
	OverallDepth    float32 `toml:"overall_depth"`
	FlangeWidth     float32 `toml:"flange_width"`
	WebThickness    float32 `toml:"web_thickness"`
	FlangeThickness float32 `toml:"flange_thickness"`
}

func (p TParams) Family() Family { return T }

// CrossHParams parameterizes a cross column: two perpendicular H
// arms sharing one center.
type CrossHParams struct {
	OverallDepth    float32 `toml:"overall_depth"`
	OverallWidth    float32 `toml:"overall_width"`
	WebThickness    float32 `toml:"web_thickness"`
	FlangeThickness float32 `toml:"flange_thickness"`
}

func (p CrossHParams) Family() Family { return CrossH }

// MapParams converts normalized dimensions and a family into the
// parameter record the profile builder for that family expects.
// Missing fields are filled from the embedded default table with
// engineering-plausible values, so a malformed record still yields a
// renderable (obviously wrong-sized) solid rather than a failure.
// A nil dimensions record yields pure defaults.
func MapParams(d *dims.Dimensions, fam Family) Params {
	def := defaults()
	if d == nil {
		d = &dims.Dimensions{}
	}
	switch fam {
	case Circle:
		return CircleParams{
			Diameter: d.Diameter.Or(d.Width.Or(def.Circle.Diameter)),
		}
	case H:
		return HParams{
			OverallDepth:    d.OverallDepth.Or(def.H.OverallDepth),
			OverallWidth:    d.OverallWidth.Or(def.H.OverallWidth),
			WebThickness:    d.WebThickness.Or(def.H.WebThickness),
			FlangeThickness: d.FlangeThickness.Or(def.H.FlangeThickness),
		}
	case Box:
		return BoxParams{
			Width:     d.OuterWidth.Or(d.Width.Or(def.Box.Width)),
			Height:    d.OuterHeight.Or(d.Height.Or(def.Box.Height)),
			Thickness: d.WallThickness.Or(d.Thickness.Or(def.Box.Thickness)),
		}
	case Pipe:
		return PipeParams{
			Diameter:      d.Diameter.Or(d.Width.Or(def.Pipe.Diameter)),
			WallThickness: d.WallThickness.Or(d.Thickness.Or(def.Pipe.WallThickness)),
		}
	case C:
		return CParams{
			OverallDepth:    d.OverallDepth.Or(def.C.OverallDepth),
			FlangeWidth:     d.FlangeWidth.Or(d.Width.Or(def.C.FlangeWidth)),
			WebThickness:    d.WebThickness.Or(def.C.WebThickness),
			FlangeThickness: d.FlangeThickness.Or(def.C.FlangeThickness),
		}
	case L:
		return LParams{
			Depth:     d.Depth.Or(d.Height.Or(def.L.Depth)),
			Width:     d.Width.Or(def.L.Width),
			Thickness: d.Thickness.Or(def.L.Thickness),
		}
	case T:
		return TParams{
			OverallDepth:    d.OverallDepth.Or(def.T.OverallDepth),
			FlangeWidth:     d.FlangeWidth.Or(d.Width.Or(def.T.FlangeWidth)),
			WebThickness:    d.WebThickness.Or(def.T.WebThickness),
			FlangeThickness: d.FlangeThickness.Or(def.T.FlangeThickness),
		}
	case CrossH:
		return CrossHParams{
			OverallDepth:    d.OverallDepth.Or(def.CrossH.OverallDepth),
			OverallWidth:    d.OverallWidth.Or(def.CrossH.OverallWidth),
			WebThickness:    d.WebThickness.Or(def.CrossH.WebThickness),
			FlangeThickness: d.FlangeThickness.Or(def.CrossH.FlangeThickness),
		}
	default:
		return RectangleParams{
			Width:  d.Width.Or(def.Rectangle.Width),
			Height: d.Height.Or(def.Rectangle.Height),
		}
	}
}
