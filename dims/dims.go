// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dims extracts canonical cross-section dimensions from the
// loosely-typed attribute dictionaries of ST-Bridge XML and
// JSON-derived section records. Source data uses dozens of naming
// conventions for the same physical quantity; the normalizer reduces
// them to one [Dimensions] record via ordered alias tables whose
// priority order is load-bearing for ambiguous legacy inputs.
package dims

//go:generate stringer -type=Hint
//go:generate stringer -type=PileType

// Hint is a profile shape hint recorded by the normalizer when the
// dimension fields alone imply a shape before any classification runs.
type Hint int32

const (
	// HintNone means no shape is implied by the dimension fields.
	HintNone Hint = iota

	// HintCircle is recorded when the section is described only by a
	// diameter, with no explicit width or height.
	HintCircle

	// HintExtendedPile is recorded when extended-pile attributes
	// (tapered head and/or foot) are present.
	HintExtendedPile

	HintN
)

// PileType identifies the diameter-variation pattern of a pile.
type PileType int32

const (
	// PileStraight is a constant-diameter pile.
	PileStraight PileType = iota

	// PileExtendedFoot has an enlarged, tapering foot.
	PileExtendedFoot

	// PileExtendedTop has an enlarged, tapering head.
	PileExtendedTop

	// PileExtendedTopFoot has both an enlarged head and foot.
	PileExtendedTopFoot

	PileTypeN
)

// ExtendedPile holds the extended-pile attributes collected into a
// side record: the axial (shaft) diameter, the enlarged foot/top
// diameters, their lengths, and their taper angles in degrees.
type ExtendedPile struct {
	Axial          Scalar
	Foot           Scalar
	Top            Scalar
	FootLength     Scalar
	TopLength      Scalar
	FootTaperAngle Scalar
	TopTaperAngle  Scalar
}

// Dimensions is the canonical dimension record derived once from an
// attribute [Bag]. All lengths are in millimeters; angles in degrees.
// Deriving from the same bag is idempotent and independent of
// attribute order. The record is never mutated after Normalize.
type Dimensions struct {

	// primary outline sizes
	Width  Scalar
	Height Scalar
	Depth  Scalar

	// steel shape sizes
	OverallDepth Scalar
	OverallWidth Scalar
	FlangeWidth  Scalar

	// thicknesses
	Thickness       Scalar
	WallThickness   Scalar
	WebThickness    Scalar
	FlangeThickness Scalar

	// hollow box outer sizes
	OuterWidth  Scalar
	OuterHeight Scalar

	// round sizes; Radius is always Diameter/2
	Diameter Scalar
	Radius   Scalar

	// TypeHint is the raw explicit section type attribute, if any.
	TypeHint string

	// ProfileTypeHint is the raw profile type attribute, if any.
	ProfileTypeHint string

	// Hint is the shape implied by the dimension fields alone.
	Hint Hint

	// Pile is the pile diameter-variation pattern.
	Pile PileType

	// Extended holds extended-pile attributes when present.
	Extended *ExtendedPile
}
