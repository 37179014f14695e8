// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stbgeom/stbgeom/dims"
)

func TestFamilyFromTag(t *testing.T) {
	tests := map[string]Family{
		"RECT":      Rectangle,
		"rect":      Rectangle,
		"I":         H,
		"wide-flange": H,
		"CHS":       Pipe,
		"RHS":       Box,
		"channel":   C,
		"angle":     L,
		"TEE":       T,
		"cross-h":   CrossH,
	}
	for tag, want := range tests {
		f, ok := FamilyFromTag(tag)
		assert.True(t, ok, tag)
		assert.Equal(t, want, f, tag)
	}
	_, ok := FamilyFromTag("ZIGGURAT")
	assert.False(t, ok)
	_, ok = FamilyFromTag("")
	assert.False(t, ok)
}

func TestClassifyExplicit(t *testing.T) {
	d := dims.Normalize(dims.BagOf("section_type", "CHS", "D", 300.0))
	assert.Equal(t, Pipe, Classify(d, ""))

	// explicit section type wins over profile type
	d = dims.Normalize(dims.BagOf("section_type", "BOX", "profile_type", "CHS"))
	assert.Equal(t, Box, Classify(d, ""))

	// profile type wins over the steel shape tag
	d = dims.Normalize(dims.BagOf("profile_type", "CHS"))
	assert.Equal(t, Pipe, Classify(d, "H"))

	// steel shape tag wins over inference
	d = dims.Normalize(dims.BagOf("width", 300.0, "height", 300.0))
	assert.Equal(t, H, Classify(d, "I"))
}

func TestClassifyInference(t *testing.T) {
	tests := []struct {
		name string
		bag  *dims.Bag
		want Family
	}{
		{"pipe", dims.BagOf("D", 318.5, "t", 9.0), Pipe},
		{"box outer", dims.BagOf("outer_width", 300.0, "outer_height", 300.0, "wall_thickness", 12.0), Box},
		{"box plain", dims.BagOf("width", 300.0, "height", 300.0, "t", 12.0), Box},
		{"h", dims.BagOf("A", 450.0, "B", 200.0, "t1", 9.0, "t2", 14.0), H},
		{"c", dims.BagOf("overall_depth", 250.0, "bf", 75.0, "t1", 4.5, "t2", 7.5), C},
		{"l", dims.BagOf("A", 100.0, "B", 100.0, "t", 7.0), L},
		{"circle", dims.BagOf("D", 400.0), Circle},
		{"rect", dims.BagOf("B", 600.0, "H", 600.0), Rectangle},
	}
	for _, tc := range tests {
		d := dims.Normalize(tc.bag)
		assert.Equal(t, tc.want, Classify(d, ""), tc.name)
	}
}

func TestClassifyTotality(t *testing.T) {
	// classification always returns exactly one family, never errors
	assert.Equal(t, Rectangle, Classify(nil, ""))
	assert.Equal(t, Rectangle, Classify(&dims.Dimensions{}, ""))
	assert.Equal(t, Rectangle, Classify(nil, "UNKNOWN_TAG"))
}

func TestReferenceRotation(t *testing.T) {
	assert.Equal(t, float32(90), ReferenceRotation(dims.False))
	assert.Equal(t, float32(0), ReferenceRotation(dims.True))
	assert.Equal(t, float32(0), ReferenceRotation(dims.Unset))
}

func TestMapParamsDefaults(t *testing.T) {
	// a nil record yields pure defaults: plausible sizes, never zeros
	p := MapParams(nil, H).(HParams)
	assert.Equal(t, float32(450), p.OverallDepth)
	assert.Equal(t, float32(200), p.OverallWidth)
	assert.Equal(t, float32(9), p.WebThickness)
	assert.Equal(t, float32(14), p.FlangeThickness)

	r := MapParams(nil, Rectangle).(RectangleParams)
	assert.Positive(t, r.Width)
	assert.Positive(t, r.Height)

	for fam := Rectangle; fam < FamilyN; fam++ {
		p := MapParams(nil, fam)
		assert.Equal(t, fam, p.Family())
	}
}

func TestMapParams(t *testing.T) {
	d := dims.Normalize(dims.BagOf("A", 500.0, "B", 250.0, "t1", 12.0, "t2", 19.0))
	p := MapParams(d, H).(HParams)
	assert.Equal(t, float32(500), p.OverallDepth)
	assert.Equal(t, float32(250), p.OverallWidth)
	assert.Equal(t, float32(12), p.WebThickness)
	assert.Equal(t, float32(19), p.FlangeThickness)

	d = dims.Normalize(dims.BagOf("D", 400.0))
	c := MapParams(d, Circle).(CircleParams)
	assert.Equal(t, float32(400), c.Diameter)

	// partially missing fields fall back per-field
	d = dims.Normalize(dims.BagOf("D", 400.0))
	pp := MapParams(d, Pipe).(PipeParams)
	assert.Equal(t, float32(400), pp.Diameter)
	assert.Equal(t, float32(9), pp.WallThickness)
}
