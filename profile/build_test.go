// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stbgeom/stbgeom/section"
)

func TestBuildRectangle(t *testing.T) {
	p := Build(section.RectangleParams{Width: 400, Height: 300})
	require.NotNil(t, p)
	assert.Len(t, p.Outer, 4)
	assert.InDelta(t, 400*300, float64(p.Area()), 1e-2)
	assert.True(t, p.NonDegenerate())
	assert.InDelta(t, 300, float64(p.Height()), 1e-4)

	// ccw winding
	assert.Positive(t, signedArea(p.Outer))
}

func TestBuildCircle(t *testing.T) {
	p := Build(section.CircleParams{Diameter: 400})
	require.NotNil(t, p)
	assert.Len(t, p.Outer, CircleSegments)
	// polygonized circle area is slightly under pi*r^2
	assert.InDelta(t, 124838, float64(p.Area()), 100)
	for _, v := range p.Outer {
		assert.InDelta(t, 200, float64(v.Length()), 1e-3)
	}
}

func TestBuildH(t *testing.T) {
	p := Build(section.HParams{
		OverallDepth: 450, OverallWidth: 200,
		WebThickness: 9, FlangeThickness: 14,
	})
	require.NotNil(t, p)
	assert.Len(t, p.Outer, 12)
	assert.True(t, p.NonDegenerate())
	// area = 2 flanges + web
	want := 2*200*14 + (450-2*14)*9
	assert.InDelta(t, float64(want), float64(p.Area()), 1e-1)
	assert.InDelta(t, 450, float64(p.Height()), 1e-4)
}

func TestBuildBoxAndPipeHoles(t *testing.T) {
	b := Build(section.BoxParams{Width: 300, Height: 300, Thickness: 12})
	require.NotNil(t, b)
	require.Len(t, b.Holes, 1)
	// inner loop is strictly smaller and wound opposite to the outer
	assert.Less(t, math32Abs(signedArea(b.Holes[0])), math32Abs(signedArea(b.Outer)))
	assert.Positive(t, signedArea(b.Outer))
	assert.Negative(t, signedArea(b.Holes[0]))
	want := 300*300 - 276*276
	assert.InDelta(t, float64(want), float64(b.Area()), 1e-1)

	p := Build(section.PipeParams{Diameter: 318.5, WallThickness: 9})
	require.NotNil(t, p)
	require.Len(t, p.Holes, 1)
	assert.Len(t, p.Holes[0], CircleSegments)
	assert.Positive(t, signedArea(p.Outer))
	assert.Negative(t, signedArea(p.Holes[0]))
	assert.Less(t, math32Abs(signedArea(p.Holes[0])), math32Abs(signedArea(p.Outer)))
}

func math32Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestBuildOpenShapes(t *testing.T) {
	c := Build(section.CParams{OverallDepth: 250, FlangeWidth: 75, WebThickness: 4.5, FlangeThickness: 7.5})
	require.NotNil(t, c)
	assert.Len(t, c.Outer, 8)
	assert.True(t, c.NonDegenerate())

	l := Build(section.LParams{Depth: 100, Width: 100, Thickness: 7})
	require.NotNil(t, l)
	assert.Len(t, l.Outer, 6)
	assert.True(t, l.NonDegenerate())

	tt := Build(section.TParams{OverallDepth: 200, FlangeWidth: 200, WebThickness: 8, FlangeThickness: 13})
	require.NotNil(t, tt)
	assert.Len(t, tt.Outer, 8)
	assert.True(t, tt.NonDegenerate())
}

func TestBuildCrossH(t *testing.T) {
	p := Build(section.CrossHParams{
		OverallDepth: 450, OverallWidth: 200,
		WebThickness: 9, FlangeThickness: 14,
	})
	require.NotNil(t, p)
	// two overlapping arms, no boolean union
	require.Len(t, p.Extra, 1)
	assert.Len(t, p.Outer, 12)
	assert.Len(t, p.Extra[0], 12)
	assert.True(t, p.NonDegenerate())
}

func TestBuildInvalid(t *testing.T) {
	// invalid parameters return nil, never a zero-area polygon
	assert.Nil(t, Build(section.RectangleParams{Width: 0, Height: 300}))
	assert.Nil(t, Build(section.CircleParams{Diameter: -1}))
	assert.Nil(t, Build(section.HParams{OverallDepth: 20, OverallWidth: 200, WebThickness: 9, FlangeThickness: 14}))
	assert.Nil(t, Build(section.BoxParams{Width: 20, Height: 300, Thickness: 12}))
	assert.Nil(t, Build(section.PipeParams{Diameter: 100, WallThickness: 60}))
}

func TestAllFamiliesFromDefaults(t *testing.T) {
	// every family builds a non-degenerate profile from pure defaults
	for fam := section.Rectangle; fam < section.FamilyN; fam++ {
		p := Build(section.MapParams(nil, fam))
		require.NotNil(t, p, fam.String())
		assert.True(t, p.NonDegenerate(), fam.String())
		assert.GreaterOrEqual(t, len(p.Outer), 3, fam.String())
	}
}
