// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/profile"
	"github.com/stbgeom/stbgeom/section"
)

func rect(t *testing.T, w, h float32) *profile.Profile {
	t.Helper()
	p := profile.Build(section.RectangleParams{Width: w, Height: h})
	require.NotNil(t, p)
	return p
}

func circle(t *testing.T, d float32) *profile.Profile {
	t.Helper()
	p := profile.Build(section.CircleParams{Diameter: d})
	require.NotNil(t, p)
	return p
}

func boundsOf(loop []math32.Vector2) (min, max math32.Vector2) {
	min = math32.Vec2(math32.Infinity, math32.Infinity)
	max = min.Negate()
	for _, v := range loop {
		min.X = math32.Min(min.X, v.X)
		min.Y = math32.Min(min.Y, v.Y)
		max.X = math32.Max(max.X, v.X)
		max.Y = math32.Max(max.Y, v.Y)
	}
	return
}

func TestBuildUniformPrism(t *testing.T) {
	p := rect(t, 400, 400)
	s := &Spec{Stations: []Station{Bottom(p), Top(p)}}
	sol, err := Build(s, 3000)
	require.NoError(t, err)

	assert.Equal(t, float32(3000), sol.Length)
	require.Len(t, sol.Rings, 2)
	assert.Len(t, sol.Vertices, 8)
	// 4 quads, 2 triangles each
	assert.Len(t, sol.Indices, 4*6)

	// axis spans -L/2..+L/2
	assert.Equal(t, float32(-1500), sol.Rings[0][0].Z)
	assert.Equal(t, float32(1500), sol.Rings[1][0].Z)

	// every cross-section of a prism is the unchanged profile
	for _, tt := range []float32{0, 0.25, 0.5, 1} {
		cs, err := s.CrossSectionAt(tt)
		require.NoError(t, err)
		require.Len(t, cs, 4)
		for i, v := range cs {
			assert.Equal(t, p.Outer[i], v)
		}
	}
}

func TestBuildTapered(t *testing.T) {
	s := &Spec{Stations: []Station{
		Bottom(rect(t, 400, 400)),
		Top(rect(t, 300, 300)),
	}}
	sol, err := Build(s, 3000)
	require.NoError(t, err)
	require.Len(t, sol.Rings, 2)

	// midpoint section is the 350 square
	cs, err := s.CrossSectionAt(0.5)
	require.NoError(t, err)
	min, max := boundsOf(cs)
	assert.InDelta(t, -175, float64(min.X), 1e-3)
	assert.InDelta(t, 175, float64(max.X), 1e-3)
	assert.InDelta(t, 350, float64(max.Y-min.Y), 1e-3)

	// ends are the stations verbatim
	cs, err = s.CrossSectionAt(0)
	require.NoError(t, err)
	min, max = boundsOf(cs)
	assert.InDelta(t, 400, float64(max.X-min.X), 1e-3)
}

func TestBuildCircularTaper(t *testing.T) {
	// circles share a fixed segment count, so they always loft
	s := &Spec{Stations: []Station{
		Bottom(circle(t, 1500)),
		Top(circle(t, 1000)),
	}}
	sol, err := Build(s, 10000)
	require.NoError(t, err)
	assert.Len(t, sol.Rings[0], profile.CircleSegments)

	cs, err := s.CrossSectionAt(0.5)
	require.NoError(t, err)
	r := math32.Sqrt(cs[0].X*cs[0].X + cs[0].Y*cs[0].Y)
	assert.InDelta(t, 625, float64(r), 1e-2)
}

func TestBuildMultiStation(t *testing.T) {
	big := rect(t, 600, 600)
	small := rect(t, 400, 400)
	s := &Spec{Stations: []Station{
		Bottom(big), Center(big), Top(small),
	}}
	sol, err := Build(s, 4000)
	require.NoError(t, err)
	require.Len(t, sol.Rings, 3)
	assert.Equal(t, float32(0), sol.Rings[1][0].Z)

	// first half is uniform, taper begins at the center
	cs, err := s.CrossSectionAt(0.25)
	require.NoError(t, err)
	min, max := boundsOf(cs)
	assert.InDelta(t, 600, float64(max.X-min.X), 1e-3)

	cs, err = s.CrossSectionAt(0.75)
	require.NoError(t, err)
	min, max = boundsOf(cs)
	assert.InDelta(t, 500, float64(max.X-min.X), 1e-3)
}

func TestSegmentOverrides(t *testing.T) {
	a := rect(t, 600, 600)
	b := rect(t, 400, 400)
	s := &Spec{
		Stations:       []Station{Bottom(a), Center(a), Top(b)},
		SegmentLengths: []float32{0, 1000},
	}
	sol, err := Build(s, 4000)
	require.NoError(t, err)
	require.Len(t, sol.Rings, 3)

	// the explicit taper segment is 1000 long; the zero entry takes
	// the remaining 3000
	assert.InDelta(t, -2000, float64(sol.Rings[0][0].Z), 1e-3)
	assert.InDelta(t, 1000, float64(sol.Rings[1][0].Z), 1e-3)
	assert.InDelta(t, 2000, float64(sol.Rings[2][0].Z), 1e-3)
}

func TestSegmentCountMismatch(t *testing.T) {
	a := rect(t, 600, 600)
	s := &Spec{
		Stations:       []Station{Bottom(a), Center(a), Top(a)},
		SegmentLengths: []float32{1000},
	}
	_, err := Build(s, 4000)
	assert.ErrorIs(t, err, ErrBadSegmentCount)
}

func TestSegmentUnderrun(t *testing.T) {
	// all-explicit overrides must cover the member length; a short
	// sum would silently under-span the member
	a := rect(t, 600, 600)
	s := &Spec{
		Stations:       []Station{Bottom(a), Center(a), Top(a)},
		SegmentLengths: []float32{1000, 1000},
	}
	_, err := Build(s, 4000)
	assert.ErrorIs(t, err, ErrSegmentUnderrun)

	// an exact all-explicit sum is fine
	s.SegmentLengths = []float32{1000, 3000}
	sol, err := Build(s, 4000)
	require.NoError(t, err)
	assert.InDelta(t, -1000, float64(sol.Rings[1][0].Z), 1e-3)
}

func TestSegmentOverrun(t *testing.T) {
	a := rect(t, 600, 600)
	s := &Spec{
		Stations:       []Station{Bottom(a), Center(a), Top(a)},
		SegmentLengths: []float32{3000, 3000},
	}
	_, err := Build(s, 4000)
	assert.ErrorIs(t, err, ErrSegmentOverrun)

	s.SegmentLengths = []float32{-1, 0}
	_, err = Build(s, 4000)
	assert.ErrorIs(t, err, ErrSegmentOverrun)
}

func TestBuildErrors(t *testing.T) {
	p := rect(t, 400, 400)

	_, err := Build(&Spec{Stations: []Station{Bottom(p)}}, 3000)
	assert.ErrorIs(t, err, ErrTooFewStations)

	_, err = Build(&Spec{Stations: []Station{Bottom(p), Top(p)}}, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Build(&Spec{Stations: []Station{Bottom(p), Top(circle(t, 400))}}, 3000)
	assert.ErrorIs(t, err, ErrVertexCountMismatch)

	_, err = Build(&Spec{Stations: []Station{Top(p), Bottom(p)}}, 3000)
	assert.ErrorIs(t, err, ErrBadStation)

	// hollow against solid sections cannot loft either
	pipe := profile.Build(section.PipeParams{Diameter: 400, WallThickness: 9})
	require.NotNil(t, pipe)
	_, err = Build(&Spec{Stations: []Station{Bottom(pipe), Top(circle(t, 400))}}, 3000)
	assert.ErrorIs(t, err, ErrVertexCountMismatch)
}

func TestHollowLoft(t *testing.T) {
	pipe := profile.Build(section.PipeParams{Diameter: 400, WallThickness: 9})
	require.NotNil(t, pipe)
	s := &Spec{Stations: []Station{Bottom(pipe), Top(pipe)}}
	sol, err := Build(s, 3000)
	require.NoError(t, err)

	// outer and inner walls both get side meshes
	assert.Len(t, sol.Vertices, 4*profile.CircleSegments)
	assert.Len(t, sol.Indices, 2*profile.CircleSegments*6)
}
