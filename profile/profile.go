// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile constructs 2D cross-section polygons from section
// family parameter records. Profiles are closed vertex loops centered
// at the local origin (on the section bounding box), wound
// counterclockwise, with holes wound clockwise. Round shapes are
// polygonized with a fixed segment count.
package profile

import "github.com/stbgeom/stbgeom/math32"

// CircleSegments is the fixed polygonization segment count for round
// shapes. This is a deliberate accuracy/performance tradeoff shared
// by every circle and pipe profile, and by the loft layer, which
// relies on equal vertex counts between consecutive cross-sections.
const CircleSegments = 32

// Profile is a 2D polygon with holes: one outer loop wound
// counterclockwise, zero or more hole loops wound clockwise
// (hollow sections), and zero or more extra overlapping outer loops
// (the second arm of a cross column, which is deliberately never
// boolean-unioned with the first).
type Profile struct {
	Outer []math32.Vector2
	Holes [][]math32.Vector2
	Extra [][]math32.Vector2
}

// signedArea returns the signed shoelace area of a loop:
// positive for counterclockwise winding.
func signedArea(loop []math32.Vector2) float32 {
	if len(loop) < 3 {
		return 0
	}
	var sum float32
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		sum += p.X*q.Y - p.Y*q.X
	}
	return sum / 2
}

// Area returns the net area of the profile: the outer loop plus any
// extra loops, minus the holes. Winding is ignored.
func (p *Profile) Area() float32 {
	a := math32.Abs(signedArea(p.Outer))
	for _, h := range p.Holes {
		a -= math32.Abs(signedArea(h))
	}
	for _, e := range p.Extra {
		a += math32.Abs(signedArea(e))
	}
	return a
}

// NonDegenerate reports whether the profile is usable downstream:
// at least 3 outer vertices and strictly positive net area.
func (p *Profile) NonDegenerate() bool {
	return p != nil && len(p.Outer) >= 3 && p.Area() > 0
}

// Bounds returns the axis-aligned min and max of the outer loop and
// any extra loops.
func (p *Profile) Bounds() (min, max math32.Vector2) {
	min = math32.Vec2(math32.Infinity, math32.Infinity)
	max = min.Negate()
	expand := func(loop []math32.Vector2) {
		for _, v := range loop {
			min.X = math32.Min(min.X, v.X)
			min.Y = math32.Min(min.Y, v.Y)
			max.X = math32.Max(max.X, v.X)
			max.Y = math32.Max(max.Y, v.Y)
		}
	}
	expand(p.Outer)
	for _, e := range p.Extra {
		expand(e)
	}
	return
}

// Height returns the vertical extent of the profile.
func (p *Profile) Height() float32 {
	min, max := p.Bounds()
	if max.Y < min.Y {
		return 0
	}
	return max.Y - min.Y
}

// Rotated returns a copy of the profile with every loop rotated
// counterclockwise by the given angle in radians.
func (p *Profile) Rotated(angle float32) *Profile {
	rotate := func(loop []math32.Vector2) []math32.Vector2 {
		out := make([]math32.Vector2, len(loop))
		for i, v := range loop {
			out[i] = v.Rotate(angle)
		}
		return out
	}
	np := &Profile{Outer: rotate(p.Outer)}
	for _, h := range p.Holes {
		np.Holes = append(np.Holes, rotate(h))
	}
	for _, e := range p.Extra {
		np.Extra = append(np.Extra, rotate(e))
	}
	return np
}
