// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"github.com/stbgeom/stbgeom/dims"
	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/placement"
	"github.com/stbgeom/stbgeom/profile"
	"github.com/stbgeom/stbgeom/section"
)

// planar generates a polygon-plus-thickness member: walls, slabs,
// and footings. A single anchor extrudes the section profile by its
// depth below the node; three or more define a polygon mid-plane
// with the solid extruding half the thickness to each side of it.
func (gc *Context) planar(el *Element) ([]*Solid, *Skip) {
	pts, ok := gc.anchors(el)
	if !ok {
		return nil, skipOf(el, SkipMissingNodes, ErrMissingNodes)
	}
	sec, ok := gc.sectionOf(el)
	if !ok {
		return nil, skipOf(el, SkipMissingSection, ErrMissingSection)
	}
	if len(pts) == 1 {
		return gc.pointSolid(el, sec, pts[0])
	}
	if len(pts) < 3 {
		return nil, skipOf(el, SkipMissingNodes, ErrMissingNodes)
	}

	d, src := gc.resolveDims(sec, nil)
	t := planarThickness(d)
	if t <= 0 {
		return nil, skipOf(el, SkipDegenerateProfile, ErrDegenerateProfile)
	}

	n := newellNormal(pts)
	if n.Length() == 0 || !n.IsFinite() {
		return nil, skipOf(el, SkipDegenerateGeometry, ErrDegenerateGeometry)
	}
	normal := n.Normal()

	// plane basis: u/v span the polygon plane, normal is the
	// extrusion axis
	ref := math32.Vec3(0, 0, 1)
	if math32.Abs(normal.Dot(ref)) > 0.9999 {
		ref = math32.Vec3(1, 0, 0)
	}
	u := ref.Cross(normal).Normal()
	v := normal.Cross(u)

	centroid := math32.Vector3{}
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.DivScalar(float32(len(pts)))

	loop := make([]math32.Vector2, len(pts))
	for i, p := range pts {
		r := p.Sub(centroid)
		loop[i] = math32.Vec2(r.Dot(u), r.Dot(v))
	}
	if loopArea2(loop) < 0 {
		for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
			loop[i], loop[j] = loop[j], loop[i]
		}
	}
	prof := &profile.Profile{Outer: loop}
	if !prof.NonDegenerate() {
		return nil, skipOf(el, SkipDegenerateProfile, ErrDegenerateProfile)
	}

	var rot math32.Quat
	rot.SetFromRotationAxes(u, v, normal)
	pl := &placement.Placement{
		Center:    centroid,
		Length:    t,
		Direction: normal,
		Rotation:  rot,
	}
	return []*Solid{{
		Profile:   prof,
		Placement: pl,
		Family:    section.Rectangle,
		Meta:      gc.metaOf(el, sec, section.Rectangle, src),
	}}, nil
}

// pointSolid generates a member anchored at a single node, the usual
// footing form: the section profile extruded downward by its depth,
// top face at the node. End offsets shift the footprint in the
// horizontal plane.
func (gc *Context) pointSolid(el *Element, sec *SectionRecord, node math32.Vector3) ([]*Solid, *Skip) {
	d, src := gc.resolveDims(sec, nil)
	fam := section.Classify(d, sec.SteelType)
	prof := profile.Build(section.MapParams(d, fam))
	if !prof.NonDegenerate() {
		return nil, skipOf(el, SkipDegenerateProfile, ErrDegenerateProfile)
	}
	depth := extrusionDepth(d)
	if depth <= 0 {
		return nil, skipOf(el, SkipInvalidLength, ErrMissingDepth)
	}

	roll := el.Roll + section.ReferenceRotation(el.ReferenceDirection)
	off := math32.Vec2(el.StartOffset.X, el.StartOffset.Y)
	pl, err := placement.Vertical(node.Sub(math32.Vec3(0, 0, depth)), node, off, off, roll)
	if err != nil {
		return nil, skipOf(el, SkipDegenerateGeometry, err)
	}
	return []*Solid{{
		Profile:   prof,
		Placement: pl,
		Family:    fam,
		Meta:      gc.metaOf(el, sec, fam, src),
	}}, nil
}

// extrusionDepth picks the vertical extent of a single-node member.
func extrusionDepth(d *dims.Dimensions) float32 {
	if d == nil {
		return 0
	}
	for _, s := range []dims.Scalar{d.Depth, d.Thickness, d.Height} {
		if s.Positive() {
			return s.Value
		}
	}
	return 0
}

// planarThickness picks the extrusion thickness from the normalized
// section dimensions.
func planarThickness(d *dims.Dimensions) float32 {
	if d == nil {
		return 0
	}
	for _, s := range []dims.Scalar{d.Thickness, d.WallThickness, d.Depth, d.Height} {
		if s.Positive() {
			return s.Value
		}
	}
	return 0
}

// newellNormal returns the (unnormalized) Newell plane normal of a
// 3D polygon; robust for non-convex and slightly non-planar rings.
func newellNormal(pts []math32.Vector3) math32.Vector3 {
	var n math32.Vector3
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n
}

// loopArea2 returns twice the signed shoelace area of a 2D loop.
func loopArea2(loop []math32.Vector2) float32 {
	var sum float32
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		sum += p.X*q.Y - p.Y*q.X
	}
	return sum
}
