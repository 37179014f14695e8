// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement computes the rigid-body transform locating a
// structural member in 3D space from its anchor points, end offsets,
// and roll angle. All functions are pure; degenerate input is
// reported as an error, never as a zero-length placement.
//
// The canonical extrusion axis is +Z: profiles live in the local XY
// plane, and the placement rotation takes local +Z onto the member
// direction.
package placement

import (
	"errors"

	"github.com/stbgeom/stbgeom/math32"
)

// ErrZeroLength is returned when the two anchor points coincide after
// offsets, so no member axis exists.
var ErrZeroLength = errors.New("placement: anchor points are coincident")

// ErrNotFinite is returned when an anchor point carries non-finite
// coordinates.
var ErrNotFinite = errors.New("placement: anchor point is not finite")

// AlignMode selects the vertical alignment of a horizontal member
// relative to the line between its anchors.
type AlignMode int32

const (
	// AlignCenter places the member centerline on the anchor line.
	AlignCenter AlignMode = iota

	// AlignTop places the member's top face on the anchor line by
	// shifting the axis down by half the section height.
	AlignTop
)

// Placement is the rigid transform of one member: the solid's local
// +Z axis, scaled by Length and centered at Center, maps onto the
// member axis under Rotation.
type Placement struct {

	// Center is the midpoint of the (offset-adjusted) member axis.
	Center math32.Vector3

	// Length is the axis length, always > 0.
	Length float32

	// Direction is the unit vector along the member axis.
	Direction math32.Vector3

	// Rotation takes the canonical +Z axis onto Direction, including
	// any roll about the member's own axis.
	Rotation math32.Quat

	// RollAngle is the roll applied about the member axis, in degrees.
	RollAngle float32
}

// zAxis is the canonical extrusion axis.
var zAxis = math32.Vec3(0, 0, 1)

// Vertical computes the placement of a vertical member (column,
// pile) from its bottom and top anchors. End offsets adjust X and Y
// only; they never touch Z. Roll is in degrees, applied about the
// member's own axis after the base orientation.
func Vertical(bottom, top math32.Vector3, bottomOffset, topOffset math32.Vector2, roll float32) (*Placement, error) {
	if !bottom.IsFinite() || !top.IsFinite() {
		return nil, ErrNotFinite
	}
	b := math32.Vec3(bottom.X+bottomOffset.X, bottom.Y+bottomOffset.Y, bottom.Z)
	t := math32.Vec3(top.X+topOffset.X, top.Y+topOffset.Y, top.Z)

	axis := t.Sub(b)
	length := axis.Length()
	if length == 0 {
		return nil, ErrZeroLength
	}
	dir := axis.DivScalar(length)

	var rot math32.Quat
	rot.SetFromUnitVectors(zAxis, dir)
	applyRoll(&rot, roll)

	return &Placement{
		Center:    b.Add(t).MulScalar(0.5),
		Length:    length,
		Direction: dir,
		Rotation:  rot,
		RollAngle: roll,
	}, nil
}

// Horizontal computes the placement of a horizontal member (beam,
// girder, brace) from its start and end anchors. Unlike the vertical
// case, the orientation is built from a full 3-axis basis rather
// than a single from-to rotation, so the member has a deterministic
// up direction independent of roll. The basis is computed from the
// raw anchors; offsets shift the endpoints used for center and
// length but never tilt the direction or up axis. With [AlignTop]
// and a positive section height, both adjusted endpoints are shifted
// down along the basis up axis by height/2 before the center and
// length are computed, so the member's top face sits on the nominal
// anchor line.
func Horizontal(start, end math32.Vector3, startOffset, endOffset math32.Vector3, roll float32, mode AlignMode, sectionHeight float32) (*Placement, error) {
	if !start.IsFinite() || !end.IsFinite() {
		return nil, ErrNotFinite
	}
	axis := end.Sub(start)
	axisLen := axis.Length()
	if axisLen == 0 {
		return nil, ErrZeroLength
	}
	dir := axis.DivScalar(axisLen)

	// local basis: x horizontal and perpendicular to the member,
	// y the member's up, z along the member
	ref := zAxis
	if math32.Abs(dir.Dot(ref)) > 0.9999 {
		// near-vertical member: fall back to world +X as reference
		ref = math32.Vec3(1, 0, 0)
	}
	x := ref.Cross(dir).Normal()
	y := dir.Cross(x)

	s := start.Add(startOffset)
	e := end.Add(endOffset)
	if mode == AlignTop && sectionHeight > 0 {
		shift := y.MulScalar(-sectionHeight / 2)
		s = s.Add(shift)
		e = e.Add(shift)
	}
	length := e.Sub(s).Length()
	if length == 0 {
		return nil, ErrZeroLength
	}

	var rot math32.Quat
	rot.SetFromRotationAxes(x, y, dir)
	applyRoll(&rot, roll)

	return &Placement{
		Center:    s.Add(e).MulScalar(0.5),
		Length:    length,
		Direction: dir,
		Rotation:  rot,
		RollAngle: roll,
	}, nil
}

// applyRoll right-multiplies the roll rotation about the member's
// own axis (the local +Z after the base orientation).
func applyRoll(rot *math32.Quat, roll float32) {
	if roll == 0 {
		return
	}
	rot.SetMul(math32.NewQuatAxisAngle(zAxis, math32.DegToRad(roll)))
}
