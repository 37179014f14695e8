// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loft builds one solid from two or more cross-section
// profiles positioned along a member axis, by linear interpolation of
// corresponding vertices between consecutive profiles. Consecutive
// profiles must have equal vertex counts; the caller guarantees this
// by regenerating every cross-section from the same family and
// segment count.
//
// Solids are built in local coordinates: the axis is +Z, spanning
// -length/2 at the bottom station to +length/2 at the top. The
// placement layer locates the result in world space.
package loft

import (
	"errors"

	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/profile"
)

var (
	// ErrTooFewStations is returned for fewer than 2 usable
	// cross-sections: a solid cannot be lofted from a single profile.
	ErrTooFewStations = errors.New("loft: fewer than 2 stations")

	// ErrVertexCountMismatch is returned when consecutive profiles
	// do not share the same loop and vertex structure.
	ErrVertexCountMismatch = errors.New("loft: profiles have mismatched vertex counts")

	// ErrInvalidLength is returned for a non-positive member length.
	ErrInvalidLength = errors.New("loft: length must be positive")

	// ErrBadStation is returned when station positions are outside
	// [0, 1] or not strictly increasing.
	ErrBadStation = errors.New("loft: station positions must be strictly increasing within [0, 1]")

	// ErrSegmentOverrun is returned when explicit segment length
	// overrides exceed the member length.
	ErrSegmentOverrun = errors.New("loft: segment length overrides exceed member length")

	// ErrSegmentUnderrun is returned when every override is explicit
	// and their sum falls short of the member length, which would
	// silently under-span the member.
	ErrSegmentUnderrun = errors.New("loft: segment length overrides fall short of member length")

	// ErrBadSegmentCount is returned when the number of segment
	// length overrides is not one less than the station count.
	ErrBadSegmentCount = errors.New("loft: segment override count must be one less than station count")
)

// Station is one positioned cross-section: a profile at a normalized
// axial position t, from 0 at the bottom (start) to 1 at the top (end).
type Station struct {
	T       float32
	Profile *profile.Profile
}

// Bottom returns a station at the bottom of the member.
func Bottom(p *profile.Profile) Station { return Station{T: 0, Profile: p} }

// Center returns a station at the center of the member.
func Center(p *profile.Profile) Station { return Station{T: 0.5, Profile: p} }

// Top returns a station at the top of the member.
func Top(p *profile.Profile) Station { return Station{T: 1, Profile: p} }

// At returns a station at an arbitrary normalized position.
func At(t float32, p *profile.Profile) Station { return Station{T: t, Profile: p} }

// Spec is an ordered multi-section specification: at least two
// positioned profiles, plus optional per-segment length overrides for
// members whose transition zone is shorter than the full span
// (haunch and joint beams). Override entries correspond to the gaps
// between consecutive stations; a zero entry means the segment shares
// the length left over by the explicit entries.
type Spec struct {
	Stations       []Station
	SegmentLengths []float32
}

// Validate checks the spec against the given member length.
func (s *Spec) Validate(length float32) error {
	if length <= 0 || !math32.IsFinite(length) {
		return ErrInvalidLength
	}
	if s == nil || len(s.Stations) < 2 {
		return ErrTooFewStations
	}
	prev := float32(-1)
	for _, st := range s.Stations {
		if st.T < 0 || st.T > 1 || st.T <= prev {
			return ErrBadStation
		}
		prev = st.T
		if !st.Profile.NonDegenerate() {
			return ErrTooFewStations
		}
	}
	first := loopsOf(s.Stations[0].Profile)
	for _, st := range s.Stations[1:] {
		if !sameStructure(first, loopsOf(st.Profile)) {
			return ErrVertexCountMismatch
		}
	}
	if s.SegmentLengths != nil {
		if len(s.SegmentLengths) != len(s.Stations)-1 {
			return ErrBadSegmentCount
		}
		if _, err := s.segmentZ(length); err != nil {
			return err
		}
	}
	return nil
}

// loopsOf returns all loops of a profile: outer, then holes, then
// extra overlapping loops.
func loopsOf(p *profile.Profile) [][]math32.Vector2 {
	loops := [][]math32.Vector2{p.Outer}
	loops = append(loops, p.Holes...)
	loops = append(loops, p.Extra...)
	return loops
}

func sameStructure(a, b [][]math32.Vector2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
	}
	return true
}

// segmentZ computes the station z positions along [-length/2,
// +length/2]. Without overrides, positions follow the normalized
// station parameters. With overrides, explicit positive entries are
// used verbatim and zero entries share the remaining length equally;
// an all-explicit list must cover the member length.
func (s *Spec) segmentZ(length float32) ([]float32, error) {
	n := len(s.Stations)
	zs := make([]float32, n)
	if s.SegmentLengths == nil {
		for i, st := range s.Stations {
			zs[i] = (st.T - 0.5) * length
		}
		return zs, nil
	}
	var explicit float32
	auto := 0
	for _, sl := range s.SegmentLengths {
		if sl < 0 || !math32.IsFinite(sl) {
			return nil, ErrSegmentOverrun
		}
		if sl == 0 {
			auto++
		} else {
			explicit += sl
		}
	}
	if explicit > length*(1+1e-4) {
		return nil, ErrSegmentOverrun
	}
	if auto == 0 && explicit < length*(1-1e-4) {
		return nil, ErrSegmentUnderrun
	}
	var autoLen float32
	if auto > 0 {
		autoLen = (length - explicit) / float32(auto)
	}
	zs[0] = -length / 2
	for i, sl := range s.SegmentLengths {
		if sl == 0 {
			sl = autoLen
		}
		zs[i+1] = zs[i] + sl
	}
	return zs, nil
}

// CrossSectionAt returns the outer loop of the interpolated
// cross-section at normalized position t, clamped to the station
// range. For a spec whose start and end profile are identical, the
// result is the unchanged profile at every t.
func (s *Spec) CrossSectionAt(t float32) ([]math32.Vector2, error) {
	if s == nil || len(s.Stations) < 2 {
		return nil, ErrTooFewStations
	}
	if t <= s.Stations[0].T {
		return copyLoop(s.Stations[0].Profile.Outer), nil
	}
	last := s.Stations[len(s.Stations)-1]
	if t >= last.T {
		return copyLoop(last.Profile.Outer), nil
	}
	for i := 0; i < len(s.Stations)-1; i++ {
		a, b := s.Stations[i], s.Stations[i+1]
		if t > b.T {
			continue
		}
		if len(a.Profile.Outer) != len(b.Profile.Outer) {
			return nil, ErrVertexCountMismatch
		}
		f := (t - a.T) / (b.T - a.T)
		out := make([]math32.Vector2, len(a.Profile.Outer))
		for j := range out {
			out[j] = a.Profile.Outer[j].Lerp(b.Profile.Outer[j], f)
		}
		return out, nil
	}
	return copyLoop(last.Profile.Outer), nil
}

func copyLoop(loop []math32.Vector2) []math32.Vector2 {
	out := make([]math32.Vector2, len(loop))
	copy(out, loop)
	return out
}

// Solid is the lofted geometry in local coordinates: cross-section
// rings at every station, a triangulated side-wall mesh, and the two
// cap outlines. Cap polygons are left untriangulated; robust
// non-convex polygon triangulation belongs to the rendering layer.
type Solid struct {

	// Length is the member length the solid was built for.
	Length float32

	// Rings are the outer cross-section rings at each station.
	Rings [][]math32.Vector3

	// Vertices and Indices are the triangulated side walls of every
	// loop (outer, holes, extra), ring-major.
	Vertices []math32.Vector3
	Indices  []uint32

	// CapStart and CapEnd are the outer outlines at the two ends.
	CapStart []math32.Vector3
	CapEnd   []math32.Vector3
}

// Build lofts the spec into one solid of the given length. For
// exactly 2 stations this is a single tapered (or uniform) solid; for
// more, the same interpolation applies segment by segment, honoring
// any explicit segment length overrides.
func Build(s *Spec, length float32) (*Solid, error) {
	if err := s.Validate(length); err != nil {
		return nil, err
	}
	zs, err := s.segmentZ(length)
	if err != nil {
		return nil, err
	}

	sol := &Solid{Length: length}
	nStations := len(s.Stations)

	for si, st := range s.Stations {
		ring := make([]math32.Vector3, len(st.Profile.Outer))
		for i, v := range st.Profile.Outer {
			ring[i] = math32.Vec3(v.X, v.Y, zs[si])
		}
		sol.Rings = append(sol.Rings, ring)
	}
	sol.CapStart = sol.Rings[0]
	sol.CapEnd = sol.Rings[nStations-1]

	// side walls per loop, ring-major vertex layout
	nLoops := len(loopsOf(s.Stations[0].Profile))
	for li := 0; li < nLoops; li++ {
		base := uint32(len(sol.Vertices))
		n := len(loopsOf(s.Stations[0].Profile)[li])
		for si, st := range s.Stations {
			loop := loopsOf(st.Profile)[li]
			for _, v := range loop {
				sol.Vertices = append(sol.Vertices, math32.Vec3(v.X, v.Y, zs[si]))
			}
			if si == 0 {
				continue
			}
			prev := base + uint32((si-1)*n)
			cur := base + uint32(si*n)
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				a := prev + uint32(i)
				b := prev + uint32(j)
				c := cur + uint32(i)
				d := cur + uint32(j)
				sol.Indices = append(sol.Indices, a, b, d, a, d, c)
			}
		}
	}
	return sol, nil
}
