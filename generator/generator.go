// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generator orchestrates the geometry pipeline per structural
// element: resolve nodes and section, classify the section family,
// build the profile(s), compute the placement, validate, and emit
// solids with provenance metadata. Each element either succeeds with
// one or more solids or is skipped with a specific reason tag; one
// bad record never aborts the batch.
//
// All collaborators (node positions, section records, steel-shape
// catalog, logger) are supplied through an explicit [Context]; the
// package holds no global state.
package generator

import (
	"errors"

	"log/slog"

	"github.com/google/uuid"

	"github.com/stbgeom/stbgeom/dims"
	"github.com/stbgeom/stbgeom/loft"
	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/placement"
	"github.com/stbgeom/stbgeom/profile"
	"github.com/stbgeom/stbgeom/section"
	"github.com/stbgeom/stbgeom/variant"
)

//go:generate stringer -type=Kind
//go:generate stringer -type=SkipReason
//go:generate stringer -type=ProfileSource

// Kind is the closed set of structural element families the
// generator dispatches on.
type Kind int32

const (
	Column Kind = iota
	Post
	Girder
	Beam
	Brace
	Pile
	FoundationColumn
	Footing
	Wall
	Slab

	KindN
)

// vertical reports whether the member runs bottom to top, with end
// offsets constrained to the horizontal plane.
func (k Kind) vertical() bool {
	switch k {
	case Column, Post, FoundationColumn, Pile:
		return true
	}
	return false
}

// planar reports whether the member is defined by a node polygon and
// a thickness rather than a two-anchor axis.
func (k Kind) planar() bool {
	switch k {
	case Footing, Wall, Slab:
		return true
	}
	return false
}

// SkipReason tags why an element was skipped.
type SkipReason int32

const (
	SkipMissingNodes SkipReason = iota
	SkipMissingSection
	SkipInvalidLength
	SkipDegenerateProfile
	SkipDegenerateGeometry
	SkipUnknownKind

	SkipReasonN
)

// ProfileSource documents the provenance of a solid's profile, for
// the inspection UI to explain why a given shape was chosen.
type ProfileSource int32

const (
	// SourceCalculator means the profile was computed from the
	// section record's own dimension attributes.
	SourceCalculator ProfileSource = iota

	// SourceIFCEquivalent means the profile came from a named
	// steel-shape catalog record.
	SourceIFCEquivalent

	// SourceFallback means defaults or fallback markup filled in for
	// missing data.
	SourceFallback

	ProfileSourceN
)

var (
	// ErrMissingNodes is recorded when a node reference cannot be
	// resolved or too few anchors exist for the element kind.
	ErrMissingNodes = errors.New("generator: node reference not resolvable")

	// ErrMissingSection is recorded when the section reference cannot
	// be resolved.
	ErrMissingSection = errors.New("generator: section reference not resolvable")

	// ErrDegenerateProfile is recorded when no usable cross-section
	// polygon could be built.
	ErrDegenerateProfile = errors.New("generator: profile is degenerate")

	// ErrDegenerateGeometry is recorded for non-finite or
	// zero-extent spatial input.
	ErrDegenerateGeometry = errors.New("generator: geometry is degenerate")

	// ErrMissingDepth is recorded when a single-node member has no
	// usable extrusion depth.
	ErrMissingDepth = errors.New("generator: no usable extrusion depth")

	// ErrTaperOverrun is recorded when extended-pile taper zones do
	// not fit inside the member length.
	ErrTaperOverrun = errors.New("generator: extended pile tapers exceed member length")

	// ErrUnknownKind is recorded for an element kind outside the
	// dispatch table.
	ErrUnknownKind = errors.New("generator: unknown element kind")
)

// Element is one structural member as delivered by the (external)
// XML/JSON layer: node references or raw coordinates, a section
// reference, end offsets, and the rotation attributes. Elements are
// never mutated by the engine.
type Element struct {
	ID   string
	Kind Kind
	Name string

	// NodeIDs reference nodes in the batch node map. Coords carries
	// raw coordinates instead for JSON-sourced input; NodeIDs wins
	// when both are present.
	NodeIDs []string
	Coords  []math32.Vector3

	SectionID string

	// StartOffset and EndOffset adjust the two anchors. Vertical
	// members use only the X and Y components.
	StartOffset math32.Vector3
	EndOffset   math32.Vector3

	// Roll is the rotation about the member's own axis, in degrees.
	Roll float32

	// ReferenceDirection, when explicitly false, flips the nominal
	// cross-section orientation by 90 degrees.
	ReferenceDirection dims.Tristate
}

// SectionRecord is one resolved section descriptor: raw dimension
// attributes, the nested steel-shape type tag, optional variant
// markup, and an optional base-plate attribute bag for columns.
type SectionRecord struct {
	ID   string
	Name string

	// Attrs holds the record's raw dimension attributes.
	Attrs *dims.Bag

	// SteelType is the nested steel-shape type tag, if any.
	SteelType string

	// Variants is the section-variation markup subtree, if any.
	Variants *variant.Record

	// BasePlate holds base-plate attributes; a column section
	// carrying one emits a second solid at the column foot.
	BasePlate *dims.Bag
}

// NodeProvider resolves node identifiers to 3D points. Lookups report
// absence instead of erroring.
type NodeProvider interface {
	Node(id string) (math32.Vector3, bool)
}

// SectionProvider resolves section identifiers to section records.
type SectionProvider interface {
	Section(id string) (*SectionRecord, bool)
}

// SteelShapeProvider resolves named steel-shape references to their
// dimension bags.
type SteelShapeProvider interface {
	SteelShape(name string) (*dims.Bag, bool)
}

// NodeMap is the map-backed [NodeProvider].
type NodeMap map[string]math32.Vector3

func (m NodeMap) Node(id string) (math32.Vector3, bool) {
	p, ok := m[id]
	return p, ok
}

// SectionMap is the map-backed [SectionProvider].
type SectionMap map[string]*SectionRecord

func (m SectionMap) Section(id string) (*SectionRecord, bool) {
	s, ok := m[id]
	return s, ok
}

// SteelShapeMap is the map-backed [SteelShapeProvider].
type SteelShapeMap map[string]*dims.Bag

func (m SteelShapeMap) SteelShape(name string) (*dims.Bag, bool) {
	b, ok := m[name]
	return b, ok
}

// Context carries the read-only collaborators for one batch. The
// providers are shared by immutable reference; the generator never
// writes to them.
type Context struct {
	Nodes       NodeProvider
	Sections    SectionProvider
	SteelShapes SteelShapeProvider
	Logger      *slog.Logger
}

func (gc *Context) logger() *slog.Logger {
	if gc.Logger != nil {
		return gc.Logger
	}
	return slog.Default()
}

// Meta is the provenance record attached to every solid.
type Meta struct {

	// ID is a stable unique identity for the solid.
	ID uuid.UUID

	// ElementID and ElementName identify the source element.
	ElementID   string
	ElementName string

	Kind   Kind
	Family section.Family
	Source ProfileSource

	// Raw is the original section attribute bag, if any.
	Raw *dims.Bag
}

// Solid is the renderer-agnostic output for one generated body. Loft
// is set for members whose cross-section varies along the axis; the
// uniform Profile is always set and describes the primary section.
type Solid struct {
	Profile   *profile.Profile
	Loft      *loft.Solid
	Placement *placement.Placement
	Family    section.Family
	Meta      Meta
}

// Skip records one skipped element with its reason tag.
type Skip struct {
	ElementID string
	Kind      Kind
	Reason    SkipReason
	Err       error
}

// Batch is the result of generating one batch of elements.
type Batch struct {
	Solids  []*Solid
	Skipped []Skip
}

// SkipCounts returns the number of skipped elements per reason.
func (b *Batch) SkipCounts() map[SkipReason]int {
	counts := map[SkipReason]int{}
	for _, s := range b.Skipped {
		counts[s.Reason]++
	}
	return counts
}
