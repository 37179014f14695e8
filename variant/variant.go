// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variant expands a member's section-variation markup (the
// Same / NotSame / Haunch / Joint / FiveTypes sub-records of an
// ST-Bridge section) into an ordered list of positioned section
// descriptors. The category priority is a documented design decision
// and must not be reordered: some legacy inputs carry both Same and
// NotSame markup simultaneously, and Same must win.
package variant

import (
	"strings"

	"github.com/stbgeom/stbgeom/dims"
)

//go:generate stringer -type=Position
//go:generate stringer -type=Source

// Position is the axial position tag of a section descriptor along
// the member, bottom to top (or start to end for horizontal members).
type Position int32

const (
	// PosUnset means the sub-record carried no explicit position.
	PosUnset Position = iota

	PosBottom
	PosCenter
	PosTop

	PositionN
)

// Source identifies which markup category produced the expansion.
type Source int32

const (
	// SourceNone means no usable markup was found at all.
	SourceNone Source = iota

	// SourceSame is a uniform section.
	SourceSame

	// SourceNotSame is an explicit per-position variant list.
	SourceNotSame

	// SourceMultiSection is a beam Haunch/Joint/FiveTypes list.
	SourceMultiSection

	// SourceFallback is the first descendant carrying a shape
	// attribute, used when no tagged category matched.
	SourceFallback

	SourceN
)

// Record is one tagged sub-record of a section's variant markup,
// as delivered by the (external) XML/JSON layer.
type Record struct {

	// Tag is the markup tag name, e.g. StbSecSteelColumn_S_Same.
	Tag string

	// Shape is the named steel-shape reference, if any.
	Shape string

	// Pos is the explicit axial position, if any.
	Pos Position

	// Attrs holds the sub-record's raw attributes.
	Attrs *dims.Bag

	// Children are nested sub-records, in document order.
	Children []*Record
}

// Descriptor is one positioned section reference produced by
// expansion.
type Descriptor struct {
	Tag   string
	Shape string
	Pos   Position
	Attrs *dims.Bag
}

// Expansion is the result of expanding one member's variant markup.
type Expansion struct {

	// Uniform is the single descriptor of a Same section, nil otherwise.
	Uniform *Descriptor

	// Variants are the NotSame descriptors, in document order.
	Variants []Descriptor

	// MultiSection are the Haunch/Joint/FiveTypes descriptors,
	// in document order.
	MultiSection []Descriptor

	// Source is the category that won.
	Source Source

	// PrimaryShape is the shape of whichever category won.
	PrimaryShape string
}

// multiSectionTags are the beam-specific multi-section markers.
var multiSectionTags = []string{"Haunch", "Joint", "FiveTypes"}

// isSameTag reports whether the tag marks a uniform section.
// NotSame contains "Same" as a substring, so it must be excluded.
func isSameTag(tag string) bool {
	return strings.Contains(tag, "Same") && !strings.Contains(tag, "NotSame")
}

func isNotSameTag(tag string) bool {
	return strings.Contains(tag, "NotSame")
}

func isMultiSectionTag(tag string) bool {
	for _, m := range multiSectionTags {
		if strings.Contains(tag, m) {
			return true
		}
	}
	return false
}

// Expand resolves a member's variant markup. Rule order, first
// non-empty category wins:
//  1. a Same tag: the single uniform descriptor;
//  2. all NotSame tags, defaulting unset positions to top;
//  3. all Haunch/Joint/FiveTypes tags, defaulting unset positions
//     to center;
//  4. the first descendant carrying a shape attribute, depth-first,
//     tagged as a fallback descriptor.
//
// A nil root yields an empty expansion with [SourceNone].
func Expand(root *Record) *Expansion {
	ex := &Expansion{}
	if root == nil {
		return ex
	}

	for _, c := range root.Children {
		if isSameTag(c.Tag) {
			d := descriptorOf(c, PosUnset)
			ex.Uniform = &d
			ex.Source = SourceSame
			ex.PrimaryShape = d.Shape
			return ex
		}
	}

	for _, c := range root.Children {
		if isNotSameTag(c.Tag) {
			ex.Variants = append(ex.Variants, descriptorOf(c, PosTop))
		}
	}
	if len(ex.Variants) > 0 {
		ex.Source = SourceNotSame
		ex.PrimaryShape = ex.Variants[0].Shape
		return ex
	}

	for _, c := range root.Children {
		if isMultiSectionTag(c.Tag) {
			ex.MultiSection = append(ex.MultiSection, descriptorOf(c, PosCenter))
		}
	}
	if len(ex.MultiSection) > 0 {
		ex.Source = SourceMultiSection
		ex.PrimaryShape = ex.MultiSection[0].Shape
		return ex
	}

	if fb := firstShaped(root); fb != nil {
		d := descriptorOf(fb, PosUnset)
		ex.Uniform = &d
		ex.Source = SourceFallback
		ex.PrimaryShape = d.Shape
	}
	return ex
}

// descriptorOf builds a descriptor, substituting the default position
// when the record carries none.
func descriptorOf(r *Record, def Position) Descriptor {
	pos := r.Pos
	if pos == PosUnset {
		pos = def
	}
	return Descriptor{Tag: r.Tag, Shape: r.Shape, Pos: pos, Attrs: r.Attrs}
}

// firstShaped returns the first descendant with a shape attribute,
// depth-first in document order.
func firstShaped(r *Record) *Record {
	for _, c := range r.Children {
		if c.Shape != "" {
			return c
		}
		if found := firstShaped(c); found != nil {
			return found
		}
	}
	return nil
}
