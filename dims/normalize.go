// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

import "regexp"

// aliasSet routes a list of source attribute keys, in priority order,
// to one or more canonical dimension fields. Exact key match wins;
// within a set the first matching key wins over later ones. The table
// order and key order are load-bearing: ambiguous legacy inputs rely
// on them, so do not reorder.
type aliasSet struct {
	keys   []string
	assign func(*Dimensions, float32)
}

var aliasTable = []aliasSet{
	{[]string{"width", "Width", "WIDTH", "B", "b", "W"},
		func(d *Dimensions, v float32) { d.Width.set(v) }},
	{[]string{"height", "Height", "HEIGHT", "H", "h"},
		func(d *Dimensions, v float32) { d.Height.set(v) }},
	{[]string{"depth", "Depth", "A", "a"},
		func(d *Dimensions, v float32) { d.Depth.set(v) }},
	{[]string{"overall_depth", "overallDepth", "OverallDepth"},
		func(d *Dimensions, v float32) { d.OverallDepth.set(v) }},
	{[]string{"overall_width", "overallWidth", "OverallWidth"},
		func(d *Dimensions, v float32) { d.OverallWidth.set(v) }},
	{[]string{"outer_width", "outerWidth"},
		func(d *Dimensions, v float32) { d.OuterWidth.set(v); d.Width.set(v) }},
	{[]string{"outer_height", "outerHeight"},
		func(d *Dimensions, v float32) { d.OuterHeight.set(v); d.Height.set(v) }},
	{[]string{"flange_width", "flangeWidth", "bf", "Bf"},
		func(d *Dimensions, v float32) { d.FlangeWidth.set(v) }},
	{[]string{"web_thickness", "webThickness", "t1", "tw"},
		func(d *Dimensions, v float32) { d.WebThickness.set(v) }},
	{[]string{"flange_thickness", "flangeThickness", "t2", "tf"},
		func(d *Dimensions, v float32) { d.FlangeThickness.set(v) }},
	{[]string{"wall_thickness", "wallThickness"},
		func(d *Dimensions, v float32) { d.WallThickness.set(v); d.Thickness.set(v) }},
	{[]string{"thickness", "Thickness", "t", "T"},
		func(d *Dimensions, v float32) { d.Thickness.set(v) }},
}

// Regex fallbacks for width/height, consulted only when no alias
// matched: width_X style keys carry width, width_Y height.
var (
	widthXRegexp = regexp.MustCompile(`(?i)^width_?x$`)
	widthYRegexp = regexp.MustCompile(`(?i)^width_?y$`)
)

// extended-pile attribute keys, collected into the side record.
var extendedKeys = map[string]func(*ExtendedPile, float32){
	"D_axial":                   func(e *ExtendedPile, v float32) { e.Axial.set(v) },
	"D_extended_foot":           func(e *ExtendedPile, v float32) { e.Foot.set(v) },
	"D_extended_top":            func(e *ExtendedPile, v float32) { e.Top.set(v) },
	"length_extended_foot":      func(e *ExtendedPile, v float32) { e.FootLength.set(v) },
	"length_extended_top":       func(e *ExtendedPile, v float32) { e.TopLength.set(v) },
	"angle_extended_foot_taper": func(e *ExtendedPile, v float32) { e.FootTaperAngle.set(v) },
	"angle_extended_top_taper":  func(e *ExtendedPile, v float32) { e.TopTaperAngle.set(v) },
}

// explicit type hint attribute keys, in priority order.
var (
	typeHintKeys    = []string{"section_type", "sectionType", "SectionType", "shape_type", "shapeType"}
	profileHintKeys = []string{"profile_type", "profileType", "ProfileType"}
)

// Normalize derives the canonical [Dimensions] record from an
// attribute bag. It returns nil when the bag contains no recognizable
// dimension field, no type hint, and no extended-pile marker.
// Non-numeric and non-finite values are skipped, never errored.
func Normalize(bag *Bag) *Dimensions {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	d := &Dimensions{}

	for _, as := range aliasTable {
		for _, key := range as.keys {
			if v, ok := bag.Float(key); ok {
				as.assign(d, v)
				break
			}
		}
	}

	// regex fallback for width/height, scanning in attribute order
	if !d.Width.Valid || !d.Height.Valid {
		for _, kv := range bag.Order {
			v, ok := toFloat(kv.Value)
			if !ok {
				continue
			}
			if !d.Width.Valid && widthXRegexp.MatchString(kv.Key) {
				d.Width.set(v)
			} else if !d.Height.Valid && widthYRegexp.MatchString(kv.Key) {
				d.Height.set(v)
			}
		}
	}

	normalizeDiameter(bag, d)
	normalizeExtended(bag, d)
	normalizeHints(bag, d)

	// mirror the primary outline sizes into the steel overall sizes
	if d.Width.Valid {
		d.OverallWidth.derive(d.Width.Value)
	}
	if d.Depth.Valid {
		d.OverallDepth.derive(d.Depth.Value)
	} else if d.Height.Valid {
		d.OverallDepth.derive(d.Height.Value)
	}

	if !d.anyField() {
		return nil
	}
	return d
}

// normalizeDiameter handles the special D attribute: it records the
// diameter, always derives radius as diameter/2, and seeds width and
// height when they were not set by any explicit alias, tagging the
// section as circle-shaped in that case.
func normalizeDiameter(bag *Bag, d *Dimensions) {
	dv, ok := bag.Float("D")
	if !ok {
		dv, ok = bag.Float("d")
	}
	if !ok {
		return
	}
	explicitOutline := d.Width.Explicit() || d.Height.Explicit()
	d.Diameter.set(dv)
	d.Radius.derive(dv / 2)
	d.Width.derive(dv)
	d.Height.derive(dv)
	if !explicitOutline {
		d.Hint = HintCircle
	}
}

// normalizeExtended collects extended-pile attributes and derives the
// pile type by combinational lookup of which extended ends are present.
func normalizeExtended(bag *Bag, d *Dimensions) {
	var ext *ExtendedPile
	for _, kv := range bag.Order {
		assign, ok := extendedKeys[kv.Key]
		if !ok {
			continue
		}
		v, ok := toFloat(kv.Value)
		if !ok {
			continue
		}
		if ext == nil {
			ext = &ExtendedPile{}
		}
		assign(ext, v)
	}
	if ext == nil {
		return
	}
	d.Extended = ext

	// D_axial is the primary diameter when none was otherwise set
	if ext.Axial.Valid && !d.Diameter.Valid {
		d.Diameter.set(ext.Axial.Value)
		d.Radius.derive(ext.Axial.Value / 2)
	}

	switch {
	case ext.Foot.Valid && ext.Top.Valid:
		d.Pile = PileExtendedTopFoot
	case ext.Foot.Valid:
		d.Pile = PileExtendedFoot
	case ext.Top.Valid:
		d.Pile = PileExtendedTop
	default:
		return
	}
	d.Hint = HintExtendedPile
}

// normalizeHints captures raw explicit type hint strings.
func normalizeHints(bag *Bag, d *Dimensions) {
	for _, key := range typeHintKeys {
		if s, ok := bag.Str(key); ok && s != "" {
			d.TypeHint = s
			break
		}
	}
	for _, key := range profileHintKeys {
		if s, ok := bag.Str(key); ok && s != "" {
			d.ProfileTypeHint = s
			break
		}
	}
}

// anyField reports whether any recognizable content was extracted.
func (d *Dimensions) anyField() bool {
	for _, s := range []Scalar{
		d.Width, d.Height, d.Depth,
		d.OverallDepth, d.OverallWidth, d.FlangeWidth,
		d.Thickness, d.WallThickness, d.WebThickness, d.FlangeThickness,
		d.OuterWidth, d.OuterHeight,
		d.Diameter, d.Radius,
	} {
		if s.Valid {
			return true
		}
	}
	return d.TypeHint != "" || d.ProfileTypeHint != "" || d.Extended != nil
}
