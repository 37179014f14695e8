// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"strings"

	"github.com/stbgeom/stbgeom/dims"
)

// familyAliases maps normalized explicit type tags to families.
// Tags are matched after uppercasing and mapping "-" to "_".
var familyAliases = map[string]Family{
	"RECT":        Rectangle,
	"RECTANGLE":   Rectangle,
	"SQUARE":      Rectangle,
	"CIRCLE":      Circle,
	"ROUND":       Circle,
	"O":           Circle,
	"H":           H,
	"I":           H,
	"WF":          H,
	"WIDE_FLANGE": H,
	"BOX":         Box,
	"RHS":         Box,
	"SHS":         Box,
	"PIPE":        Pipe,
	"CHS":         Pipe,
	"P":           Pipe,
	"C":           C,
	"CHANNEL":     C,
	"U":           C,
	"L":           L,
	"ANGLE":       L,
	"T":           T,
	"TEE":         T,
	"CT":          T,
	"CROSS":       CrossH,
	"CROSS_H":     CrossH,
	"CROSSH":      CrossH,
	"X":           CrossH,
}

// FamilyFromTag resolves an explicit type tag through the alias
// table, reporting false for unknown tags.
func FamilyFromTag(tag string) (Family, bool) {
	key := strings.ToUpper(strings.TrimSpace(tag))
	key = strings.ReplaceAll(key, "-", "_")
	f, ok := familyAliases[key]
	return f, ok
}

// Classify resolves exactly one section family. Resolution order,
// first success wins: the explicit section type tag, the profile type
// tag, the nested steel-shape type tag, then inference from which
// dimension fields are present. It is total: every input, including
// nil, resolves to a family, with [Rectangle] as the documented
// default. It never errors.
func Classify(d *dims.Dimensions, steelType string) Family {
	if d != nil {
		if f, ok := FamilyFromTag(d.TypeHint); ok {
			return f
		}
		if f, ok := FamilyFromTag(d.ProfileTypeHint); ok {
			return f
		}
	}
	if f, ok := FamilyFromTag(steelType); ok {
		return f
	}
	return infer(d)
}

// infer derives the family from which dimension fields are present,
// in the fixed documented precedence. The order is load-bearing:
// hollow shapes are checked before open steel shapes, and circle
// before the rectangle default.
func infer(d *dims.Dimensions) Family {
	if d == nil {
		return Rectangle
	}
	switch {
	case d.Diameter.Valid && (d.WallThickness.Valid || d.Thickness.Valid):
		return Pipe
	case d.OuterHeight.Valid && d.OuterWidth.Valid && d.WallThickness.Valid:
		return Box
	case d.Width.Valid && d.Height.Valid && d.Thickness.Valid:
		return Box
	case d.OverallDepth.Valid && d.OverallWidth.Valid &&
		d.WebThickness.Valid && d.FlangeThickness.Valid:
		return H
	case d.OverallDepth.Valid && d.FlangeWidth.Valid &&
		d.WebThickness.Valid && d.FlangeThickness.Valid:
		return C
	case d.Depth.Valid && d.Width.Valid && d.Thickness.Valid &&
		!d.WebThickness.Valid && !d.OverallDepth.Explicit():
		return L
	case d.Diameter.Valid:
		return Circle
	default:
		return Rectangle
	}
}

// ReferenceRotation returns the rotation adjustment in degrees for
// the reference-direction flag: an explicit false flips the nominal
// cross-section orientation by exactly 90 degrees; true or absent
// adds nothing.
func ReferenceRotation(ref dims.Tristate) float32 {
	if ref == dims.False {
		return 90
	}
	return 0
}
