// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthHeightAliases(t *testing.T) {
	// every documented alias yields the identical value
	bags := []*Bag{
		BagOf("width", 600.0, "height", 600.0),
		BagOf("Width", 600.0, "Height", 600.0),
		BagOf("B", 600.0, "H", 600.0),
		BagOf("b", 600.0, "h", 600.0),
		BagOf("B", "600", "H", "600"), // XML string values
		BagOf("width_X", 600.0, "width_Y", 600.0),
		BagOf("WIDTH_x", 600.0, "Width_y", 600.0),
	}
	for _, bag := range bags {
		d := Normalize(bag)
		require.NotNil(t, d)
		assert.Equal(t, float32(600), d.Width.Value)
		assert.Equal(t, float32(600), d.Height.Value)
		assert.Equal(t, float32(600), d.OverallWidth.Value)
		assert.Equal(t, float32(600), d.OverallDepth.Value)
		assert.True(t, d.OverallWidth.Derived)
	}
}

func TestAliasPriority(t *testing.T) {
	// first alias in priority order wins over later ones
	d := Normalize(BagOf("B", 500.0, "width", 600.0))
	require.NotNil(t, d)
	assert.Equal(t, float32(600), d.Width.Value)

	// attribute order does not matter, only alias priority
	d = Normalize(BagOf("width", 600.0, "B", 500.0))
	require.NotNil(t, d)
	assert.Equal(t, float32(600), d.Width.Value)
}

func TestDiameterSeeding(t *testing.T) {
	d := Normalize(BagOf("D", "400"))
	require.NotNil(t, d)
	assert.Equal(t, float32(400), d.Width.Value)
	assert.Equal(t, float32(400), d.Height.Value)
	assert.Equal(t, float32(400), d.Diameter.Value)
	assert.Equal(t, float32(200), d.Radius.Value)
	assert.Equal(t, HintCircle, d.Hint)

	// radius is always diameter/2 exactly
	for _, dv := range []float64{1, 318.5, 400, 1200} {
		d := Normalize(BagOf("D", dv))
		require.NotNil(t, d)
		assert.Equal(t, d.Diameter.Value/2, d.Radius.Value)
	}

	// explicit width suppresses the circle hint but not the diameter
	d = Normalize(BagOf("width", 300.0, "D", 400.0))
	require.NotNil(t, d)
	assert.Equal(t, HintNone, d.Hint)
	assert.Equal(t, float32(300), d.Width.Value)
	assert.Equal(t, float32(400), d.Diameter.Value)
	assert.Equal(t, float32(400), d.Height.Value) // seeded, height was unset
}

func TestExtendedPile(t *testing.T) {
	d := Normalize(BagOf(
		"D_axial", 400.0,
		"D_extended_foot", 600.0,
		"length_extended_foot", 1000.0,
		"angle_extended_foot_taper", 15.0,
	))
	require.NotNil(t, d)
	assert.Equal(t, PileExtendedFoot, d.Pile)
	assert.Equal(t, HintExtendedPile, d.Hint)
	assert.Equal(t, float32(400), d.Diameter.Value)
	require.NotNil(t, d.Extended)
	assert.Equal(t, float32(600), d.Extended.Foot.Value)
	assert.Equal(t, float32(1000), d.Extended.FootLength.Value)
	assert.Equal(t, float32(15), d.Extended.FootTaperAngle.Value)

	d = Normalize(BagOf("D_axial", 400.0, "D_extended_top", 500.0))
	require.NotNil(t, d)
	assert.Equal(t, PileExtendedTop, d.Pile)

	d = Normalize(BagOf(
		"D_axial", 400.0,
		"D_extended_top", 500.0,
		"D_extended_foot", 600.0,
	))
	require.NotNil(t, d)
	assert.Equal(t, PileExtendedTopFoot, d.Pile)
	assert.Equal(t, HintExtendedPile, d.Hint)

	// axial only: a straight pile with a plain diameter
	d = Normalize(BagOf("D_axial", 400.0))
	require.NotNil(t, d)
	assert.Equal(t, PileStraight, d.Pile)
	assert.Equal(t, float32(400), d.Diameter.Value)
}

func TestNormalizeIdempotent(t *testing.T) {
	bag := BagOf("B", 600.0, "H", 300.0, "t1", 9.0, "t2", 14.0)
	d1 := Normalize(bag)
	d2 := Normalize(bag)
	assert.Equal(t, d1, d2)
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, Normalize(NewBag()))
	assert.Nil(t, Normalize(BagOf("name", "C1", "floor", "2F")))

	// non-numeric and non-finite values are skipped, not errored
	d := Normalize(BagOf("width", "wide", "height", 300.0))
	require.NotNil(t, d)
	assert.False(t, d.Width.Valid)
	assert.Equal(t, float32(300), d.Height.Value)
}

func TestTypeHints(t *testing.T) {
	d := Normalize(BagOf("section_type", "RECT", "width", 300.0))
	require.NotNil(t, d)
	assert.Equal(t, "RECT", d.TypeHint)

	d = Normalize(BagOf("profile_type", "CHS"))
	require.NotNil(t, d)
	assert.Equal(t, "CHS", d.ProfileTypeHint)
}

func TestSteelAliases(t *testing.T) {
	d := Normalize(BagOf("A", 450.0, "B", 200.0, "t1", 9.0, "t2", 14.0))
	require.NotNil(t, d)
	assert.Equal(t, float32(450), d.Depth.Value)
	assert.Equal(t, float32(200), d.Width.Value)
	assert.Equal(t, float32(9), d.WebThickness.Value)
	assert.Equal(t, float32(14), d.FlangeThickness.Value)
	assert.Equal(t, float32(450), d.OverallDepth.Value)
	assert.Equal(t, float32(200), d.OverallWidth.Value)
}

func TestBagCoercion(t *testing.T) {
	b := BagOf("a", 1, "b", int64(2), "c", float32(3), "d", "4.5", "e", "x")
	for key, want := range map[string]float32{"a": 1, "b": 2, "c": 3, "d": 4.5} {
		v, ok := b.Float(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
	_, ok := b.Float("e")
	assert.False(t, ok)

	assert.Equal(t, True, BagOf("f", true).Bool("f"))
	assert.Equal(t, False, BagOf("f", "false").Bool("f"))
	assert.Equal(t, Unset, BagOf("f", "maybe").Bool("f"))
	assert.Equal(t, Unset, NewBag().Bool("f"))
}
