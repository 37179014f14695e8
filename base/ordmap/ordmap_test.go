// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdMap(t *testing.T) {
	om := New[string, int]()
	om.Add("B", 600)
	om.Add("H", 600)
	om.Add("t", 12)

	assert.Equal(t, 3, om.Len())

	v, ok := om.ValueByKey("H")
	assert.True(t, ok)
	assert.Equal(t, 600, v)

	_, ok = om.ValueByKey("missing")
	assert.False(t, ok)

	// order is preserved
	assert.Equal(t, "B", om.KeyByIndex(0))
	assert.Equal(t, "t", om.KeyByIndex(2))

	// update in place keeps order
	om.Add("B", 700)
	assert.Equal(t, "B", om.KeyByIndex(0))
	v, _ = om.ValueByKey("B")
	assert.Equal(t, 700, v)

	assert.True(t, om.DeleteKey("H"))
	assert.False(t, om.DeleteKey("H"))
	assert.Equal(t, 2, om.Len())
	i, ok := om.IndexByKey("t")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestMake(t *testing.T) {
	om := Make([]KeyValue[string, float64]{
		{"width", 600},
		{"height", 300},
	})
	assert.Equal(t, 2, om.Len())
	v, ok := om.ValueByKey("height")
	assert.True(t, ok)
	assert.Equal(t, 300.0, v)
	assert.Equal(t, 600.0, om.ValueByIndex(0))
}
