// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

import (
	"strconv"

	"github.com/stbgeom/stbgeom/base/ordmap"
	"github.com/stbgeom/stbgeom/math32"
)

// Bag is an ordered attribute dictionary as delivered by the XML or
// JSON layer: attribute name to scalar value, with source-dependent
// key casing and naming. Values are numeric or string; numeric values
// frequently arrive as strings from XML attributes. A Bag is owned by
// the caller and treated as read-only by the engine.
type Bag struct {
	ordmap.Map[string, any]
}

// NewBag returns a new empty attribute bag.
func NewBag() *Bag {
	b := &Bag{}
	b.Init()
	return b
}

// BagOf returns a new bag with the given keys and values, in order.
// It is primarily a convenience for tests and JSON conversion.
func BagOf(kv ...any) *Bag {
	b := NewBag()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		b.Add(key, kv[i+1])
	}
	return b
}

// Float returns the value for the given key coerced to a finite
// float32. Missing keys, non-numeric strings, and non-finite values
// all report false.
func (b *Bag) Float(key string) (float32, bool) {
	if b == nil {
		return 0, false
	}
	v, ok := b.ValueByKey(key)
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Str returns the value for the given key as a string,
// reporting false for missing keys and non-string values.
func (b *Bag) Str(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	v, ok := b.ValueByKey(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns the value for the given key as a [Tristate]:
// Unset for missing keys and unrecognized values, True/False for
// bools and the usual string spellings.
func (b *Bag) Bool(key string) Tristate {
	if b == nil {
		return Unset
	}
	v, ok := b.ValueByKey(key)
	if !ok {
		return Unset
	}
	switch tv := v.(type) {
	case bool:
		return TristateOf(tv)
	case string:
		switch tv {
		case "true", "True", "TRUE", "1":
			return True
		case "false", "False", "FALSE", "0":
			return False
		}
	}
	return Unset
}

// toFloat coerces an attribute value to a finite float32.
func toFloat(v any) (float32, bool) {
	var f float32
	switch tv := v.(type) {
	case float32:
		f = tv
	case float64:
		f = float32(tv)
	case int:
		f = float32(tv)
	case int64:
		f = float32(tv)
	case string:
		fv, err := strconv.ParseFloat(tv, 32)
		if err != nil {
			return 0, false
		}
		f = float32(fv)
	default:
		return 0, false
	}
	if !math32.IsFinite(f) {
		return 0, false
	}
	return f, true
}
