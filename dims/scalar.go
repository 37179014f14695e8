// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dims

// Scalar is an optional float32 dimension value. The zero value is
// "not present". Derived marks values that the normalizer computed
// from other fields (radius from diameter, mirrored overall sizes)
// rather than read from an explicit source attribute; derived values
// never override explicit ones.
type Scalar struct {
	Value   float32
	Valid   bool
	Derived bool
}

// Val returns a Scalar holding an explicit value.
func Val(v float32) Scalar {
	return Scalar{Value: v, Valid: true}
}

// Derive returns a Scalar holding a derived value.
func Derive(v float32) Scalar {
	return Scalar{Value: v, Valid: true, Derived: true}
}

// Or returns the value if present, otherwise the given default.
func (s Scalar) Or(def float32) float32 {
	if s.Valid {
		return s.Value
	}
	return def
}

// Positive reports whether the value is present and strictly positive.
func (s Scalar) Positive() bool {
	return s.Valid && s.Value > 0
}

// Explicit reports whether the value is present and came from an
// explicit source attribute.
func (s Scalar) Explicit() bool {
	return s.Valid && !s.Derived
}

// set assigns an explicit value only if none is present yet, so the
// first alias in priority order wins.
func (s *Scalar) set(v float32) {
	if !s.Valid {
		*s = Val(v)
	}
}

// derive assigns a derived value only if none is present yet.
func (s *Scalar) derive(v float32) {
	if !s.Valid {
		*s = Derive(v)
	}
}

// Tristate is a three-valued flag for attributes that distinguish an
// explicitly false value from an absent one.
type Tristate int32

const (
	// Unset means the attribute was not present.
	Unset Tristate = iota

	// True means the attribute was explicitly true.
	True

	// False means the attribute was explicitly false.
	False
)

// TristateOf returns the Tristate for an explicit bool value.
func TristateOf(b bool) Tristate {
	if b {
		return True
	}
	return False
}
