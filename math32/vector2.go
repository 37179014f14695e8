// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially adapted from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2 is a 2D vector/point with X and Y components.
// Profile cross-sections live in this space, in millimeters,
// centered at the local origin.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the
// given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{X: s, Y: s}
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Add returns the vector sum of this vector with other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns this vector minus other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// MulScalar returns this vector multiplied by scalar s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DivScalar returns this vector divided by scalar s.
// Returns the zero vector for s == 0.
func (v Vector2) DivScalar(s float32) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / s)
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Dot returns the dot product of this vector with other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product of this vector with other,
// which is the Z component of the 3D cross product with Z = 0.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the length squared of this vector.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normal returns this vector divided by its length (its unit vector).
// Returns the zero vector for a zero-length input.
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// DistanceTo returns the distance between these two points.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}

// Lerp returns the linear interpolation between this vector and other
// at parameter t: v + (other - v) * t.
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	return Vector2{v.X + (other.X-v.X)*t, v.Y + (other.Y-v.Y)*t}
}

// Rotate returns this vector rotated counterclockwise by the given
// angle in radians.
func (v Vector2) Rotate(angle float32) Vector2 {
	c := Cos(angle)
	s := Sin(angle)
	return Vector2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}
