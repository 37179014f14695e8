// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func tolAssertEqualVector3(t *testing.T, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, standardTol)
	assert.InDelta(t, vt.Y, va.Y, standardTol)
	assert.InDelta(t, vt.Z, va.Z, standardTol)
}

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, Vec2(1, 1), Vec2(4, 5).Sub(v))
	assert.Equal(t, float32(0), Vec2(1, 0).Dot(Vec2(0, 1)))
	assert.Equal(t, float32(1), Vec2(1, 0).Cross(Vec2(0, 1)))

	n := v.Normal()
	assert.InDelta(t, 1, float64(n.Length()), standardTol)

	r := Vec2(1, 0).Rotate(DegToRad(90))
	assert.InDelta(t, 0, float64(r.X), standardTol)
	assert.InDelta(t, 1, float64(r.Y), standardTol)

	assert.Equal(t, Vec2(5, 0), Vec2(0, 0).Lerp(Vec2(10, 0), 0.5))
	assert.Equal(t, Vector2{}, Vec2(0, 0).Normal())
}

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 2)
	assert.Equal(t, float32(3), v.Length())
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, float32(3000), Vec3(0, 0, 0).DistanceTo(Vec3(0, 0, 3000)))

	n := Vec3(10, 0, 10).Normal()
	assert.InDelta(t, 1, float64(n.Length()), standardTol)

	assert.True(t, Vec3(1, 2, 3).IsFinite())
	assert.False(t, Vec3(Infinity, 0, 0).IsFinite())
}

func TestQuatAxisAngle(t *testing.T) {
	// 90 degrees about Z takes +X to +Y
	q := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	tolAssertEqualVector3(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))

	// identity leaves vectors unchanged
	var id Quat
	id.SetIdentity()
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(id))
}

func TestQuatFromUnitVectors(t *testing.T) {
	tests := []struct {
		from, to Vector3
	}{
		{Vec3(0, 0, 1), Vec3(1, 0, 0)},
		{Vec3(0, 0, 1), Vec3(0, 0, 1)},
		{Vec3(0, 0, 1), Vec3(0, 0, -1)},
		{Vec3(0, 0, 1), Vec3(0.577350269, 0.577350269, 0.577350269)},
	}
	for _, tc := range tests {
		var q Quat
		q.SetFromUnitVectors(tc.from, tc.to)
		assert.InDelta(t, 1, float64(q.Length()), standardTol)
		tolAssertEqualVector3(t, tc.to, tc.from.MulQuat(q))
	}
}

func TestQuatFromRotationAxes(t *testing.T) {
	// identity basis
	var q Quat
	q.SetFromRotationAxes(Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1))
	tolAssertEqualVector3(t, Vec3(1, 0, 0), Vec3(1, 0, 0).MulQuat(q))

	// basis with member axis along +X: local Z must map onto +X
	q.SetFromRotationAxes(Vec3(0, 1, 0), Vec3(0, 0, 1), Vec3(1, 0, 0))
	tolAssertEqualVector3(t, Vec3(1, 0, 0), Vec3(0, 0, 1).MulQuat(q))
	tolAssertEqualVector3(t, Vec3(0, 0, 1), Vec3(0, 1, 0).MulQuat(q))
}

func TestQuatMul(t *testing.T) {
	qa := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(45))
	qb := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(45))
	q := qa.Mul(qb)
	tolAssertEqualVector3(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))

	inv := q.Inverse()
	tolAssertEqualVector3(t, Vec3(1, 0, 0), Vec3(0, 1, 0).MulQuat(inv))
}
