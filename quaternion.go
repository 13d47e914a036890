package main

import "math"

// Quaternion represents a rotation, used by Mesh.SetPose to build a mesh's
// world orientation without the drift of repeated Euler-angle composition.
type Quaternion struct {
	W, X, Y, Z float64
}

func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle builds a rotation of angle radians around axis.
func QuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	axis = axis.Normalize()
	half := angle * 0.5
	s := math.Sin(half)
	return Quaternion{W: math.Cos(half), X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s}
}

func (q Quaternion) Normalize() Quaternion {
	length := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if length < 1e-10 {
		return IdentityQuaternion()
	}
	return Quaternion{q.W / length, q.X / length, q.Y / length, q.Z / length}
}

func (q Quaternion) Multiply(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// RotateVector rotates v by this quaternion via q * v * q^-1.
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	vq := Quaternion{W: 0, X: v.X, Y: v.Y, Z: v.Z}
	conj := Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
	r := q.Multiply(vq).Multiply(conj)
	return Vec3{r.X, r.Y, r.Z}
}

// ToMat4 expands the quaternion into the equivalent rotation matrix, used
// to author a mesh's static world transform without accumulating
// Euler-angle drift.
func (q Quaternion) ToMat4() Mat4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat4{M: [16]float64{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0,
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0,
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}}
}
