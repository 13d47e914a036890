package main

// Mat4 is a 4x4 matrix stored row-major in a flat array, M[row*4+col].
// TransformPoint/TransformDirection treat the vector as a column, matching
// the teacher's Matrix4x4 convention in matrix.go.
type Mat4 struct {
	M [16]float64
}

func IdentityMat4() Mat4 {
	return Mat4{M: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Multiply returns m * other (m applied second, other first, when used on a
// column vector: (m.Multiply(other)).TransformPoint(p) == m.TransformPoint(other.TransformPoint(p))).
func (m Mat4) Multiply(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[row*4+k] * other.M[k*4+col]
			}
			result.M[row*4+col] = sum
		}
	}
	return result
}

// TransformVec4 applies the full 4x4 matrix to a homogeneous point.
func (m Mat4) TransformVec4(p Vec4) Vec4 {
	return Vec4{
		X: m.M[0]*p.X + m.M[1]*p.Y + m.M[2]*p.Z + m.M[3]*p.W,
		Y: m.M[4]*p.X + m.M[5]*p.Y + m.M[6]*p.Z + m.M[7]*p.W,
		Z: m.M[8]*p.X + m.M[9]*p.Y + m.M[10]*p.Z + m.M[11]*p.W,
		W: m.M[12]*p.X + m.M[13]*p.Y + m.M[14]*p.Z + m.M[15]*p.W,
	}
}

// TransformPoint transforms a position (implicit W=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.TransformVec4(p.ToVec4(1)).XYZ()
}

// TransformDirection transforms a direction, ignoring translation (implicit W=0).
func (m Mat4) TransformDirection(v Vec3) Vec3 {
	return m.TransformVec4(v.ToVec4(0)).XYZ()
}

// Translation builds a pure translation matrix.
func Translation(t Vec3) Mat4 {
	m := IdentityMat4()
	m.M[3] = t.X
	m.M[7] = t.Y
	m.M[11] = t.Z
	return m
}

// Scaling builds a pure scale matrix.
func Scaling(s Vec3) Mat4 {
	m := IdentityMat4()
	m.M[0] = s.X
	m.M[5] = s.Y
	m.M[10] = s.Z
	return m
}

// BasisFromColumns builds a matrix whose first three columns are right, up
// and forward, and whose translation column is origin: the camera's
// orthonormal basis (ONB) matrix (right/up/forward/origin), per spec §3/§4.8.
func BasisFromColumns(right, up, forward, origin Vec3) Mat4 {
	return Mat4{M: [16]float64{
		right.X, up.X, forward.X, origin.X,
		right.Y, up.Y, forward.Y, origin.Y,
		right.Z, up.Z, forward.Z, origin.Z,
		0, 0, 0, 1,
	}}
}

// InverseRigid inverts a matrix that is known to be an orthonormal basis
// plus translation (the camera's ONB): the rotation part inverts by
// transpose and the translation inverts by negated dot products. This is
// exact and far cheaper than a general 4x4 inverse for this one use.
func (m Mat4) InverseRigid() Mat4 {
	right := Vec3{m.M[0], m.M[4], m.M[8]}
	up := Vec3{m.M[1], m.M[5], m.M[9]}
	forward := Vec3{m.M[2], m.M[6], m.M[10]}
	origin := Vec3{m.M[3], m.M[7], m.M[11]}

	return Mat4{M: [16]float64{
		right.X, right.Y, right.Z, -Dot3(right, origin),
		up.X, up.Y, up.Z, -Dot3(up, origin),
		forward.X, forward.Y, forward.Z, -Dot3(forward, origin),
		0, 0, 0, 1,
	}}
}
