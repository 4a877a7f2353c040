package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Matrices act on column vectors (p' = M * p), so in a.Mul(b) the
// transform b is applied first. Upload with transpose = false.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees / 180 * math32.Pi
}

// Mul returns m * other. The result is computed into a fresh value,
// so m.Mul(m) is safe.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling returns a scale matrix.
func Scaling(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a rotation matrix around the X axis.
// degrees follows the right-hand rule.
func RotationX(degrees float32) Mat4 {
	s, c := math32.Sincos(Radians(degrees))

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation matrix around the Y axis.
func RotationY(degrees float32) Mat4 {
	s, c := math32.Sincos(Radians(degrees))

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation matrix around the Z axis.
func RotationZ(degrees float32) Mat4 {
	s, c := math32.Sincos(Radians(degrees))

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns m with a translation composed on the right.
func (m Mat4) Translate(x, y, z float32) Mat4 {
	return m.Mul(Translation(x, y, z))
}

// Scale returns m with a scale composed on the right.
// Zero and negative factors are passed through unchecked.
func (m Mat4) Scale(x, y, z float32) Mat4 {
	return m.Mul(Scaling(x, y, z))
}

// RotateX returns m with a rotation about X composed on the right.
func (m Mat4) RotateX(degrees float32) Mat4 {
	return m.Mul(RotationX(degrees))
}

// RotateY returns m with a rotation about Y composed on the right.
func (m Mat4) RotateY(degrees float32) Mat4 {
	return m.Mul(RotationY(degrees))
}

// RotateZ returns m with a rotation about Z composed on the right.
func (m Mat4) RotateZ(degrees float32) Mat4 {
	return m.Mul(RotationZ(degrees))
}

// Perspective returns an OpenGL perspective projection matrix.
// fovY is the vertical field of view in degrees and must lie in (0, 180).
// The aspect ratio is width/height. Requires 0 < near < far; points on the
// near plane land on NDC depth -1 and points on the far plane on +1.
func Perspective(fovY, width, height, near, far float32) Mat4 {
	aspect := width / height
	f := 1 / math32.Tan(Radians(fovY)/2)
	nf := 1 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[row*4+col] = m[col*4+row]
		}
	}
	return result
}

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// TransformPoint transforms a point (w=1) and applies the perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec4(Vec4{p.X, p.Y, p.Z, 1}).PerspectiveDivide()
}

// ApproxEqual reports whether every element of m is within eps of other.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Vec4 is a 4-component homogeneous vector.
type Vec4 [4]float32

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide returns xyz/w. Vectors with w of 0 or 1 are returned as is.
func (v Vec4) PerspectiveDivide() Vec3 {
	if w := v[3]; w != 0 && w != 1 {
		return Vec3{v[0] / w, v[1] / w, v[2] / w}
	}
	return v.XYZ()
}
