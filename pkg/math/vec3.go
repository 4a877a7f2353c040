// Package math provides the transform math used by the renderer: a
// column-major Mat4, 3D vectors and the camera extension point.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector. Its methods never modify the receiver.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product. Parallel inputs give the
// zero vector.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the direction of v.
// The zero vector has no direction: the result is NaN in every component.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Cross returns v × w.
func Cross(v, w Vec3) Vec3 {
	return v.Cross(w)
}

// Normalize returns v scaled to unit length.
func Normalize(v Vec3) Vec3 {
	return v.Normalize()
}

// Mul returns a * b.
func Mul(a, b Mat4) Mat4 {
	return a.Mul(b)
}
