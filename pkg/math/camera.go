package math

// Camera describes a viewer by position, look-at target and up direction.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
}

// CameraModel derives a view transform from a Camera.
//
// No model ships with this package: look-at and first-person variants
// interpret the same fields differently, so the choice is left to the
// caller.
type CameraModel interface {
	ViewMatrix(c Camera) Mat4
}

// CameraModelFunc adapts a plain function to CameraModel.
type CameraModelFunc func(c Camera) Mat4

// ViewMatrix calls f(c).
func (f CameraModelFunc) ViewMatrix(c Camera) Mat4 {
	return f(c)
}
