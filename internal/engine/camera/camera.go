// Package camera provides the orbiting camera used by the demo.
package camera

import (
	"github.com/Faultbox/cubegrid/pkg/math"
)

// OrbitCamera circles the origin at a fixed distance.
// Angles are in degrees.
type OrbitCamera struct {
	Distance float32 // Distance from the origin
	Pitch    float32 // Tilt, positive looks down onto the XZ plane
	Yaw      float32 // Spin around the Y axis

	SpinSpeed float32 // Yaw change per second

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32
}

// NewOrbitCamera creates an orbit camera at the given distance and pitch.
func NewOrbitCamera(distance, pitch, spinSpeed float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:    distance,
		Pitch:       pitch,
		SpinSpeed:   spinSpeed,
		MinDistance: 2,
		MaxDistance: 80,
		MinPitch:    -89,
		MaxPitch:    89,
	}
}

// ViewMatrix returns T(0,0,-distance) * Rx(pitch) * Ry(yaw).
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.Identity().
		Translate(0, 0, -c.Distance).
		RotateX(c.Pitch).
		RotateY(c.Yaw)
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return math.Identity().
		RotateY(-c.Yaw).
		RotateX(-c.Pitch).
		TransformPoint(math.Vec3{Z: c.Distance})
}

// Update advances the spin by dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	c.Yaw += c.SpinSpeed * dt
	for c.Yaw >= 360 {
		c.Yaw -= 360
	}
	for c.Yaw < 0 {
		c.Yaw += 360
	}
}

// HandlePitch tilts the camera by delta degrees within the pitch limits.
func (c *OrbitCamera) HandlePitch(delta float32) {
	c.Pitch = clamp(c.Pitch+delta, c.MinPitch, c.MaxPitch)
}

// HandleZoom scales the distance by delta (positive moves closer).
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance*(1-delta), c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
