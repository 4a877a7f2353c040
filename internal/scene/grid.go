// Package scene lays out the pulsing cube grid.
package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cubegrid/pkg/math"
)

// Grid is a square of Size x Size cubes on the XZ plane, centered on the origin.
type Grid struct {
	Size       int
	Spacing    float32 // Distance between neighbouring cube centers
	CubeSize   float32 // Half-extent of a cube at rest
	PulseSpeed float32 // Radians of pulse phase per second
}

// Count returns the number of cubes.
func (g Grid) Count() int {
	return g.Size * g.Size
}

// Cell returns the center of cube i on the XZ plane.
func (g Grid) Cell(i int) (x, z float32) {
	offset := float32(g.Size-1) / 2
	x = (float32(i%g.Size) - offset) * g.Spacing
	z = (float32(i/g.Size) - offset) * g.Spacing
	return x, z
}

// Height returns the vertical scale of the cube at (x, z) after t seconds.
// It stays within [0, 4].
func (g Grid) Height(x, z, t float32) float32 {
	return 2 * (1 + math32.Sin(x+z+t*g.PulseSpeed))
}

// Model returns the model matrix of cube i at time t. The unit cube is
// shrunk to CubeSize, lifted to rest on y=0, stretched by Height and
// moved to its cell.
func (g Grid) Model(i int, t float32) math.Mat4 {
	x, z := g.Cell(i)
	return math.Identity().
		Translate(x, 0, z).
		Scale(1, g.Height(x, z, t), 1).
		Translate(0, g.CubeSize, 0).
		Scale(g.CubeSize, g.CubeSize, g.CubeSize)
}

// Models appends the model matrix of every cube at time t to dst[:0].
func (g Grid) Models(t float32, dst []math.Mat4) []math.Mat4 {
	dst = dst[:0]
	for i := 0; i < g.Count(); i++ {
		dst = append(dst, g.Model(i, t))
	}
	return dst
}
