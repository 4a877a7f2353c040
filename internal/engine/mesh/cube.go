// Package mesh holds the static geometry drawn by the renderer.
package mesh

import "github.com/Faultbox/cubegrid/pkg/math"

// Mesh is indexed triangle geometry with 3-float positions.
type Mesh struct {
	Positions []float32
	Indices   []uint32
}

// Cube returns a cube spanning [-1, 1] on every axis, 12 triangles.
func Cube() Mesh {
	return Mesh{
		Positions: []float32{
			1, -1, -1,
			1, -1, 1,
			-1, -1, 1,
			-1, -1, -1,
			1, 1, -1,
			1, 1, 1,
			-1, 1, 1,
			-1, 1, -1,
		},
		Indices: []uint32{
			1, 2, 3,
			7, 6, 5,
			4, 5, 1,
			5, 6, 2,
			2, 6, 7,
			0, 3, 7,
			0, 1, 3,
			4, 7, 5,
			0, 4, 1,
			1, 5, 2,
			3, 2, 7,
			4, 0, 7,
		},
	}
}

// VertexCount returns the number of positions.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Vertex returns position i.
func (m Mesh) Vertex(i int) math.Vec3 {
	return math.Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// Bounds returns the axis-aligned min and max corners.
func (m Mesh) Bounds() (lo, hi math.Vec3) {
	if m.VertexCount() == 0 {
		return
	}
	lo, hi = m.Vertex(0), m.Vertex(0)
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		lo = math.Vec3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = math.Vec3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}
