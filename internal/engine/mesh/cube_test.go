package mesh

import (
	"testing"

	"github.com/Faultbox/cubegrid/pkg/math"
)

func TestCubeCounts(t *testing.T) {
	c := Cube()

	if got := c.VertexCount(); got != 8 {
		t.Errorf("VertexCount() = %d, want 8", got)
	}
	if got := len(c.Indices); got != 36 {
		t.Errorf("len(Indices) = %d, want 36", got)
	}
	for i, idx := range c.Indices {
		if int(idx) >= c.VertexCount() {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
}

func TestCubeTrianglesNonDegenerate(t *testing.T) {
	c := Cube()
	for i := 0; i < len(c.Indices); i += 3 {
		a, b, d := c.Vertex(int(c.Indices[i])), c.Vertex(int(c.Indices[i+1])), c.Vertex(int(c.Indices[i+2]))
		n := b.Sub(a).Cross(d.Sub(a))
		if n.Length() == 0 {
			t.Errorf("triangle %d is degenerate", i/3)
		}
	}
}

func TestCubeCoversEveryFace(t *testing.T) {
	c := Cube()
	faces := map[math.Vec3]int{}
	for i := 0; i < len(c.Indices); i += 3 {
		a, b, d := c.Vertex(int(c.Indices[i])), c.Vertex(int(c.Indices[i+1])), c.Vertex(int(c.Indices[i+2]))
		n := b.Sub(a).Cross(d.Sub(a)).Normalize()
		// Face normals are axis aligned; the sign is ignored
		key := math.Vec3{X: abs(round(n.X)), Y: abs(round(n.Y)), Z: abs(round(n.Z))}
		faces[key]++
	}
	for _, axis := range []math.Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
		if faces[axis] != 4 {
			t.Errorf("axis %v has %d triangles, want 4", axis, faces[axis])
		}
	}
}

func TestCubeBounds(t *testing.T) {
	min, max := Cube().Bounds()
	if min != (math.Vec3{X: -1, Y: -1, Z: -1}) || max != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Bounds() = %v, %v", min, max)
	}
}

func round(x float32) float32 {
	if x < 0 {
		return -float32(int(-x + 0.5))
	}
	return float32(int(x + 0.5))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
