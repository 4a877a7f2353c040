package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if Mat4(mgl32.Ident4()) != m {
		t.Errorf("Identity: got %v, want %v", m, mgl32.Ident4())
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translation(1, 2, 3).RotateY(30).Scale(2, 3, 4)
	id := Identity()

	if got := m.Mul(id); !got.ApproxEqual(m, eps) {
		t.Errorf("M * I: got %v, want %v", got, m)
	}
	if got := id.Mul(m); !got.ApproxEqual(m, eps) {
		t.Errorf("I * M: got %v, want %v", got, m)
	}
}

func TestMulAssociative(t *testing.T) {
	a := RotationX(25).Translate(1, -2, 3)
	b := Scaling(0.5, 2, -1).RotateZ(70)
	c := Perspective(45, 800, 600, 0.1, 50)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	if !left.ApproxEqual(right, 1e-4) {
		t.Errorf("(A*B)*C != A*(B*C):\n%v\n%v", left, right)
	}
}

func TestMulMatchesReference(t *testing.T) {
	a := RotationY(40).Translate(3, 0, -1)
	b := Scaling(2, 2, 2).RotateX(-15)

	want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
	if got := a.Mul(b); !got.ApproxEqual(Mat4(want), eps) {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestMulSelf(t *testing.T) {
	m := Translation(1, 2, 3).RotateZ(45)
	want := Mat4(mgl32.Mat4(m).Mul4(mgl32.Mat4(m)))

	m = m.Mul(m)
	if !m.ApproxEqual(want, eps) {
		t.Errorf("m.Mul(m): got %v, want %v", m, want)
	}
}

func TestComposeOrder(t *testing.T) {
	// The right-most transform is applied first.
	m := Identity().Translate(10, 0, 0).Scale(2, 2, 2)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{12, 2, 2}
	if !vecNear(got, want) {
		t.Errorf("translate then scale: got %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Identity().Translate(5, -1, 2)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != -1 || m[14] != 2 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, -1, 2)", m[12], m[13], m[14])
	}
	if got := m.TransformPoint(Vec3{}); got != (Vec3{5, -1, 2}) {
		t.Errorf("Translate origin: got %v, want (5, -1, 2)", got)
	}
	if Mat4(mgl32.Translate3D(5, -1, 2)) != m {
		t.Errorf("Translate: got %v, want %v", m, mgl32.Translate3D(5, -1, 2))
	}
}

func TestScale(t *testing.T) {
	m := Identity().Scale(2, 3, 4)

	if got := m.TransformPoint(Vec3{1, 1, 1}); got != (Vec3{2, 3, 4}) {
		t.Errorf("Scale: got %v, want (2, 3, 4)", got)
	}
}

func TestScaleDegenerate(t *testing.T) {
	m := Identity().Scale(-1, 0, 1)

	got := m.TransformPoint(Vec3{3, 4, 5})
	if got != (Vec3{-3, 0, 5}) {
		t.Errorf("Scale(-1, 0, 1): got %v, want (-3, 0, 5)", got)
	}
}

func TestRotateMatchesReference(t *testing.T) {
	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{"x", RotationX(37), mgl32.HomogRotate3DX(mgl32.DegToRad(37))},
		{"y", RotationY(-120), mgl32.HomogRotate3DY(mgl32.DegToRad(-120))},
		{"z", RotationZ(200), mgl32.HomogRotate3DZ(mgl32.DegToRad(200))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(Mat4(tt.want), eps) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRotateRightHanded(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"z maps x to y", Identity().RotateZ(90), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"x maps y to z", Identity().RotateX(90), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y maps z to x", Identity().RotateY(90), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"y maps x to -z", Identity().RotateY(90), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !vecNear(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateFullTurn(t *testing.T) {
	if m := Identity().RotateZ(360); !m.ApproxEqual(Identity(), eps) {
		t.Errorf("RotateZ(360): got %v, want identity", m)
	}
}

func TestNeutralTransforms(t *testing.T) {
	m := Translation(4, 5, 6).RotateX(10).Scale(1, 2, 3)

	got := m.RotateX(0).RotateY(0).RotateZ(0).Scale(1, 1, 1).Translate(0, 0, 0)
	got = got.RotateX(0).RotateY(0).RotateZ(0).Scale(1, 1, 1).Translate(0, 0, 0)
	if got != m {
		t.Errorf("neutral transforms changed the matrix:\n%v\n%v", got, m)
	}
}

func TestPerspective(t *testing.T) {
	const (
		fov    = 30
		width  = 640
		height = 480
		near   = 1
		far    = 100
	)
	m := Perspective(fov, width, height, near, far)

	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	want := mgl32.Perspective(mgl32.DegToRad(fov), float32(width)/height, near, far)
	if !m.ApproxEqual(Mat4(want), eps) {
		t.Errorf("Perspective: got %v, want %v", m, want)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	tests := []struct {
		near, far float32
	}{
		{1, 100},
		{0.1, 1000},
		{5, 6},
	}

	for _, tt := range tests {
		m := Perspective(60, 16, 9, tt.near, tt.far)

		if z := m.TransformPoint(Vec3{0.2, -0.1, -tt.near}).Z; abs(z+1) > 1e-3 {
			t.Errorf("near=%v far=%v: near plane depth %f, want -1", tt.near, tt.far, z)
		}
		if z := m.TransformPoint(Vec3{3, 2, -tt.far}).Z; abs(z-1) > 1e-3 {
			t.Errorf("near=%v far=%v: far plane depth %f, want 1", tt.near, tt.far, z)
		}
	}
}

func TestTranspose(t *testing.T) {
	m := Translation(1, 2, 3)
	tr := m.Transpose()

	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose: translation row got (%f, %f, %f)", tr[3], tr[7], tr[11])
	}
	if tr.Transpose() != m {
		t.Error("Transpose twice should return the original")
	}
}

func TestMulVec4(t *testing.T) {
	m := Translation(1, 2, 3)

	// Directions (w=0) ignore translation
	if got := m.MulVec4(Vec4{1, 0, 0, 0}); got != (Vec4{1, 0, 0, 0}) {
		t.Errorf("MulVec4 direction: got %v", got)
	}
	if got := m.MulVec4(Vec4{1, 0, 0, 1}); got != (Vec4{2, 2, 3, 1}) {
		t.Errorf("MulVec4 point: got %v", got)
	}
}

func vecNear(a, b Vec3) bool {
	return abs(a.X-b.X) < 1e-4 && abs(a.Y-b.Y) < 1e-4 && abs(a.Z-b.Z) < 1e-4
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
