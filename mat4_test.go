package rast

import (
	"testing"

	"github.com/chewxy/math32"
)

func vec4Near(a, b Vec4, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps &&
		math32.Abs(a.Y-b.Y) <= eps &&
		math32.Abs(a.Z-b.Z) <= eps &&
		math32.Abs(a.W-b.W) <= eps
}

func TestIdentity(t *testing.T) {
	v := V4(1, -2, 3, 1)
	if got := Identity().MulVec4(v); got != v {
		t.Errorf("identity transform changed vector: got %v", got)
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(1, 2, 3).MulVec4(Point3(0, 0, 0))
	want := Point3(1, 2, 3)
	if got != want {
		t.Errorf("translate mismatch: got %v, want %v", got, want)
	}

	// Directions (w=0) are unaffected by translation.
	dir := V4(1, 0, 0, 0)
	if got := Translate(5, 5, 5).MulVec4(dir); got != dir {
		t.Errorf("translate moved a direction: got %v", got)
	}
}

func TestMulComposesRightToLeft(t *testing.T) {
	// Scale then translate: the translation must not be scaled.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.MulVec4(Point3(1, 1, 1))
	want := Point3(12, 2, 2)
	if !vec4Near(got, want, 1e-6) {
		t.Errorf("compose mismatch: got %v, want %v", got, want)
	}
}

func TestRotateY(t *testing.T) {
	got := RotateY(math32.Pi / 2).MulVec4(Point3(1, 0, 0))
	want := Point3(0, 0, -1)
	if !vec4Near(got, want, 1e-6) {
		t.Errorf("rotate mismatch: got %v, want %v", got, want)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := V3(1, 2, 3)
	m := LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	got := m.MulVec4(Point3(eye.X, eye.Y, eye.Z))
	if !vec4Near(got, Point3(0, 0, 0), 1e-5) {
		t.Errorf("eye not at origin after view transform: got %v", got)
	}
}

func TestLookAtCenterOnNegativeZ(t *testing.T) {
	m := LookAt(V3(0, 0, 5), V3(0, 0, 0), V3(0, 1, 0))
	got := m.MulVec4(Point3(0, 0, 0))
	if !vec4Near(got, V4(0, 0, -5, 1), 1e-5) {
		t.Errorf("center not on -z: got %v", got)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(1), float32(10)
	m := Perspective(math32.Pi/2, 1, near, far)

	atNear := m.MulVec4(Point3(0, 0, -near))
	if z := atNear.Z / atNear.W; math32.Abs(z-(-1)) > 1e-5 {
		t.Errorf("near plane NDC z = %v, want -1", z)
	}
	atFar := m.MulVec4(Point3(0, 0, -far))
	if z := atFar.Z / atFar.W; math32.Abs(z-1) > 1e-5 {
		t.Errorf("far plane NDC z = %v, want 1", z)
	}
	// w is the positive view-space distance.
	if atFar.W != far {
		t.Errorf("far plane w = %v, want %v", atFar.W, far)
	}
}

func TestOrthoUnitBox(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, 0, 10)
	got := m.MulVec4(Point3(2, 1, -10))
	want := V4(1, 1, 1, 1)
	if !vec4Near(got, want, 1e-6) {
		t.Errorf("ortho mismatch: got %v, want %v", got, want)
	}
}
