package rast

import (
	"math"
	"testing"
)

// flatAttr renders clip-space positions with a counting fragment stage.
type countProgram struct {
	color RGBA
	calls int
}

func (p *countProgram) Vertex(a Vec4) (Vec4, NoVarying) { return a, NoVarying{} }

func (p *countProgram) Fragment(NoVarying) (RGBA, bool) {
	p.calls++
	return p.color, true
}

// baryAttr tags each vertex with a barycentric basis vector so the
// fragment stage observes the interpolation weights directly.
type baryAttr struct {
	pos Vec4
	b   Vec3
}

type baryProgram struct {
	weights []Vec3
}

func (p *baryProgram) Vertex(a baryAttr) (Vec4, Vec3) { return a.pos, a.b }

func (p *baryProgram) Fragment(v Vec3) (RGBA, bool) {
	p.weights = append(p.weights, v)
	return White, true
}

// TestBarycentricWeights draws one triangle and checks every observed
// weight triple sums to 1 with non-negative components.
func TestBarycentricWeights(t *testing.T) {
	attrs := []baryAttr{
		{pos: V4(-0.9, -0.9, 0, 1), b: V3(1, 0, 0)},
		{pos: V4(0.9, -0.9, 0, 1), b: V3(0, 1, 0)},
		{pos: V4(0, 0.9, 0, 1), b: V3(0, 0, 1)},
	}
	prog := &baryProgram{}
	pipe := NewPipeline[baryAttr, Vec3, RGBA](prog)

	fb := NewFramebuffer[RGBA](32, 32)
	fb.Clear(Black, DepthFar)
	if err := pipe.Draw(attrs, fb); err != nil {
		t.Fatal(err)
	}

	if len(prog.weights) == 0 {
		t.Fatal("no fragments produced")
	}
	const eps = 1e-4
	for _, w := range prog.weights {
		if sum := w.X + w.Y + w.Z; math.Abs(float64(sum-1)) > eps {
			t.Fatalf("weights %v sum to %v, want 1", w, sum)
		}
		if w.X < -eps || w.Y < -eps || w.Z < -eps {
			t.Fatalf("negative weight in %v", w)
		}
	}
}

// TestSharedEdgeExactness splits a square into two triangles along its
// diagonal and verifies each covered pixel is shaded exactly once: the
// second triangle is nearer, so any double coverage would pass the depth
// test and inflate the fragment count, while a seam would leave a clear
// pixel inside the square.
func TestSharedEdgeExactness(t *testing.T) {
	a := V2(-0.5, -0.5)
	b := V2(0.5, -0.5)
	c := V2(0.5, 0.5)
	d := V2(-0.5, 0.5)
	attrs := []Vec4{
		// First triangle at depth 0.5, second nearer at -0.5.
		{X: a.X, Y: a.Y, Z: 0.5, W: 1},
		{X: b.X, Y: b.Y, Z: 0.5, W: 1},
		{X: c.X, Y: c.Y, Z: 0.5, W: 1},
		{X: a.X, Y: a.Y, Z: -0.5, W: 1},
		{X: c.X, Y: c.Y, Z: -0.5, W: 1},
		{X: d.X, Y: d.Y, Z: -0.5, W: 1},
	}

	prog := &countProgram{color: Red}
	pipe := NewPipeline[Vec4, NoVarying, RGBA](prog)

	fb := NewFramebuffer[RGBA](8, 8)
	fb.Clear(Black, DepthFar)
	if err := pipe.Draw(attrs, fb); err != nil {
		t.Fatal(err)
	}

	// The square covers pixel centers x, y in [2, 6).
	covered := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inSquare := x >= 2 && x < 6 && y >= 2 && y < 6
			shaded := fb.At(x, y) == Red
			if shaded != inSquare {
				t.Errorf("pixel (%d, %d): shaded=%v, in square=%v", x, y, shaded, inSquare)
			}
			if shaded {
				covered++
			}
		}
	}
	if prog.calls != covered {
		t.Errorf("fragment stage ran %d times for %d pixels", prog.calls, covered)
	}
	if covered != 16 {
		t.Errorf("covered %d pixels, want 16", covered)
	}
}

// TestDepthIdempotence draws the same triangle twice; the strict
// less-than depth test must reject the second draw entirely.
func TestDepthIdempotence(t *testing.T) {
	attrs := []Vec4{
		{X: -1, Y: -1, Z: 0, W: 1},
		{X: 1, Y: -1, Z: 0, W: 1},
		{X: 0, Y: 1, Z: 0, W: 1},
	}
	prog := &countProgram{color: Green}
	pipe := NewPipeline[Vec4, NoVarying, RGBA](prog)

	fb := NewFramebuffer[RGBA](16, 16)
	fb.Clear(Black, DepthFar)
	if err := pipe.Draw(attrs, fb); err != nil {
		t.Fatal(err)
	}

	firstCalls := prog.calls
	if firstCalls == 0 {
		t.Fatal("no fragments on first draw")
	}
	color := append([]RGBA(nil), fb.Pixels()...)
	depth := append([]float32(nil), fb.Depths()...)

	if err := pipe.Draw(attrs, fb); err != nil {
		t.Fatal(err)
	}
	if prog.calls != firstCalls {
		t.Errorf("second draw ran the fragment stage %d more times, want 0", prog.calls-firstCalls)
	}
	for i := range color {
		if fb.Pixels()[i] != color[i] || fb.Depths()[i] != depth[i] {
			t.Fatalf("framebuffer changed at index %d on second draw", i)
		}
	}
}

// uvAttr carries a texture coordinate; the fragment stage writes the
// interpolated coordinate itself into the framebuffer so the test can
// inspect it per pixel.
type uvAttr struct {
	pos Vec4
	uv  Vec2
}

type uvProgram struct{}

func (uvProgram) Vertex(a uvAttr) (Vec4, Vec2) { return a.pos, a.uv }

func (uvProgram) Fragment(v Vec2) (Vec2, bool) { return v, true }

// TestPerspectiveCorrectInterpolation renders a depth-varying triangle
// and compares the interpolated texture coordinate at every covered
// pixel against an independent ground truth: the coordinate at the
// intersection of the pixel's view ray with the 3D triangle.
func TestPerspectiveCorrectInterpolation(t *testing.T) {
	const size = 64

	// View-space triangle (camera at origin looking down -z), with
	// clip position (x, y, 0, -z): the pinhole projection.
	pos := [3][3]float64{
		{-1, -1, -1},
		{1, -1, -2},
		{0, 1, -1.5},
	}
	uv := [3]Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}

	attrs := make([]uvAttr, 3)
	for i := range attrs {
		attrs[i] = uvAttr{
			pos: V4(float32(pos[i][0]), float32(pos[i][1]), 0, float32(-pos[i][2])),
			uv:  uv[i],
		}
	}

	pipe := NewPipeline[uvAttr, Vec2, Vec2](uvProgram{}, WithCull(CullNone))
	fb := NewFramebuffer[Vec2](size, size)
	fb.Clear(Vec2{X: -1, Y: -1}, DepthFar)
	if err := pipe.Draw(attrs, fb); err != nil {
		t.Fatal(err)
	}

	e1 := [3]float64{pos[1][0] - pos[0][0], pos[1][1] - pos[0][1], pos[1][2] - pos[0][2]}
	e2 := [3]float64{pos[2][0] - pos[0][0], pos[2][1] - pos[0][1], pos[2][2] - pos[0][2]}

	checked := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			got := fb.At(x, y)
			if got == (Vec2{X: -1, Y: -1}) {
				continue
			}

			// Ray through the pixel center in view space.
			nx := (float64(x) + 0.5) / (size / 2) - 1
			ny := 1 - (float64(y)+0.5)/(size/2)
			d := [3]float64{nx, ny, -1}

			// Solve P0 + a1*e1 + a2*e2 = t*d for (a1, a2, t).
			det := det3(e1, e2, neg(d))
			if math.Abs(det) < 1e-12 {
				continue
			}
			rhs := neg(pos[0])
			a1 := det3(rhs, e2, neg(d)) / det
			a2 := det3(e1, rhs, neg(d)) / det
			a0 := 1 - a1 - a2

			wantU := a0*float64(uv[0].X) + a1*float64(uv[1].X) + a2*float64(uv[2].X)
			wantV := a0*float64(uv[0].Y) + a1*float64(uv[1].Y) + a2*float64(uv[2].Y)

			const tol = 2e-3
			if math.Abs(float64(got.X)-wantU) > tol || math.Abs(float64(got.Y)-wantV) > tol {
				t.Fatalf("pixel (%d, %d): uv = (%v, %v), want (%v, %v)",
					x, y, got.X, got.Y, wantU, wantV)
			}
			checked++
		}
	}
	if checked < 100 {
		t.Fatalf("only %d pixels covered, triangle mostly off screen?", checked)
	}
}

func neg(v [3]float64) [3]float64 { return [3]float64{-v[0], -v[1], -v[2]} }

func det3(c0, c1, c2 [3]float64) float64 {
	return c0[0]*(c1[1]*c2[2]-c1[2]*c2[1]) -
		c1[0]*(c0[1]*c2[2]-c0[2]*c2[1]) +
		c2[0]*(c0[1]*c1[2]-c0[2]*c1[1])
}

// discardProgram rejects every fragment.
type discardProgram struct{ calls int }

func (p *discardProgram) Vertex(a Vec4) (Vec4, NoVarying) { return a, NoVarying{} }

func (p *discardProgram) Fragment(NoVarying) (RGBA, bool) {
	p.calls++
	return RGBA{}, false
}

// TestFragmentDiscard verifies a discarded fragment writes neither color
// nor depth.
func TestFragmentDiscard(t *testing.T) {
	attrs := []Vec4{
		{X: -1, Y: -1, Z: 0, W: 1},
		{X: 1, Y: -1, Z: 0, W: 1},
		{X: 0, Y: 1, Z: 0, W: 1},
	}
	prog := &discardProgram{}
	pipe := NewPipeline[Vec4, NoVarying, RGBA](prog)

	fb := NewFramebuffer[RGBA](8, 8)
	fb.Clear(Blue, DepthFar)
	if err := pipe.Draw(attrs, fb); err != nil {
		t.Fatal(err)
	}

	if prog.calls == 0 {
		t.Fatal("fragment stage never ran")
	}
	for i, c := range fb.Pixels() {
		if c != Blue {
			t.Fatalf("discarded fragment wrote color at index %d", i)
		}
	}
	for i, d := range fb.Depths() {
		if d != DepthFar {
			t.Fatalf("discarded fragment wrote depth at index %d", i)
		}
	}
}

func TestDrawLine(t *testing.T) {
	fb := NewFramebuffer[RGBA](8, 8)
	fb.Clear(Black, DepthFar)

	DrawLine(fb, 0, 0, 7, 7, White)
	for i := 0; i < 8; i++ {
		if fb.At(i, i) != White {
			t.Errorf("diagonal pixel (%d, %d) not drawn", i, i)
		}
	}

	// Endpoints off screen must not panic.
	DrawLine(fb, -5, 3, 12, 3, Red)
	for x := 0; x < 8; x++ {
		if fb.At(x, 3) != Red {
			t.Errorf("clipped horizontal line missing pixel (%d, 3)", x)
		}
	}
}
