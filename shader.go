package rast

import "github.com/chewxy/math32"

// StdAttribute is the conventional per-vertex input for model rendering:
// an object-space position, a normal and a texture coordinate. The obj
// package produces attributes in this form.
type StdAttribute struct {
	Pos  Vec4
	Norm Vec3
	UV   Vec2
}

// StdVarying is the varying paired with StdAttribute: the data the
// built-in lit programs interpolate across each triangle. Composite
// varyings combine field by field.
type StdVarying struct {
	Norm      Vec3
	UV        Vec2
	Intensity float32
}

// Combine implements the Varying capability for StdVarying.
func (v StdVarying) Combine(b, c StdVarying, w0, w1, w2 float32) StdVarying {
	return StdVarying{
		Norm:      v.Norm.Combine(b.Norm, c.Norm, w0, w1, w2),
		UV:        v.UV.Combine(b.UV, c.UV, w0, w1, w2),
		Intensity: v.Intensity*w0 + b.Intensity*w1 + c.Intensity*w2,
	}
}

// FlatProgram fills triangles with a single color. Attributes are
// clip-space positions, so it needs no uniforms; useful for tests and
// for drawing geometry that is already transformed.
type FlatProgram struct {
	Color RGBA
}

// Vertex implements Program.
func (p *FlatProgram) Vertex(attr Vec4) (Vec4, NoVarying) {
	return attr, NoVarying{}
}

// Fragment implements Program.
func (p *FlatProgram) Fragment(NoVarying) (RGBA, bool) {
	return p.Color, true
}

// DepthProgram visualizes depth: nearer fragments come out brighter.
// Matrix is the full model-view-projection transform applied to
// object-space positions.
type DepthProgram struct {
	Matrix Mat4
}

// Vertex implements Program.
func (p *DepthProgram) Vertex(attr StdAttribute) (Vec4, Float32) {
	pos := p.Matrix.MulVec4(attr.Pos)
	z := float32(0)
	if pos.W > 0 {
		z = pos.Z / pos.W
	}
	return pos, Float32(z)
}

// Fragment implements Program.
func (p *DepthProgram) Fragment(z Float32) (RGBA, bool) {
	// NDC z in [-1, 1], -1 nearest.
	v := clamp01((1 - float32(z)) / 2)
	return RGB(v, v, v), true
}

// PhongProgram renders a model with a single directional light and an
// optional texture, the classic fixed-function look. Lighting is
// computed per vertex and interpolated (Gouraud shading).
type PhongProgram struct {
	// Model, View and Proj transform object space to clip space.
	Model Mat4
	View  Mat4
	Proj  Mat4

	// LightDir is the direction the light travels, in world space.
	// It does not need to be normalized.
	LightDir Vec3

	// Ambient is the minimum light intensity in [0, 1].
	Ambient float32

	// Base is the material color. If Tex is non-nil the sampled texel
	// is modulated by Base, so set Base to White for plain texturing.
	Base RGBA
	Tex  *Texture
}

// Vertex implements Program.
func (p *PhongProgram) Vertex(attr StdAttribute) (Vec4, StdVarying) {
	world := p.Model.MulVec4(attr.Pos)
	clip := p.Proj.MulVec4(p.View.MulVec4(world))

	norm := p.Model.MulDir(attr.Norm).Normalize()
	intensity := math32.Max(0, norm.Dot(p.LightDir.Neg().Normalize()))

	return clip, StdVarying{Norm: norm, UV: attr.UV, Intensity: intensity}
}

// Fragment implements Program.
func (p *PhongProgram) Fragment(v StdVarying) (RGBA, bool) {
	base := p.Base
	if p.Tex != nil {
		base = p.Tex.Sample(v.UV.X, v.UV.Y).Mul(base)
	}
	light := clamp01(p.Ambient + (1-p.Ambient)*v.Intensity)
	return base.Scale(light), true
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
