package rast

// Varying is the capability a per-vertex output type must provide so the
// rasterizer can interpolate it across a triangle's surface: a weighted
// combination of three values with weights summing to 1.
//
// The constraint is self-referential (V's Combine takes and returns V),
// so any shader-defined type qualifies by implementing one method; the
// rasterizer makes no assumption about its internal structure. Float32,
// Vec2, Vec3, Vec4, RGBA and NoVarying all implement it, and composite
// varyings combine them field by field (see StdVarying).
type Varying[V any] interface {
	// Combine returns v*w0 + b*w1 + c*w2 where v is the receiver.
	// The weights sum to 1.
	Combine(b, c V, w0, w1, w2 float32) V
}

// Program is a shader program: the pair of stages a Pipeline runs for
// every triangle. A is the per-vertex attribute type consumed by the
// vertex stage, V the varying type interpolated across each triangle,
// and P the pixel type written to the framebuffer.
//
// Programs typically carry their uniforms (matrices, light directions,
// textures) as struct fields; the pipeline never touches them.
type Program[A any, V Varying[V], P any] interface {
	// Vertex maps one attribute to a clip-space position and the
	// varying to interpolate. It is called exactly once per input
	// vertex per Draw and must be a pure function of the attribute:
	// triangles may be processed in any order.
	Vertex(attr A) (Vec4, V)

	// Fragment shades one candidate pixel from its perspective-correct
	// interpolated varying. It returns the pixel and true to keep the
	// fragment, or ok == false to discard it (no color or depth is
	// written). It is called at most once per pixel covered by a
	// triangle, after the depth test.
	Fragment(v V) (pixel P, ok bool)
}
