package rast

// CullMode selects which screen-space winding the assembler rejects.
//
// After the viewport transform flips y, a triangle whose vertices are
// counter-clockwise in normalized device coordinates appears clockwise
// in the pixel grid; rast calls that orientation front-facing. CullMode
// names the winding that gets dropped.
type CullMode int

const (
	// CullClockwise drops triangles wound clockwise in NDC
	// (back faces under the usual counter-clockwise-front modeling
	// convention). This is the default.
	CullClockwise CullMode = iota

	// CullCounterClockwise drops triangles wound counter-clockwise
	// in NDC.
	CullCounterClockwise

	// CullNone rasterizes both windings. Zero-area triangles are
	// still dropped.
	CullNone
)

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default: clockwise faces culled, near epsilon 1e-5
//	pipe := rast.NewPipeline[A, V, P](prog)
//
//	// Two-sided rendering
//	pipe := rast.NewPipeline[A, V, P](prog, rast.WithCull(rast.CullNone))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	cull    CullMode
	nearEps float32
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		cull:    CullClockwise,
		nearEps: 1e-5,
	}
}

// WithCull sets the backface culling mode.
func WithCull(mode CullMode) Option {
	return func(o *pipelineOptions) {
		o.cull = mode
	}
}

// WithNearEpsilon sets the minimum clip-space w a vertex must have to
// survive near-plane clipping. Vertices at or below the epsilon are
// clipped away before the perspective divide, so the divide never sees
// a w near zero. The epsilon must be positive.
func WithNearEpsilon(eps float32) Option {
	return func(o *pipelineOptions) {
		if eps > 0 {
			o.nearEps = eps
		}
	}
}
