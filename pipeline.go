package rast

import (
	"errors"
	"log/slog"
)

// ErrAttributeCount is returned by Draw when the attribute slice length
// is not a multiple of three. Every consecutive attribute triple forms
// one triangle; indexed, strip or fan topologies must be flattened by
// the caller first.
var ErrAttributeCount = errors.New("rast: attribute count must be a multiple of 3")

// Pipeline runs a shader program over triangles and writes the result
// into a framebuffer. It is the single entry point of the rasterizer:
// construct it once per program and call Draw any number of times.
//
// A Pipeline holds no mutable state between Draw calls and is safe to
// share across goroutines as long as no two concurrent Draw calls target
// the same framebuffer.
type Pipeline[A any, V Varying[V], P any] struct {
	prog Program[A, V, P]
	opts pipelineOptions
}

// NewPipeline creates a pipeline for the given program.
func NewPipeline[A any, V Varying[V], P any](prog Program[A, V, P], options ...Option) *Pipeline[A, V, P] {
	opts := defaultOptions()
	for _, o := range options {
		o(&opts)
	}
	return &Pipeline[A, V, P]{prog: prog, opts: opts}
}

// Draw renders the attribute sequence into fb. Every consecutive triple
// of attributes is one triangle; the vertex stage runs exactly once per
// attribute, triangles are clipped against the near plane and culled by
// winding, and surviving triangles are rasterized with depth testing.
//
// Draw does not clear the framebuffer, so multiple passes accumulate:
// clear explicitly between frames. Draw returns ErrAttributeCount when
// len(attrs) is not a multiple of 3; no other error is possible.
func (p *Pipeline[A, V, P]) Draw(attrs []A, fb *Framebuffer[P]) error {
	if len(attrs)%3 != 0 {
		return ErrAttributeCount
	}

	var stats assembleStats
	fragments := 0

	// Scratch reused across triples; near clipping emits at most two
	// triangles per input triangle.
	tris := make([]triangle[V], 0, 2)

	for i := 0; i < len(attrs); i += 3 {
		stats.in++
		tris = assemble(tris[:0], p.prog, attrs[i:i+3], fb.width, fb.height, &p.opts, &stats)
		for j := range tris {
			fragments += rasterize(fb, &tris[j], p.prog.Fragment)
		}
	}

	Logger().Debug("rast: draw",
		slog.Int("triangles", stats.in),
		slog.Int("clipped", stats.clipped),
		slog.Int("culled", stats.culled),
		slog.Int("emitted", stats.emitted),
		slog.Int("fragments", fragments),
	)
	return nil
}
