// Package rast provides a software 3D rasterizer for Go.
//
// # Overview
//
// rast is a Pure Go triangle rasterizer designed to integrate with the
// GoGPU ecosystem. It implements a small programmable pipeline analogous
// to a minimal GPU pipeline: a vertex stage maps per-vertex attributes to
// clip-space positions and varyings, triangles are clipped against the
// near plane and culled by winding, and a fragment stage shades each
// covered pixel with perspective-correct interpolated varyings under a
// depth test. Everything runs on the CPU and writes into a caller-owned
// framebuffer.
//
// # Quick Start
//
//	import "github.com/gogpu/rast"
//
//	// A framebuffer holds a color plane and a depth plane.
//	fb := rast.NewFramebuffer[rast.RGBA](512, 512)
//	fb.Clear(rast.Black, rast.DepthFar)
//
//	// A program pairs a vertex stage with a fragment stage.
//	prog := &rast.FlatProgram{Color: rast.Red}
//	pipe := rast.NewPipeline[rast.Vec4, rast.NoVarying, rast.RGBA](prog)
//
//	// Every consecutive attribute triple is one triangle.
//	tri := []rast.Vec4{
//		{X: -1, Y: -1, Z: 0, W: 1},
//		{X: 1, Y: -1, Z: 0, W: 1},
//		{X: 0, Y: 1, Z: 0, W: 1},
//	}
//	if err := pipe.Draw(tri, fb); err != nil {
//		log.Fatal(err)
//	}
//
//	// Save to PNG
//	rast.SavePNG(fb, "output.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Pipeline, Program, Framebuffer, RGBA, Vec2/Vec3/Vec4, Mat4
//   - Stages: assembly (vertex stage, clipping, culling), rasterization
//     (edge functions, interpolation, depth test)
//   - Helpers: built-in programs, texture sampling, obj (model loading)
//
// # Coordinate System
//
// Clip space follows the usual GL-style convention: after the perspective
// divide, x and y lie in [-1, 1] with y up and z is the depth in
// normalized device coordinates. The framebuffer uses computer graphics
// coordinates: origin (0,0) at top-left, x right, y down. The viewport
// transform flips y accordingly. Smaller depth values are closer; the
// depth test keeps the smallest depth seen at each pixel.
//
// # Concurrency
//
// A Draw call is synchronous and single-threaded, and a Framebuffer must
// not be shared between concurrent Draw calls. Distinct pipelines drawing
// into distinct framebuffers are independent.
package rast

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
