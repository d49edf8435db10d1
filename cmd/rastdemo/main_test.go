package main

import (
	"testing"

	"github.com/gogpu/rast"
)

// TestRenderFrameModes runs every shading mode against the built-in cube
// and checks each one touches the framebuffer.
func TestRenderFrameModes(t *testing.T) {
	fb := rast.NewFramebuffer[rast.RGBA](32, 32)
	mesh := cubeMesh()
	scene := sceneTransforms(0.3, 60, 1)

	for _, mode := range []string{"solid", "phong", "depth", "wire"} {
		fb.Clear(rast.Black, rast.DepthFar)
		if err := renderFrame(fb, mesh, nil, mode, scene); err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		shaded := 0
		for _, c := range fb.Pixels() {
			if c != rast.Black {
				shaded++
			}
		}
		if shaded == 0 {
			t.Errorf("mode %q drew nothing", mode)
		}
	}

	if err := renderFrame(fb, mesh, nil, "bogus", scene); err == nil {
		t.Error("unknown mode did not return an error")
	}
}

func TestFramePath(t *testing.T) {
	if got := framePath("demo.png", 2, 1); got != "demo.png" {
		t.Errorf("single frame path = %q, want demo.png", got)
	}
	if got := framePath("demo.png", 2, 10); got != "demo-002.png" {
		t.Errorf("multi frame path = %q, want demo-002.png", got)
	}
}
