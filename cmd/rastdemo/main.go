// Command rastdemo demonstrates the rast software rasterizer.
//
// With no flags it renders a lit triangle to demo.png. Point -model at a
// Wavefront OBJ file to render a model instead, optionally textured with
// -texture. The -mode flag selects the shading program and -frames > 1
// renders a turntable animation to numbered files.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/rast"
	"github.com/gogpu/rast/obj"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 800, "image height")
		output  = flag.String("output", "demo.png", "output file (frame number is appended when -frames > 1)")
		model   = flag.String("model", "", "Wavefront OBJ model to render (default: a built-in cube)")
		texture = flag.String("texture", "", "texture image for the phong mode")
		mode    = flag.String("mode", "phong", "shading mode: solid, phong, depth, wire")
		frames  = flag.Int("frames", 1, "number of turntable frames")
		fov     = flag.Float64("fov", 60, "vertical field of view in degrees")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		rast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mesh := cubeMesh()
	if *model != "" {
		var err error
		mesh, err = obj.LoadFile(*model)
		if err != nil {
			log.Fatalf("Failed to load model: %v", err)
		}
	}

	var tex *rast.Texture
	if *texture != "" {
		var err error
		tex, err = rast.LoadTexture(*texture)
		if err != nil {
			log.Fatalf("Failed to load texture: %v", err)
		}
	}

	fb := rast.NewFramebuffer[rast.RGBA](*width, *height)

	var bar *progressbar.ProgressBar
	if *frames > 1 {
		bar = progressbar.Default(int64(*frames), "rendering")
	}

	for frame := 0; frame < *frames; frame++ {
		angle := float32(frame) / float32(*frames) * 2 * math.Pi
		fb.Clear(rast.Hex("#202028"), rast.DepthFar)

		scene := sceneTransforms(angle, float32(*fov), float32(*width)/float32(*height))
		if err := renderFrame(fb, mesh, tex, *mode, scene); err != nil {
			log.Fatalf("Render failed: %v", err)
		}

		if err := rast.SavePNG(fb, framePath(*output, frame, *frames)); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	log.Printf("Done: %s (%dx%d, %d frame(s))", *output, *width, *height, *frames)
}

// transforms bundles the camera and model matrices of one frame.
type transforms struct {
	model rast.Mat4
	view  rast.Mat4
	proj  rast.Mat4
}

func sceneTransforms(angle, fovDeg, aspect float32) transforms {
	return transforms{
		model: rast.RotateY(angle),
		view: rast.LookAt(
			rast.V3(0, 1, 3),
			rast.V3(0, 0, 0),
			rast.V3(0, 1, 0),
		),
		proj: rast.Perspective(fovDeg*math.Pi/180, aspect, 0.1, 100),
	}
}

func renderFrame(fb *rast.Framebuffer[rast.RGBA], mesh []rast.StdAttribute, tex *rast.Texture, mode string, s transforms) error {
	switch mode {
	case "solid":
		// FlatProgram consumes clip-space positions, so transform here.
		mvp := s.proj.Mul(s.view).Mul(s.model)
		attrs := make([]rast.Vec4, len(mesh))
		for i, a := range mesh {
			attrs[i] = mvp.MulVec4(a.Pos)
		}
		prog := &rast.FlatProgram{Color: rast.White}
		pipe := rast.NewPipeline[rast.Vec4, rast.NoVarying, rast.RGBA](prog)
		return pipe.Draw(attrs, fb)

	case "phong":
		prog := &rast.PhongProgram{
			Model:    s.model,
			View:     s.view,
			Proj:     s.proj,
			LightDir: rast.V3(-1, -1, -1),
			Ambient:  0.15,
			Base:     rast.White,
			Tex:      tex,
		}
		pipe := rast.NewPipeline[rast.StdAttribute, rast.StdVarying, rast.RGBA](prog)
		return pipe.Draw(mesh, fb)

	case "depth":
		prog := &rast.DepthProgram{Matrix: s.proj.Mul(s.view).Mul(s.model)}
		pipe := rast.NewPipeline[rast.StdAttribute, rast.Float32, rast.RGBA](prog)
		return pipe.Draw(mesh, fb)

	case "wire":
		drawWireframe(fb, mesh, s.proj.Mul(s.view).Mul(s.model), rast.Green)
		return nil

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// drawWireframe projects each triangle by hand and draws its edges,
// bypassing the pipeline. Triangles with any vertex behind the camera
// are skipped rather than clipped; good enough for a debug view.
func drawWireframe(fb *rast.Framebuffer[rast.RGBA], mesh []rast.StdAttribute, mvp rast.Mat4, c rast.RGBA) {
	halfW := float32(fb.Width()) / 2
	halfH := float32(fb.Height()) / 2

	for i := 0; i+2 < len(mesh); i += 3 {
		var px, py [3]int
		visible := true
		for j := 0; j < 3; j++ {
			clip := mvp.MulVec4(mesh[i+j].Pos)
			if clip.W <= 0 {
				visible = false
				break
			}
			px[j] = int((clip.X/clip.W + 1) * halfW)
			py[j] = int((1 - clip.Y/clip.W) * halfH)
		}
		if !visible {
			continue
		}
		rast.DrawLine(fb, px[0], py[0], px[1], py[1], c)
		rast.DrawLine(fb, px[1], py[1], px[2], py[2], c)
		rast.DrawLine(fb, px[2], py[2], px[0], py[0], c)
	}
}

// framePath inserts the frame number before the extension when
// rendering more than one frame.
func framePath(output string, frame, frames int) string {
	if frames <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return fmt.Sprintf("%s-%03d%s", base, frame, ext)
}

// cubeMesh returns a unit cube centered at the origin with per-face
// normals and UVs, used when no model file is given.
func cubeMesh() []rast.StdAttribute {
	faces := []struct {
		normal  rast.Vec3
		corners [4]rast.Vec3
	}{
		{rast.V3(0, 0, 1), [4]rast.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
		{rast.V3(0, 0, -1), [4]rast.Vec3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}}},
		{rast.V3(1, 0, 0), [4]rast.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
		{rast.V3(-1, 0, 0), [4]rast.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}}},
		{rast.V3(0, 1, 0), [4]rast.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
		{rast.V3(0, -1, 0), [4]rast.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
	}
	uv := [4]rast.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	var mesh []rast.StdAttribute
	for _, f := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			mesh = append(mesh, rast.StdAttribute{
				Pos:  rast.Point3(f.corners[i].X*0.5, f.corners[i].Y*0.5, f.corners[i].Z*0.5),
				Norm: f.normal,
				UV:   uv[i],
			})
		}
	}
	return mesh
}
