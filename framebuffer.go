package rast

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/chewxy/math32"
)

// DepthFar is the conventional clear value for the depth plane:
// positive infinity, so the first fragment at a pixel always passes
// the depth test.
var DepthFar = math32.Inf(1)

// Framebuffer is a render target: a color plane of pixels of type P and
// a same-sized depth plane. The pixel type is whatever the program's
// fragment stage produces; the rasterizer never interprets it.
//
// Coordinates are bounds-checked. The pipeline never produces
// out-of-range coordinates, so an out-of-range access indicates a bug in
// the caller (or in the pipeline itself) and panics rather than failing
// silently.
//
// A Framebuffer is not safe for concurrent use; it must belong to one
// Draw call at a time.
type Framebuffer[P any] struct {
	width  int
	height int
	color  []P
	depth  []float32
}

// NewFramebuffer creates a framebuffer with the given dimensions.
// The color plane holds zero values of P and the depth plane holds
// zeros; call Clear before drawing.
func NewFramebuffer[P any](width, height int) *Framebuffer[P] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("rast: invalid framebuffer size %dx%d", width, height))
	}
	return &Framebuffer[P]{
		width:  width,
		height: height,
		color:  make([]P, width*height),
		depth:  make([]float32, width*height),
	}
}

// Width returns the width of the framebuffer.
func (f *Framebuffer[P]) Width() int {
	return f.width
}

// Height returns the height of the framebuffer.
func (f *Framebuffer[P]) Height() int {
	return f.height
}

// Clear resets every pixel to c and every depth cell to depth.
// Use DepthFar as the depth unless a specific far value is wanted.
func (f *Framebuffer[P]) Clear(c P, depth float32) {
	for i := range f.color {
		f.color[i] = c
	}
	for i := range f.depth {
		f.depth[i] = depth
	}
}

// At returns the pixel at (x, y).
func (f *Framebuffer[P]) At(x, y int) P {
	f.check(x, y)
	return f.color[y*f.width+x]
}

// Set writes the pixel at (x, y).
func (f *Framebuffer[P]) Set(x, y int, c P) {
	f.check(x, y)
	f.color[y*f.width+x] = c
}

// DepthAt returns the depth value at (x, y).
func (f *Framebuffer[P]) DepthAt(x, y int) float32 {
	f.check(x, y)
	return f.depth[y*f.width+x]
}

// SetDepth writes the depth value at (x, y).
func (f *Framebuffer[P]) SetDepth(x, y int, d float32) {
	f.check(x, y)
	f.depth[y*f.width+x] = d
}

// InBounds reports whether (x, y) addresses a pixel.
func (f *Framebuffer[P]) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Pixels returns the raw color plane in row-major order.
func (f *Framebuffer[P]) Pixels() []P {
	return f.color
}

// Depths returns the raw depth plane in row-major order.
func (f *Framebuffer[P]) Depths() []float32 {
	return f.depth
}

func (f *Framebuffer[P]) check(x, y int) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("rast: pixel (%d, %d) out of range %dx%d", x, y, f.width, f.height))
	}
}

// ToImage converts an RGBA framebuffer to an image.RGBA.
func ToImage(f *Framebuffer[RGBA]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	i := 0
	for _, c := range f.color {
		img.Pix[i+0] = uint8(clamp255(c.R * 255))
		img.Pix[i+1] = uint8(clamp255(c.G * 255))
		img.Pix[i+2] = uint8(clamp255(c.B * 255))
		img.Pix[i+3] = uint8(clamp255(c.A * 255))
		i += 4
	}
	return img
}

// SavePNG saves an RGBA framebuffer to a PNG file.
func SavePNG(f *Framebuffer[RGBA], path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return png.Encode(file, ToImage(f))
}

// DepthImage renders the depth plane as a grayscale image for
// inspection: the nearest finite depth maps to white, the farthest to
// black, and cells still at an infinite clear value stay black.
func DepthImage[P any](f *Framebuffer[P]) *image.Gray {
	minD := math32.Inf(1)
	maxD := math32.Inf(-1)
	for _, d := range f.depth {
		if math32.IsInf(d, 0) {
			continue
		}
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}

	img := image.NewGray(image.Rect(0, 0, f.width, f.height))
	if minD > maxD {
		return img
	}
	span := maxD - minD
	if span == 0 {
		span = 1
	}
	for i, d := range f.depth {
		if math32.IsInf(d, 0) {
			continue
		}
		img.Pix[i] = uint8(clamp255((1 - (d-minD)/span) * 255))
	}
	return img
}
