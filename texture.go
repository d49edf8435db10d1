package rast

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for LoadTexture
	_ "image/png"
	"os"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// Texture is an image prepared for sampling by a fragment stage.
// Texture coordinates are in [0, 1] with (0, 0) at the bottom-left,
// the usual model convention; rows are flipped at construction time so
// sampling needs no per-texel flip. Sampling clamps to the edge.
//
// Textures are immutable after construction and safe to share between
// programs.
type Texture struct {
	width  int
	height int
	texels []RGBA
}

// NewTexture builds a texture from an image.
func NewTexture(img image.Image) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	t := &Texture{
		width:  w,
		height: h,
		texels: make([]RGBA, w*h),
	}
	for y := 0; y < h; y++ {
		// Image row 0 is the top; texture row 0 is the bottom.
		row := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			t.texels[row+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return t
}

// LoadTexture reads and decodes an image file (PNG or JPEG).
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("rast: decoding texture %s: %w", path, err)
	}
	return NewTexture(img), nil
}

// Resized returns a copy of img scaled to the given size, for capping
// texture memory before NewTexture.
func Resized(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Sample returns the bilinearly filtered color at (u, v).
func (t *Texture) Sample(u, v float32) RGBA {
	// Texel centers sit at half-integer coordinates.
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// SampleNearest returns the nearest texel to (u, v), unfiltered.
func (t *Texture) SampleNearest(u, v float32) RGBA {
	x := int(math32.Floor(u * float32(t.width)))
	y := int(math32.Floor(v * float32(t.height)))
	return t.texel(x, y)
}

// texel reads one texel with clamp-to-edge addressing.
func (t *Texture) texel(x, y int) RGBA {
	x = imin(imax(x, 0), t.width-1)
	y = imin(imax(y, 0), t.height-1)
	return t.texels[y*t.width+x]
}
