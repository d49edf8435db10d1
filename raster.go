package rast

import "github.com/chewxy/math32"

// rasterize scan-converts one positive-orientation screen-space triangle
// into the framebuffer, running frag for every covered pixel that passes
// the depth test. It returns the number of fragments written.
//
// Coverage uses three edge functions evaluated at pixel centers
// (x+0.5, y+0.5) and stepped incrementally across the bounding box. A
// pixel is covered when all three edge values are positive, or zero on a
// top or left edge. The top-left rule makes coverage half-open: a pixel
// exactly on an edge shared by two triangles belongs to exactly one of
// them, so adjacent triangles neither overlap nor leave seams.
//
// Depth interpolates linearly in screen space from the vertices' NDC z.
// The test is strict less-than with the stored value, so on an exact tie
// the earlier fragment wins. Varyings interpolate perspective-correctly:
// the barycentric weights are rescaled by each vertex's 1/w and
// renormalized, which is the premultiply-by-1/w, divide-by-interpolated-
// 1/w correction folded into the weights.
func rasterize[V Varying[V], P any](fb *Framebuffer[P], t *triangle[V], frag func(V) (P, bool)) int {
	v0, v1, v2 := &t.v[0], &t.v[1], &t.v[2]

	area2 := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area2 <= 0 {
		return 0
	}
	invArea2 := 1 / area2

	// Clamped integer bounding box. The edge tests reject pixels
	// outside the triangle, so rounding outward is safe.
	minX := imax(int(math32.Floor(min3(v0.x, v1.x, v2.x))), 0)
	minY := imax(int(math32.Floor(min3(v0.y, v1.y, v2.y))), 0)
	maxX := imin(int(math32.Ceil(max3(v0.x, v1.x, v2.x))), fb.width-1)
	maxY := imin(int(math32.Ceil(max3(v0.y, v1.y, v2.y))), fb.height-1)
	if minX > maxX || minY > maxY {
		return 0
	}

	// Edge i is the edge opposite vertex i, so e_i / area2 is the
	// barycentric weight of vertex i.
	px := float32(minX) + 0.5
	py := float32(minY) + 0.5
	e0 := edgeFn(v1.x, v1.y, v2.x, v2.y, px, py)
	e1 := edgeFn(v2.x, v2.y, v0.x, v0.y, px, py)
	e2 := edgeFn(v0.x, v0.y, v1.x, v1.y, px, py)

	// Per-pixel steps: d(edgeFn)/dx is the edge's dy, d/dy is -dx.
	dx0, dy0 := v2.x-v1.x, v2.y-v1.y
	dx1, dy1 := v0.x-v2.x, v0.y-v2.y
	dx2, dy2 := v1.x-v0.x, v1.y-v0.y

	tl0 := topLeft(dx0, dy0)
	tl1 := topLeft(dx1, dy1)
	tl2 := topLeft(dx2, dy2)

	written := 0
	for y := minY; y <= maxY; y++ {
		r0, r1, r2 := e0, e1, e2
		row := y * fb.width
		for x := minX; x <= maxX; x++ {
			if covers(r0, tl0) && covers(r1, tl1) && covers(r2, tl2) {
				w0 := r0 * invArea2
				w1 := r1 * invArea2
				w2 := 1 - w0 - w1

				z := w0*v0.z + w1*v1.z + w2*v2.z
				idx := row + x
				if z < fb.depth[idx] {
					invW := w0*v0.invW + w1*v1.invW + w2*v2.invW
					pw0 := w0 * v0.invW / invW
					pw1 := w1 * v1.invW / invW
					pw2 := 1 - pw0 - pw1

					v := t.vr[0].Combine(t.vr[1], t.vr[2], pw0, pw1, pw2)
					if pix, ok := frag(v); ok {
						fb.color[idx] = pix
						fb.depth[idx] = z
						written++
					}
				}
			}
			r0 += dy0
			r1 += dy1
			r2 += dy2
		}
		e0 -= dx0
		e1 -= dx1
		e2 -= dx2
	}
	return written
}

// covers applies the top-left rule to one edge value: strictly positive
// is inside, zero is inside only on a top or left edge.
func covers(e float32, topLeft bool) bool {
	if e > 0 {
		return true
	}
	return e == 0 && topLeft
}

// topLeft classifies a directed edge with delta (dx, dy) in pixel
// coordinates (y down). For a positive-orientation triangle the interior
// is on the positive side of each edge; a left edge then runs downward
// (dy > 0) and a top edge is horizontal with the interior below it
// (dy == 0, dx < 0).
func topLeft(dx, dy float32) bool {
	return dy > 0 || (dy == 0 && dx < 0)
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
