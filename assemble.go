package rast

// screenVertex is a vertex after the perspective divide and viewport
// transform: pixel-space x and y, depth in normalized device
// coordinates, and the reciprocal of the clip-space w kept for
// perspective-correct interpolation. Near clipping guarantees w > 0
// before a vertex reaches this form.
type screenVertex struct {
	x, y float32
	z    float32
	invW float32
}

// triangle is a screen-space triangle with its three varyings, ready
// for rasterization. The assembler emits triangles in positive-area
// orientation only.
type triangle[V Varying[V]] struct {
	v  [3]screenVertex
	vr [3]V
}

// toScreen applies the perspective divide and viewport transform to one
// clipped vertex. x maps from [-1, 1] to [0, width] and y from [1, -1]
// to [0, height]: NDC y points up, pixel y points down.
func toScreen[V Varying[V]](cv clipVertex[V], halfW, halfH float32) screenVertex {
	invW := 1 / cv.pos.W
	return screenVertex{
		x:    (cv.pos.X*invW + 1) * halfW,
		y:    (1 - cv.pos.Y*invW) * halfH,
		z:    cv.pos.Z * invW,
		invW: invW,
	}
}

// edgeFn is the signed doubled area of triangle (a, b, p). It is
// positive when p lies to the interior side of the directed edge a->b
// under the assembler's front-facing orientation, and edgeFn of a
// triangle's own vertices is its doubled signed area.
func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (by-ay)*(px-ax) - (bx-ax)*(py-ay)
}

// assembleStats counts what happened to the triangles of one Draw call,
// for debug logging.
type assembleStats struct {
	in      int
	clipped int
	culled  int
	emitted int
}

// assemble runs the vertex stage over one attribute triple, clips the
// resulting triangle against the near plane, maps survivors to screen
// space and applies backface culling. Surviving triangles are appended
// to dst, which is returned (the caller reuses its backing array across
// triples).
func assemble[A any, V Varying[V], P any](
	dst []triangle[V],
	prog Program[A, V, P],
	attrs []A,
	fbWidth, fbHeight int,
	opts *pipelineOptions,
	stats *assembleStats,
) []triangle[V] {
	var clip [3]clipVertex[V]
	for i := range clip {
		clip[i].pos, clip[i].vr = prog.Vertex(attrs[i])
	}

	var clipped [2][3]clipVertex[V]
	n := clipNear(clip, opts.nearEps, &clipped)
	if n == 0 {
		stats.clipped++
		return dst
	}

	halfW := float32(fbWidth) / 2
	halfH := float32(fbHeight) / 2

	for _, cv := range clipped[:n] {
		var t triangle[V]
		for i := range cv {
			t.v[i] = toScreen(cv[i], halfW, halfH)
			t.vr[i] = cv[i].vr
		}

		area2 := edgeFn(t.v[0].x, t.v[0].y, t.v[1].x, t.v[1].y, t.v[2].x, t.v[2].y)
		culled := false
		switch opts.cull {
		case CullClockwise:
			culled = area2 <= 0
		case CullCounterClockwise:
			culled = area2 >= 0
		case CullNone:
			culled = area2 == 0
		}
		if culled {
			stats.culled++
			continue
		}
		if area2 < 0 {
			// Normalize to positive orientation so the rasterizer
			// sees one winding.
			t.v[1], t.v[2] = t.v[2], t.v[1]
			t.vr[1], t.vr[2] = t.vr[2], t.vr[1]
		}

		stats.emitted++
		dst = append(dst, t)
	}
	return dst
}
