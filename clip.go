package rast

// clipVertex is a vertex between the vertex stage and the perspective
// divide: a clip-space position and its varying.
type clipVertex[V Varying[V]] struct {
	pos Vec4
	vr  V
}

// clipNear clips one triangle against the near plane w = eps.
// It writes the surviving triangles to out and returns how many there
// are (0, 1 or 2). Vertex winding is preserved: survivors keep the
// cyclic order of the input triangle.
//
// The case analysis is over how many vertices are inside (w > eps):
//
//	3 inside: pass through unchanged
//	2 inside: the quad left after cutting one corner, split in two
//	1 inside: the tip of the triangle at the surviving vertex
//	0 inside: dropped
//
// Intersections are computed in homogeneous coordinates: along an edge
// from an inside vertex a to an outside vertex b, w crosses eps at
// t = (eps - a.w) / (b.w - a.w), and both the position and the varying
// are interpolated at t.
func clipNear[V Varying[V]](tri [3]clipVertex[V], eps float32, out *[2][3]clipVertex[V]) int {
	in0 := tri[0].pos.W > eps
	in1 := tri[1].pos.W > eps
	in2 := tri[2].pos.W > eps

	switch count(in0) + count(in1) + count(in2) {
	case 3:
		out[0] = tri
		return 1

	case 2:
		// Rotate so the outside vertex is tri[2].
		switch {
		case !in0:
			tri[0], tri[1], tri[2] = tri[1], tri[2], tri[0]
		case !in1:
			tri[0], tri[1], tri[2] = tri[2], tri[0], tri[1]
		}
		bc := clipEdge(tri[1], tri[2], eps)
		ac := clipEdge(tri[0], tri[2], eps)
		out[0] = [3]clipVertex[V]{tri[0], tri[1], bc}
		out[1] = [3]clipVertex[V]{tri[0], bc, ac}
		return 2

	case 1:
		// Rotate so the inside vertex is tri[0].
		switch {
		case in1:
			tri[0], tri[1], tri[2] = tri[1], tri[2], tri[0]
		case in2:
			tri[0], tri[1], tri[2] = tri[2], tri[0], tri[1]
		}
		ab := clipEdge(tri[0], tri[1], eps)
		ac := clipEdge(tri[0], tri[2], eps)
		out[0] = [3]clipVertex[V]{tri[0], ab, ac}
		return 1

	default:
		return 0
	}
}

// clipEdge returns the point where the edge from inside vertex a to
// outside vertex b crosses the plane w = eps.
func clipEdge[V Varying[V]](a, b clipVertex[V], eps float32) clipVertex[V] {
	t := (eps - a.pos.W) / (b.pos.W - a.pos.W)
	return clipVertex[V]{
		pos: a.pos.Lerp(b.pos, t),
		vr:  a.vr.Combine(b.vr, a.vr, 1-t, t, 0),
	}
}

func count(b bool) int {
	if b {
		return 1
	}
	return 0
}
