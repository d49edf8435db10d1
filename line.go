package rast

// DrawLine draws a straight line between two pixel coordinates using
// integer Bresenham stepping, bypassing the triangle pipeline. It exists
// for wireframe rendering and debug overlays; it performs no depth
// testing. Points outside the framebuffer are skipped, so endpoints may
// lie off screen.
func DrawLine[P any](fb *Framebuffer[P], x0, y0, x1, y1 int, c P) {
	transposed := false
	if abs(x1-x0) < abs(y1-y0) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		transposed = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0

	derr2 := abs(dy) * 2
	err2 := 0
	ystep := 1
	if dy < 0 {
		ystep = -1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		px, py := x, y
		if transposed {
			px, py = y, x
		}
		if fb.InBounds(px, py) {
			fb.color[py*fb.width+px] = c
		}

		err2 += derr2
		if err2 > dx {
			y += ystep
			err2 -= dx * 2
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
