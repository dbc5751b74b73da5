package geom

import "github.com/chewxy/math32"

// LinePoints rasterizes the segment p0-p1 with an incremental slope walk and
// floor(y+0.5) rounding. The two endpoints come first, followed by one sample
// per interior column (or row, for steep segments). Argument order does not
// change the resulting set.
func LinePoints(p0, p1 Point) Points {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx < 0 {
		return LinePoints(p1, p0)
	}
	// Steep segments, vertical ones included, are walked on the transposed
	// problem; the slope check must come before dx == 0 is given slope 0.
	if abs(dy) > dx {
		pts := shallow(transpose(p1), transpose(p0))
		for i, p := range pts {
			pts[i] = transpose(p)
		}
		return pts
	}
	return shallow(p0, p1)
}

// shallow walks a segment whose |slope| is at most one along x.
func shallow(p0, p1 Point) Points {
	if p1.X < p0.X {
		p0, p1 = p1, p0
	}
	dx := p1.X - p0.X
	var m float32
	if dx != 0 {
		m = float32(p1.Y-p0.Y) / float32(dx)
	}
	pts := make(Points, 0, dx+2)
	pts = append(pts, p0, p1)
	y := float32(p0.Y)
	for x := p0.X + 1; x < p1.X; x++ {
		y += m
		pts = append(pts, Pt(x, int(math32.Floor(y+0.5))))
	}
	return pts
}

func transpose(p Point) Point { return Pt(p.Y, p.X) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RectPoints returns the four edges of the axis-aligned rectangle with
// opposite corners p0 and p1. Corners appear once per adjacent edge.
func RectPoints(p0, p1 Point) Points {
	pts := LinePoints(Pt(p0.X, p0.Y), Pt(p1.X, p0.Y))
	pts.Concat(LinePoints(Pt(p0.X, p0.Y), Pt(p0.X, p1.Y)))
	pts.Concat(LinePoints(Pt(p1.X, p0.Y), Pt(p1.X, p1.Y)))
	pts.Concat(LinePoints(Pt(p0.X, p1.Y), Pt(p1.X, p1.Y)))
	return pts
}

// PolygonPoints connects each consecutive pair of vertices and then always
// adds the edge from the first vertex to the last one, even when the vertex
// list already returns to its start. It panics with fewer than two vertices.
func PolygonPoints(vertices []Point) Points {
	if len(vertices) < 2 {
		panic("geom: polygon needs at least two vertices")
	}
	var pts Points
	for i := 0; i+1 < len(vertices); i++ {
		pts.Concat(LinePoints(vertices[i], vertices[i+1]))
	}
	pts.Concat(LinePoints(vertices[0], vertices[len(vertices)-1]))
	return pts
}

// LinesPoints rasterizes every segment in order.
func LinesPoints(lines []Line) Points {
	var pts Points
	for _, l := range lines {
		pts.Concat(LinePoints(l.P0, l.P1))
	}
	return pts
}

// EllipsePoints runs the two-region midpoint ellipse algorithm for semi-axes a
// (along x) and b (along y), mirroring every step into the four quadrants
// around center. Only integer arithmetic is used.
func EllipsePoints(center Point, a, b int) Points {
	a2 := a * a
	b2 := b * b
	x, y := 0, b

	pts := ellipsePoints(nil, x, y, center)

	// Region 1: the curve is flatter than 45°, x advances every step.
	d1 := b2 - a2*b + a2/4
	for a2*y > b2*(x+1) {
		if d1 < 0 {
			d1 += b2 * (2*x + 3)
		} else {
			d1 += b2*(2*x+3) + a2*(-2*y+2)
			y--
		}
		x++
		pts = ellipsePoints(pts, x, y, center)
	}

	// Region 2: seeded once from where region 1 stopped, y falls every step.
	d2 := b2*x*x + a2*(y-1)*(y-1) - a2*b2
	for y > 0 {
		if d2 < 0 {
			d2 += b2*(2*x+2) + a2*(-2*y+3)
			x++
		} else {
			d2 += a2 * (-2*y + 3)
		}
		y--
		pts = ellipsePoints(pts, x, y, center)
	}
	return pts
}

func ellipsePoints(pts Points, x, y int, c Point) Points {
	return append(pts,
		Pt(c.X+x, c.Y+y),
		Pt(c.X-x, c.Y+y),
		Pt(c.X+x, c.Y-y),
		Pt(c.X-x, c.Y-y),
	)
}
