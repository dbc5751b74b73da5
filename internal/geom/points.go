package geom

import (
	"fmt"
	"image"
	"sort"

	"github.com/chewxy/math32"
)

// Point is an integer pixel coordinate.
type Point = image.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return image.Pt(x, y) }

// Line is a segment between two points.
type Line struct {
	P0 Point
	P1 Point
}

// L is shorthand for Line{P0: Pt(x0, y0), P1: Pt(x1, y1)}.
func L(x0, y0, x1, y1 int) Line { return Line{P0: Pt(x0, y0), P1: Pt(x1, y1)} }

// Points is an unordered set of pixels produced by the primitives. All
// transforms mutate the receiver in place.
type Points []Point

// Translate adds (dx, dy) to every point.
func (ps Points) Translate(dx, dy int) {
	for i := range ps {
		ps[i].X += dx
		ps[i].Y += dy
	}
}

// Rotate turns every point by a radians about the origin and truncates the
// result. The matrix is x' = x·cos + y·sin, y' = x·sin + y·cos, not the
// textbook rotation.
func (ps Points) Rotate(a float32) {
	s := math32.Sin(a)
	c := math32.Cos(a)
	for i, p := range ps {
		x := float32(p.X)
		y := float32(p.Y)
		ps[i].X = int(x*c + y*s)
		ps[i].Y = int(x*s + y*c)
	}
}

// Scale multiplies the coordinates by (sx, sy) and truncates. Both factors must
// be non-negative; a negative factor panics.
func (ps Points) Scale(sx, sy float32) {
	if sx < 0 || sy < 0 {
		panic(fmt.Sprintf("geom: negative scale factor (%g, %g)", sx, sy))
	}
	for i, p := range ps {
		ps[i].X = int(float32(p.X) * sx)
		ps[i].Y = int(float32(p.Y) * sy)
	}
}

// Concat appends other to the set.
func (ps *Points) Concat(other Points) {
	*ps = append(*ps, other...)
}

// Scissor keeps the points inside [p0.X-1, p1.X+1] × [p0.Y-1, p1.Y+1]. The set
// is sorted by x, cut with binary searches, then sorted by y and cut again, so
// the survivors come back ordered by y.
func (ps *Points) Scissor(p0, p1 Point) {
	s := *ps
	sort.SliceStable(s, func(i, j int) bool { return s[i].X < s[j].X })
	lo := sort.Search(len(s), func(i int) bool { return s[i].X >= p0.X-1 })
	hi := sort.Search(len(s), func(i int) bool { return s[i].X > p1.X+1 })
	if hi < lo {
		hi = lo
	}
	s = s[lo:hi]

	sort.SliceStable(s, func(i, j int) bool { return s[i].Y < s[j].Y })
	lo = sort.Search(len(s), func(i int) bool { return s[i].Y >= p0.Y-1 })
	hi = sort.Search(len(s), func(i int) bool { return s[i].Y > p1.Y+1 })
	if hi < lo {
		hi = lo
	}
	*ps = append(Points(nil), s[lo:hi]...)
}

// ScissorIter keeps the points with p0.X <= x < p1.X and p0.Y <= y < p1.Y.
// Unlike Scissor the box is half-open with no slack, and the surviving points
// keep their original order.
func (ps *Points) ScissorIter(p0, p1 Point) {
	s := (*ps)[:0]
	for _, p := range *ps {
		if p.X >= p0.X && p.X < p1.X {
			s = append(s, p)
		}
	}
	out := s[:0]
	for _, p := range s {
		if p.Y >= p0.Y && p.Y < p1.Y {
			out = append(out, p)
		}
	}
	*ps = out
}

// Bounds returns the smallest rectangle containing every point, or the empty
// rectangle for an empty set.
func (ps Points) Bounds() image.Rectangle {
	if len(ps) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: ps[0], Max: ps[0].Add(image.Pt(1, 1))}
	for _, p := range ps[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}
