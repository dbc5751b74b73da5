package scene

import (
	"github.com/example/vecdraw/internal/geom"
)

// Kind names a shape variant.
type Kind int

const (
	KindCircle Kind = iota
	KindRect
	KindPolygon
	KindLetters
	KindLines
	KindGroup
)

var kindNames = [...]string{
	KindCircle:  "Circle",
	KindRect:    "Rect",
	KindPolygon: "Polygon",
	KindLetters: "Letters",
	KindLines:   "Lines",
	KindGroup:   "Group",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Shape is the geometry of an Object in its local coordinates. The set of
// variants is closed.
type Shape interface {
	Kind() Kind
	// Lower produces the unscaled local point set. The scale argument is the
	// owning object's scale; no built-in shape needs it because the object
	// applies its scale after lowering.
	Lower(scale Scale) geom.Points

	lower(scale Scale, wrap int) geom.Points
}

// Circle is an axis-aligned ellipse centred on the origin. Width and Height
// are the semi-axes along x and y.
type Circle struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle outline.
type Rect struct {
	P0 geom.Point
	P1 geom.Point
}

// Polygon is a closed outline through at least two vertices.
type Polygon struct {
	Points []geom.Point
}

// Letters is text rendered with the built-in stroke font.
type Letters struct {
	Text string
}

// Lines is a free set of segments.
type Lines struct {
	Lines []geom.Line
}

// Group holds child objects, each drawn with its own transform.
type Group struct {
	Children ObjectList
}

func (*Circle) Kind() Kind  { return KindCircle }
func (*Rect) Kind() Kind    { return KindRect }
func (*Polygon) Kind() Kind { return KindPolygon }
func (*Letters) Kind() Kind { return KindLetters }
func (*Lines) Kind() Kind   { return KindLines }
func (*Group) Kind() Kind   { return KindGroup }

func (c *Circle) Lower(s Scale) geom.Points  { return c.lower(s, DefaultWrapWidth) }
func (r *Rect) Lower(s Scale) geom.Points    { return r.lower(s, DefaultWrapWidth) }
func (p *Polygon) Lower(s Scale) geom.Points { return p.lower(s, DefaultWrapWidth) }
func (l *Letters) Lower(s Scale) geom.Points { return l.lower(s, DefaultWrapWidth) }
func (l *Lines) Lower(s Scale) geom.Points   { return l.lower(s, DefaultWrapWidth) }
func (g *Group) Lower(s Scale) geom.Points   { return g.lower(s, DefaultWrapWidth) }

func (c *Circle) lower(Scale, int) geom.Points {
	return geom.EllipsePoints(geom.Pt(0, 0), c.Width, c.Height)
}

func (r *Rect) lower(Scale, int) geom.Points {
	return geom.RectPoints(r.P0, r.P1)
}

func (p *Polygon) lower(Scale, int) geom.Points {
	return geom.PolygonPoints(p.Points)
}

func (l *Lines) lower(Scale, int) geom.Points {
	return geom.LinesPoints(l.Lines)
}

// lower lays glyph i out at ((advance·i) mod wrap, advance·⌊advance·i/wrap⌋).
func (l *Letters) lower(s Scale, wrap int) geom.Points {
	if wrap <= 0 {
		wrap = DefaultWrapWidth
	}
	var pts geom.Points
	i := 0
	for _, r := range l.Text {
		g := Glyph(r)
		gp := g.lower(s, wrap)
		off := GlyphAdvance * i
		gp.Translate(off%wrap, GlyphAdvance*(off/wrap))
		pts.Concat(gp)
		i++
	}
	return pts
}

func (g *Group) lower(_ Scale, wrap int) geom.Points {
	var pts geom.Points
	for _, o := range g.Children {
		pts.Concat(o.points(wrap))
	}
	return pts
}
