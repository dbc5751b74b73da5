package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.jetify.com/typeid/v2"

	"github.com/example/vecdraw/internal/geom"
)

// IDPrefix is the typeid prefix of object identifiers.
const IDPrefix = "obj"

// Scale is a per-axis scale factor. Components are never negative.
type Scale struct {
	X, Y float32
}

// Identity is the scale that leaves points unchanged.
var Identity = Scale{1, 1}

// Object is a node in the scene graph. The same *Object may be held by several
// ObjectLists at once; edits through any of them are visible through all.
type Object struct {
	ID       string
	Shape    Shape
	Position geom.Point
	Scale    Scale
	// Rotation is in degrees.
	Rotation float32
	Color    Color
}

// ObjectList is an ordered list of shared objects.
type ObjectList []*Object

// NewObject places shape at position with identity transform and the default
// colour.
func NewObject(shape Shape, position geom.Point) *Object {
	return NewObjectWithColor(shape, position, DefaultColor)
}

// NewObjectWithColor is NewObject with an explicit colour.
func NewObjectWithColor(shape Shape, position geom.Point, c Color) *Object {
	return &Object{
		ID:       NewID(),
		Shape:    shape,
		Position: position,
		Scale:    Identity,
		Color:    c,
	}
}

// NewID generates a fresh object identifier.
func NewID() string {
	return typeid.MustGenerate(IDPrefix).String()
}

// ValidateID reports whether id is a well formed object identifier.
func ValidateID(id string) error {
	tid, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("parse object id %q: %w", id, err)
	}
	if tid.Prefix() != IDPrefix {
		return fmt.Errorf("object id %q: prefix %q, want %q", id, tid.Prefix(), IDPrefix)
	}
	return nil
}

// Points lowers the shape and applies the object's transform in the order
// scale, rotate, translate.
func (o *Object) Points() geom.Points {
	return o.points(DefaultWrapWidth)
}

func (o *Object) points(wrap int) geom.Points {
	pts := o.Shape.lower(o.Scale, wrap)
	pts.Scale(o.Scale.X, o.Scale.Y)
	pts.Rotate(Radians(o.Rotation))
	pts.Translate(o.Position.X, o.Position.Y)
	return pts
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// IsEmptyGroup reports whether o is a group without children.
func (o *Object) IsEmptyGroup() bool {
	g, ok := o.Shape.(*Group)
	return ok && len(g.Children) == 0
}

// Contains reports whether target is o or is reachable through o's group
// children.
func (o *Object) Contains(target *Object) bool {
	if o == target {
		return true
	}
	g, ok := o.Shape.(*Group)
	if !ok {
		return false
	}
	for _, c := range g.Children {
		if c.Contains(target) {
			return true
		}
	}
	return false
}

// String describes the object for listings.
func (o *Object) String() string {
	var detail string
	switch s := o.Shape.(type) {
	case *Circle:
		detail = fmt.Sprintf("%dx%d", s.Width, s.Height)
	case *Rect:
		detail = fmt.Sprintf("%v-%v", s.P0, s.P1)
	case *Polygon:
		detail = fmt.Sprintf("%d vertices", len(s.Points))
	case *Letters:
		detail = fmt.Sprintf("%q", s.Text)
	case *Lines:
		detail = fmt.Sprintf("%d lines", len(s.Lines))
	case *Group:
		detail = fmt.Sprintf("%d children", len(s.Children))
	}
	return fmt.Sprintf("%s %s at %v scale=(%g,%g) rot=%g°", o.Shape.Kind(), detail, o.Position, o.Scale.X, o.Scale.Y, o.Rotation)
}
