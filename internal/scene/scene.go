package scene

import (
	"image/color"

	"github.com/example/vecdraw/internal/geom"
)

// GroupSlots is the number of group slots every scene carries.
const GroupSlots = 10

// Painter receives the final, screen-space point set of each object.
type Painter interface {
	Paint(c color.Color, pts geom.Points)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(c color.Color, pts geom.Points)

// Paint calls f(c, pts).
func (f PainterFunc) Paint(c color.Color, pts geom.Points) { f(c, pts) }

// Scene is the root of the scene graph plus the global view transform.
//
// Groups[i] is always also present in Objects until it is itself moved into
// another group. Selected indexes Objects and is kept in range.
type Scene struct {
	Objects  ObjectList
	Selected int
	Groups   ObjectList
	Camera   geom.Point
	Scale    Scale
	// Rotation is in degrees.
	Rotation float32

	// WrapWidth is the text wrap budget used when lowering Letters.
	WrapWidth int
	// Highlight paints the selected object.
	Highlight Color
}

// New returns an empty scene holding only its ten empty group slots.
func New() *Scene {
	s := &Scene{
		Scale:     Identity,
		WrapWidth: DefaultWrapWidth,
		Highlight: HighlightColor,
	}
	for i := 0; i < GroupSlots; i++ {
		g := NewObject(&Group{}, geom.Pt(0, 0))
		s.Groups = append(s.Groups, g)
		s.Objects = append(s.Objects, g)
	}
	return s
}

// NewStarter returns the scene a fresh drawing begins with: the group slots, an
// empty command node at (50,50) bound to the returned prompt, and a demo
// ellipse at (300,300).
func NewStarter() (*Scene, *Prompt) {
	s := New()
	cmd := NewObject(&Letters{}, geom.Pt(50, 50))
	demo := NewObject(&Circle{Width: 100, Height: 50}, geom.Pt(300, 300))
	s.Add(cmd, demo)
	p, _ := NewPrompt(cmd)
	return s, p
}

// Draw hands each object's points to p in list order. The global transform is
// translate by -Camera, then scale, then rotate. The selected object is
// painted in the highlight colour.
func (s *Scene) Draw(p Painter) {
	wrap := s.WrapWidth
	if wrap <= 0 {
		wrap = DefaultWrapWidth
	}
	for i, o := range s.Objects {
		var c color.Color = o.Color
		if i == s.Selected {
			c = s.Highlight
		}
		pts := o.points(wrap)
		pts.Translate(-s.Camera.X, -s.Camera.Y)
		pts.Scale(s.Scale.X, s.Scale.Y)
		pts.Rotate(Radians(s.Rotation))
		p.Paint(c, pts)
	}
}

// CommandNode returns the first top-level Letters object, or nil.
func (s *Scene) CommandNode() *Object {
	for _, o := range s.Objects {
		if _, ok := o.Shape.(*Letters); ok {
			return o
		}
	}
	return nil
}
