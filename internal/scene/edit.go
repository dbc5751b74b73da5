package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyScene is returned by selection operations on a scene with no
	// objects.
	ErrEmptyScene = errors.New("scene has no objects")
	// ErrInvalidSlot is returned for group slots outside 0-9.
	ErrInvalidSlot = errors.New("invalid group slot")
	// ErrGroupCycle is returned when a group would end up inside itself.
	ErrGroupCycle = errors.New("group would contain itself")
)

// Add appends objects to the top level.
func (s *Scene) Add(objs ...*Object) {
	s.Objects = append(s.Objects, objs...)
}

// Selection returns the selected object.
func (s *Scene) Selection() (*Object, error) {
	if len(s.Objects) == 0 {
		return nil, ErrEmptyScene
	}
	s.clampSelection()
	return s.Objects[s.Selected], nil
}

func (s *Scene) clampSelection() {
	switch {
	case len(s.Objects) == 0, s.Selected < 0:
		s.Selected = 0
	case s.Selected >= len(s.Objects):
		s.Selected = len(s.Objects) - 1
	}
}

// MoveSelected translates the selected object.
func (s *Scene) MoveSelected(dx, dy int) error {
	o, err := s.Selection()
	if err != nil {
		return err
	}
	o.Position.X += dx
	o.Position.Y += dy
	return nil
}

// ScaleSelected adds d to both scale components of the selected object.
// Components stop at zero.
func (s *Scene) ScaleSelected(d float32) error {
	o, err := s.Selection()
	if err != nil {
		return err
	}
	o.Scale = o.Scale.add(d)
	return nil
}

// RotateSelected adds d degrees to the selected object's rotation.
func (s *Scene) RotateSelected(d float32) error {
	o, err := s.Selection()
	if err != nil {
		return err
	}
	o.Rotation += d
	return nil
}

// Pan moves the camera.
func (s *Scene) Pan(dx, dy int) {
	s.Camera.X += dx
	s.Camera.Y += dy
}

// Zoom adds d to both global scale components, stopping at zero.
func (s *Scene) Zoom(d float32) {
	s.Scale = s.Scale.add(d)
}

// Turn adds d degrees to the global rotation.
func (s *Scene) Turn(d float32) {
	s.Rotation += d
}

func (sc Scale) add(d float32) Scale {
	sc.X = max(sc.X+d, 0)
	sc.Y = max(sc.Y+d, 0)
	return sc
}

// AssignToGroup moves the selected object out of the top level and into the
// children of Groups[slot]. The selection resets to the first object.
func (s *Scene) AssignToGroup(slot int) error {
	if slot < 0 || slot >= len(s.Groups) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	o, err := s.Selection()
	if err != nil {
		return err
	}
	target := s.Groups[slot]
	if o.Contains(target) {
		return fmt.Errorf("%w: slot %d", ErrGroupCycle, slot)
	}
	g, ok := target.Shape.(*Group)
	if !ok {
		return fmt.Errorf("%w: slot %d holds a %s", ErrInvalidSlot, slot, target.Shape.Kind())
	}
	g.Children = append(g.Children, o)
	s.Objects = append(s.Objects[:s.Selected:s.Selected], s.Objects[s.Selected+1:]...)
	s.Selected = 0
	s.clampSelection()
	Logger().Debug("assigned to group", "slot", slot, "object", o.ID, "children", len(g.Children))
	return nil
}

// Ungroup moves every child of the selected group to the end of the top level.
// The group itself stays, now empty. It is a no-op for other shapes.
func (s *Scene) Ungroup() error {
	o, err := s.Selection()
	if err != nil {
		return err
	}
	g, ok := o.Shape.(*Group)
	if !ok {
		return nil
	}
	children := g.Children
	g.Children = nil
	s.Objects = append(s.Objects, children...)
	Logger().Debug("ungrouped", "object", o.ID, "released", len(children))
	return nil
}

// SelectNext advances the selection with wrap-around, skipping empty groups.
// When every object is an empty group the selection stays put and false is
// returned.
func (s *Scene) SelectNext() bool {
	n := len(s.Objects)
	if n == 0 {
		return false
	}
	s.clampSelection()
	for step := 1; step <= n; step++ {
		i := (s.Selected + step) % n
		if !s.Objects[i].IsEmptyGroup() {
			s.Selected = i
			return true
		}
	}
	return false
}
