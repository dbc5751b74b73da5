package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vecdraw/internal/geom"
)

func TestSelectionEmpty(t *testing.T) {
	s := &Scene{}
	_, err := s.Selection()
	assert.ErrorIs(t, err, ErrEmptyScene)
	assert.ErrorIs(t, s.MoveSelected(1, 1), ErrEmptyScene)
	assert.ErrorIs(t, s.ScaleSelected(1), ErrEmptyScene)
	assert.ErrorIs(t, s.RotateSelected(1), ErrEmptyScene)
	assert.ErrorIs(t, s.Ungroup(), ErrEmptyScene)
	assert.False(t, s.SelectNext())
}

func TestSelectionClamped(t *testing.T) {
	s := New()
	s.Selected = 99
	o, err := s.Selection()
	require.NoError(t, err)
	assert.Same(t, s.Objects[GroupSlots-1], o)
	assert.Equal(t, GroupSlots-1, s.Selected)
}

func TestEditSelected(t *testing.T) {
	s := New()
	o := NewObject(&Circle{Width: 5, Height: 5}, geom.Pt(0, 0))
	s.Add(o)
	s.Selected = GroupSlots

	require.NoError(t, s.MoveSelected(5, -5))
	require.NoError(t, s.RotateSelected(3))
	require.NoError(t, s.ScaleSelected(0.5))
	assert.Equal(t, geom.Pt(5, -5), o.Position)
	assert.Equal(t, float32(3), o.Rotation)
	assert.Equal(t, Scale{1.5, 1.5}, o.Scale)

	require.NoError(t, s.ScaleSelected(-10))
	assert.Equal(t, Scale{0, 0}, o.Scale)
	assert.NotPanics(t, func() { record(s) })
}

func TestGlobalEdits(t *testing.T) {
	s := New()
	s.Pan(5, -5)
	s.Turn(-3)
	s.Zoom(0.1)
	assert.Equal(t, geom.Pt(5, -5), s.Camera)
	assert.Equal(t, float32(-3), s.Rotation)
	assert.InDelta(t, 1.1, s.Scale.X, 1e-6)

	s.Zoom(-5)
	assert.Equal(t, Scale{0, 0}, s.Scale)
}

func TestAssignToGroup(t *testing.T) {
	s := New()
	o := NewObject(&Circle{Width: 5, Height: 5}, geom.Pt(0, 0))
	s.Add(o)
	s.Selected = GroupSlots

	require.NoError(t, s.AssignToGroup(2))
	assert.Len(t, s.Objects, GroupSlots)
	assert.NotContains(t, s.Objects, o)
	assert.Equal(t, ObjectList{o}, s.Groups[2].Shape.(*Group).Children)
	assert.Equal(t, 0, s.Selected)

	require.NoError(t, s.MoveSelected(0, 0))
}

func TestAssignToGroupInvalidSlot(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.AssignToGroup(10), ErrInvalidSlot)
	assert.ErrorIs(t, s.AssignToGroup(-1), ErrInvalidSlot)
	assert.Len(t, s.Objects, GroupSlots)
}

func TestAssignToGroupRefusesCycles(t *testing.T) {
	s := New()
	s.Selected = 3
	assert.ErrorIs(t, s.AssignToGroup(3), ErrGroupCycle)
	assert.Len(t, s.Objects, GroupSlots)

	// group 4 into group 5, then group 5 into group 4
	s.Selected = 4
	require.NoError(t, s.AssignToGroup(5))
	s.Selected = 4
	require.Same(t, s.Groups[5], s.Objects[4])
	assert.ErrorIs(t, s.AssignToGroup(4), ErrGroupCycle)
}

func TestUngroup(t *testing.T) {
	s := New()
	a := NewObject(&Circle{}, geom.Pt(0, 0))
	b := NewObject(&Circle{}, geom.Pt(1, 1))
	s.Groups[0].Shape.(*Group).Children = ObjectList{a, b}
	s.Selected = 0

	require.NoError(t, s.Ungroup())
	assert.True(t, s.Groups[0].IsEmptyGroup())
	assert.Equal(t, ObjectList{a, b}, s.Objects[GroupSlots:])

	s.Selected = GroupSlots
	require.NoError(t, s.Ungroup())
	assert.Len(t, s.Objects, GroupSlots+2)
}

func TestSelectNextSkipsEmptyGroups(t *testing.T) {
	s := New()
	assert.False(t, s.SelectNext())
	assert.Equal(t, 0, s.Selected)

	o := NewObject(&Circle{}, geom.Pt(0, 0))
	s.Add(o)
	assert.True(t, s.SelectNext())
	assert.Equal(t, GroupSlots, s.Selected)
	// wraps around past the empty groups back to the same object
	assert.True(t, s.SelectNext())
	assert.Equal(t, GroupSlots, s.Selected)

	s.Groups[1].Shape.(*Group).Children = ObjectList{NewObject(&Circle{}, geom.Pt(0, 0))}
	assert.True(t, s.SelectNext())
	assert.Equal(t, 1, s.Selected)
}
