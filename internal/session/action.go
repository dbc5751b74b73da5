package session

import (
	"errors"
	"fmt"

	"github.com/example/vecdraw/internal/scene"
)

// ErrUnknownAction is returned by Apply for actions it does not handle.
var ErrUnknownAction = errors.New("unknown action")

// Action is an edit bound to a key or a shell verb. Step sizes come from the
// session's config.Steps.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionScaleUp
	ActionScaleDown
	ActionRotateLeft
	ActionRotateRight
	ActionZoomIn
	ActionZoomOut
	ActionTurnLeft
	ActionTurnRight
	ActionUngroup
	ActionSave
	ActionLoad
	ActionCopy
	// ActionGroup0 assigns the selection to slot 0; slot n is ActionGroup0+n.
	ActionGroup0
	actionGroupEnd = ActionGroup0 + scene.GroupSlots
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionNext:        "next",
	ActionMoveUp:      "move-up",
	ActionMoveDown:    "move-down",
	ActionMoveLeft:    "move-left",
	ActionMoveRight:   "move-right",
	ActionPanUp:       "pan-up",
	ActionPanDown:     "pan-down",
	ActionPanLeft:     "pan-left",
	ActionPanRight:    "pan-right",
	ActionScaleUp:     "scale-up",
	ActionScaleDown:   "scale-down",
	ActionRotateLeft:  "rotate-left",
	ActionRotateRight: "rotate-right",
	ActionZoomIn:      "zoom-in",
	ActionZoomOut:     "zoom-out",
	ActionTurnLeft:    "turn-left",
	ActionTurnRight:   "turn-right",
	ActionUngroup:     "ungroup",
	ActionSave:        "save",
	ActionLoad:        "load",
	ActionCopy:        "copy",
}

// GroupAction returns the action assigning the selection to slot.
func GroupAction(slot int) Action {
	return ActionGroup0 + Action(slot)
}

// Slot reports the group slot of a group action.
func (a Action) Slot() (int, bool) {
	if a >= ActionGroup0 && a < actionGroupEnd {
		return int(a - ActionGroup0), true
	}
	return 0, false
}

func (a Action) String() string {
	if slot, ok := a.Slot(); ok {
		return fmt.Sprintf("group-%d", slot)
	}
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// apply runs a pure scene edit. The caller holds the lock.
func (s *Session) apply(a Action) error {
	sc := s.scene
	st := s.steps
	if slot, ok := a.Slot(); ok {
		return sc.AssignToGroup(slot)
	}
	switch a {
	case ActionNext:
		sc.SelectNext()
	case ActionMoveUp:
		return sc.MoveSelected(0, -st.Move)
	case ActionMoveDown:
		return sc.MoveSelected(0, st.Move)
	case ActionMoveLeft:
		return sc.MoveSelected(-st.Move, 0)
	case ActionMoveRight:
		return sc.MoveSelected(st.Move, 0)
	case ActionPanUp:
		sc.Pan(0, -st.Pan)
	case ActionPanDown:
		sc.Pan(0, st.Pan)
	case ActionPanLeft:
		sc.Pan(-st.Pan, 0)
	case ActionPanRight:
		sc.Pan(st.Pan, 0)
	case ActionScaleUp:
		return sc.ScaleSelected(st.Scale)
	case ActionScaleDown:
		return sc.ScaleSelected(-st.Scale)
	case ActionRotateLeft:
		return sc.RotateSelected(-st.Rotate)
	case ActionRotateRight:
		return sc.RotateSelected(st.Rotate)
	case ActionZoomIn:
		sc.Zoom(st.Zoom)
	case ActionZoomOut:
		sc.Zoom(-st.Zoom)
	case ActionTurnLeft:
		sc.Turn(-st.Turn)
	case ActionTurnRight:
		sc.Turn(st.Turn)
	case ActionUngroup:
		return sc.Ungroup()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAction, a)
	}
	return nil
}
