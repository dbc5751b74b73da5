package window

import (
	"log/slog"
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/vecdraw/internal/session"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Code      key.Code
	Modifiers key.Modifiers
}

var digitCodes = [...]key.Code{
	key.Code0, key.Code1, key.Code2, key.Code3, key.Code4,
	key.Code5, key.Code6, key.Code7, key.Code8, key.Code9,
}

// keyboardAction maps a keyboard shortcut to the action it performs. Bound
// keys never reach the prompt, so nothing a command needs (letters, digits,
// space and minus) is bound without a modifier.
var keyboardAction = func() map[KeyShortcut]session.Action {
	m := map[KeyShortcut]session.Action{
		{key.CodeUpArrow, key.ModControl}:    session.ActionPanUp,
		{key.CodeDownArrow, key.ModControl}:  session.ActionPanDown,
		{key.CodeLeftArrow, key.ModControl}:  session.ActionPanLeft,
		{key.CodeRightArrow, key.ModControl}: session.ActionPanRight,

		{key.CodeUpArrow, key.ModShift}:    session.ActionMoveUp,
		{key.CodeDownArrow, key.ModShift}:  session.ActionMoveDown,
		{key.CodeLeftArrow, key.ModShift}:  session.ActionMoveLeft,
		{key.CodeRightArrow, key.ModShift}: session.ActionMoveRight,

		{key.CodeEqualSign, key.ModControl}:   session.ActionZoomIn,
		{key.CodeHyphenMinus, key.ModControl}: session.ActionZoomOut,
		{key.CodeEqualSign, key.ModAlt}:       session.ActionScaleUp,
		{key.CodeHyphenMinus, key.ModAlt}:     session.ActionScaleDown,

		{key.CodeLeftSquareBracket, key.ModControl}:  session.ActionTurnLeft,
		{key.CodeRightSquareBracket, key.ModControl}: session.ActionTurnRight,
		{key.CodeLeftSquareBracket, 0}:               session.ActionRotateLeft,
		{key.CodeRightSquareBracket, 0}:              session.ActionRotateRight,

		{key.CodeX, key.ModControl}: session.ActionUngroup,
		{key.CodeC, key.ModControl}: session.ActionCopy,
		{key.CodeTab, 0}:            session.ActionNext,
		{key.CodeDownArrow, 0}:      session.ActionSave,
		{key.CodeUpArrow, 0}:        session.ActionLoad,
	}
	for slot, code := range digitCodes {
		m[KeyShortcut{code, key.ModShift}] = session.GroupAction(slot)
	}
	return m
}()

// actionFor looks up the action bound to e.
func actionFor(e key.Event) (session.Action, bool) {
	a, ok := keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
	return a, ok
}

// handleKey applies a key event to s and reports whether the window should
// close. Releases are ignored; presses and repeats act.
func handleKey(s *session.Session, e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	switch e.Code {
	case key.CodeEscape:
		return true
	case key.CodeDeleteBackspace:
		s.Backspace()
		return false
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		s.Commit()
		return false
	}
	if a, ok := actionFor(e); ok {
		if err := s.Apply(a); err != nil {
			slog.Warn("key action failed", "action", a.String(), "err", err)
		}
		return false
	}
	if e.Modifiers&^key.ModShift == 0 && e.Rune > 0 && unicode.IsPrint(e.Rune) {
		s.Type(string(e.Rune))
	}
	return false
}
