package session

import (
	"image"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vecdraw/internal/config"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/scene"
	"github.com/example/vecdraw/internal/store"
	"github.com/example/vecdraw/internal/theme"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drawing.json")
	return New(append([]Option{WithPath(path), WithSize(64, 48)}, opts...)...)
}

// selectDemo points the selection at the starter ellipse.
func selectDemo(t *testing.T, s *Session) *scene.Object {
	t.Helper()
	var demo *scene.Object
	s.View(func(sc *scene.Scene, _ *scene.Prompt) {
		sc.Selected = len(sc.Objects) - 1
		demo = sc.Objects[sc.Selected]
	})
	require.IsType(t, &scene.Circle{}, demo.Shape)
	return demo
}

func TestNewStartsFromStarter(t *testing.T) {
	s := newTestSession(t)
	s.View(func(sc *scene.Scene, p *scene.Prompt) {
		assert.Len(t, sc.Groups, scene.GroupSlots)
		assert.Len(t, sc.Objects, scene.GroupSlots+2)
		assert.Same(t, sc.CommandNode(), p.Node())
		assert.Equal(t, scene.ColorOf(theme.Default().Highlight), sc.Highlight)
	})
	assert.Equal(t, "", s.Text())
}

func TestApplyUsesSteps(t *testing.T) {
	steps := config.New().Steps
	steps.Move = 7
	steps.Pan = 11
	s := newTestSession(t, WithSteps(steps))
	demo := selectDemo(t, s)

	require.NoError(t, s.Apply(ActionMoveRight))
	require.NoError(t, s.Apply(ActionMoveUp))
	require.NoError(t, s.Apply(ActionPanDown))
	require.NoError(t, s.Apply(ActionRotateLeft))
	require.NoError(t, s.Apply(ActionZoomOut))

	s.View(func(sc *scene.Scene, _ *scene.Prompt) {
		assert.Equal(t, geom.Pt(307, 293), demo.Position)
		assert.Equal(t, geom.Pt(0, 11), sc.Camera)
		assert.InDelta(t, -3, demo.Rotation, 1e-6)
		assert.InDelta(t, 0.9, sc.Scale.X, 1e-6)
	})
	assert.Contains(t, s.Status(), "zoom-out")
}

func TestApplyGroupAction(t *testing.T) {
	s := newTestSession(t)
	demo := selectDemo(t, s)
	require.NoError(t, s.Apply(GroupAction(4)))
	s.View(func(sc *scene.Scene, _ *scene.Prompt) {
		g := sc.Groups[4].Shape.(*scene.Group)
		require.Len(t, g.Children, 1)
		assert.Same(t, demo, g.Children[0])
		assert.Equal(t, 0, sc.Selected)
	})
}

func TestApplyUnknown(t *testing.T) {
	s := newTestSession(t)
	assert.ErrorIs(t, s.Apply(ActionNone), ErrUnknownAction)
	assert.ErrorIs(t, s.Apply(GroupAction(scene.GroupSlots)), ErrUnknownAction)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "group-3", GroupAction(3).String())
	assert.Equal(t, "turn-left", ActionTurnLeft.String())
	assert.Equal(t, "Action(999)", Action(999).String())
	slot, ok := GroupAction(9).Slot()
	assert.True(t, ok)
	assert.Equal(t, 9, slot)
	_, ok = ActionNext.Slot()
	assert.False(t, ok)
}

func TestTypeCommit(t *testing.T) {
	s := newTestSession(t)
	s.Type("rect 0 0 10 ")
	s.Type("5")
	s.Backspace()
	s.Type("6")
	o := s.Commit()
	require.NotNil(t, o)
	assert.Equal(t, &scene.Rect{P0: geom.Pt(0, 0), P1: geom.Pt(10, 6)}, o.Shape)
	assert.Equal(t, "rect 0 0 10 6", s.Text())

	s.Type("x")
	assert.Nil(t, s.Commit())
	assert.Equal(t, scene.InvalidText, s.Text())
	assert.Contains(t, s.Status(), "invalid command")
}

func TestSaveLoad(t *testing.T) {
	s := newTestSession(t)
	s.Type("ellipse 4 2")
	require.NotNil(t, s.Commit())
	require.NoError(t, s.Save())

	s.Type(" more")
	require.NoError(t, s.Apply(ActionPanLeft))
	require.NoError(t, s.Apply(ActionLoad))

	assert.Equal(t, "ellipse 4 2", s.Text())
	s.View(func(sc *scene.Scene, p *scene.Prompt) {
		assert.Equal(t, geom.Pt(0, 0), sc.Camera)
		assert.Same(t, sc.CommandNode(), p.Node())
		assert.Len(t, sc.Objects, scene.GroupSlots+3)
	})
	assert.Contains(t, s.Status(), "loaded")
}

func TestLoadFailureKeepsScene(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"objects": [`), 0o644))
	s.Type("keep")
	err := s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrMalformed)
	assert.Equal(t, "keep", s.Text())

	missing := New(WithPath(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, missing.Load())
}

func TestLoadAddsCommandNode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.json")
	require.NoError(t, store.SaveFile(path, scene.New()))

	s, err := Open(path)
	require.NoError(t, err)
	s.View(func(sc *scene.Scene, p *scene.Prompt) {
		require.NotNil(t, sc.CommandNode())
		assert.Equal(t, CommandPosition, p.Node().Position)
		assert.Len(t, sc.Objects, scene.GroupSlots+1)
	})
}

func TestOpenMissingFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.json")
	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestOpenMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects: [\n"), 0o644))
	_, err := Open(path)
	assert.ErrorIs(t, err, store.ErrMalformed)
}

func TestCopy(t *testing.T) {
	var got image.Image
	orig := writeImage
	writeImage = func(img image.Image) error { got = img; return nil }
	t.Cleanup(func() { writeImage = orig })

	s := newTestSession(t)
	require.NoError(t, s.Copy())
	require.NotNil(t, got)
	assert.Equal(t, image.Rect(0, 0, 64, 48), got.Bounds())
}

func TestCopyScene(t *testing.T) {
	var got *scene.Scene
	orig := writeScene
	writeScene = func(sc *scene.Scene) error { got = sc; return nil }
	t.Cleanup(func() { writeScene = orig })

	s := newTestSession(t)
	require.NoError(t, s.CopyScene())
	s.View(func(sc *scene.Scene, _ *scene.Prompt) { assert.Same(t, sc, got) })
}

func TestDrawPaintsStatus(t *testing.T) {
	s := newTestSession(t)
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	s.Draw(dst)
	assert.Equal(t, theme.Default().StatusBackground, dst.RGBAAt(199, 80))
}

func TestOnChange(t *testing.T) {
	s := newTestSession(t)
	calls := 0
	s.SetOnChange(func() { calls++ })
	s.Type("a")
	s.Backspace()
	require.NoError(t, s.Apply(ActionNext))
	assert.Equal(t, 3, calls)

	s.SetOnChange(nil)
	s.Type("b")
	assert.Equal(t, 3, calls)
}

func TestConcurrentEdits(t *testing.T) {
	s := newTestSession(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.Apply(ActionPanRight)
				_ = s.Status()
			}
		}()
	}
	wg.Wait()
	s.View(func(sc *scene.Scene, _ *scene.Prompt) {
		assert.Equal(t, 8*50*5, sc.Camera.X)
	})
}

func TestExecuteAndReplace(t *testing.T) {
	s := newTestSession(t)
	o, text := s.Execute("ellipse 3 3")
	require.NotNil(t, o)
	assert.Equal(t, "ellipse 3 3", text)

	o, text = s.Execute("rect 0 0 2 2")
	require.NotNil(t, o, "a second command starts from an empty prompt")
	assert.Equal(t, "rect 0 0 2 2", text)

	o, text = s.Execute("x")
	assert.Nil(t, o)
	assert.Equal(t, scene.InvalidText, text)

	o, _ = s.Execute("ellipse 1 1")
	assert.NotNil(t, o, "an invalid prompt does not poison the next command")

	s.Replace(scene.New())
	s.View(func(sc *scene.Scene, p *scene.Prompt) {
		assert.Len(t, sc.Objects, scene.GroupSlots+1)
		assert.Same(t, sc.CommandNode(), p.Node())
	})
	assert.Equal(t, "", s.Text())
}

func TestEdit(t *testing.T) {
	s := newTestSession(t)
	demo := selectDemo(t, s)
	require.NoError(t, s.Edit(func(sc *scene.Scene) error { return sc.MoveSelected(-10, 4) }))
	s.View(func(*scene.Scene, *scene.Prompt) {
		assert.Equal(t, geom.Pt(290, 304), demo.Position)
	})
	err := s.Edit(func(sc *scene.Scene) error { return sc.AssignToGroup(12) })
	assert.ErrorIs(t, err, scene.ErrInvalidSlot)
}
