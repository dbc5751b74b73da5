// Package session holds the drawing being edited together with its prompt and
// serializes access from the window, the HTTP server and the shell.
package session

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/config"
	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/notify"
	"github.com/example/vecdraw/internal/raster"
	"github.com/example/vecdraw/internal/scene"
	"github.com/example/vecdraw/internal/store"
	"github.com/example/vecdraw/internal/theme"
)

// CommandPosition is where a command node is placed when a loaded drawing
// has none.
var CommandPosition = geom.Pt(50, 50)

// Clipboard writers, replaced in tests.
var (
	writeImage = clipboard.WriteImage
	writeScene = clipboard.WriteScene
)

// Session owns a scene, the prompt bound to its command node and the file it
// is saved to. Every method is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	scene    *scene.Scene
	prompt   *scene.Prompt
	path     string
	steps    config.Steps
	theme    *theme.Theme
	notifier *notify.Notifier
	wrap     int
	width    int
	height   int
	status   string

	changeMu sync.Mutex
	onChange func()
}

// Option modifies a Session during creation.
type Option func(*Session)

// WithScene starts the session on sc instead of the starter drawing.
func WithScene(sc *scene.Scene) Option { return func(s *Session) { s.scene = sc } }

// WithPath sets the file used by Save and Load.
func WithPath(path string) Option { return func(s *Session) { s.path = path } }

// WithSteps sets the increments used by Apply.
func WithSteps(st config.Steps) Option { return func(s *Session) { s.steps = st } }

// WithTheme sets the colours used for rendering and the selection highlight.
func WithTheme(th *theme.Theme) Option { return func(s *Session) { s.theme = th } }

// WithNotifier sets the desktop notifier for save, load and copy.
func WithNotifier(n *notify.Notifier) Option { return func(s *Session) { s.notifier = n } }

// WithWrapWidth sets the text wrap budget for Letters.
func WithWrapWidth(w int) Option { return func(s *Session) { s.wrap = w } }

// WithSize sets the frame size used by Render.
func WithSize(w, h int) Option {
	return func(s *Session) {
		s.width = w
		s.height = h
	}
}

// WithConfig applies the save file, steps, wrap width and frame size of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) {
		if cfg.SaveFile != "" {
			s.path = cfg.SaveFile
		}
		s.steps = cfg.Steps
		s.wrap = cfg.WrapWidth
		s.width = cfg.Width
		s.height = cfg.Height
	}
}

// New creates a session. Without WithScene it starts from scene.NewStarter.
func New(opts ...Option) *Session {
	defaults := config.New()
	s := &Session{
		path:   store.DefaultFile,
		steps:  defaults.Steps,
		theme:  theme.Default(),
		wrap:   defaults.WrapWidth,
		width:  defaults.Width,
		height: defaults.Height,
	}
	for _, o := range opts {
		o(s)
	}
	if s.theme == nil {
		s.theme = theme.Default()
	}
	if s.scene == nil {
		s.scene, _ = scene.NewStarter()
	}
	s.install(s.scene)
	return s
}

// Open creates a session on path, loading it when the file exists.
func Open(path string, opts ...Option) (*Session, error) {
	s := New(append(opts[:len(opts):len(opts)], WithPath(path))...)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	sc, err := store.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s.install(sc)
	return s, nil
}

// install makes sc current and binds the prompt to its command node, adding
// one when the drawing has none. The caller holds the lock.
func (s *Session) install(sc *scene.Scene) {
	sc.WrapWidth = s.wrap
	sc.Highlight = scene.ColorOf(s.theme.Highlight)
	node := sc.CommandNode()
	if node == nil {
		node = scene.NewObject(&scene.Letters{}, CommandPosition)
		sc.Add(node)
	}
	p, err := scene.NewPrompt(node)
	if err != nil {
		panic(fmt.Sprintf("session: %v", err))
	}
	s.scene = sc
	s.prompt = p
}

// SetOnChange registers fn to run after every edit. It is called without the
// session lock held.
func (s *Session) SetOnChange(fn func()) {
	s.changeMu.Lock()
	s.onChange = fn
	s.changeMu.Unlock()
}

func (s *Session) changed() {
	s.changeMu.Lock()
	fn := s.onChange
	s.changeMu.Unlock()
	if fn != nil {
		fn()
	}
}

// Path returns the file used by Save and Load.
func (s *Session) Path() string { return s.path }

// Theme returns the rendering theme.
func (s *Session) Theme() *theme.Theme { return s.theme }

// Size returns the frame size used by Render.
func (s *Session) Size() (int, int) { return s.width, s.height }

// View runs fn with the lock held. fn must not keep sc or p.
func (s *Session) View(fn func(sc *scene.Scene, p *scene.Prompt)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.scene, s.prompt)
}

// Edit runs fn with the lock held and then signals a change.
func (s *Session) Edit(fn func(sc *scene.Scene) error) error {
	s.mu.Lock()
	err := fn(s.scene)
	s.mu.Unlock()
	s.changed()
	return err
}

// Apply performs a bound action.
func (s *Session) Apply(a Action) error {
	switch a {
	case ActionSave:
		return s.Save()
	case ActionLoad:
		return s.Load()
	case ActionCopy:
		return s.Copy()
	}
	s.mu.Lock()
	err := s.apply(a)
	if err != nil {
		s.status = err.Error()
	} else {
		s.status = a.String()
	}
	s.mu.Unlock()
	s.changed()
	return err
}

// Text returns the prompt text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt.Text()
}

// Type appends text to the prompt.
func (s *Session) Type(text string) {
	s.mu.Lock()
	s.prompt.Type(text)
	s.mu.Unlock()
	s.changed()
}

// Backspace removes the last character of the prompt.
func (s *Session) Backspace() {
	s.mu.Lock()
	s.prompt.Backspace()
	s.mu.Unlock()
	s.changed()
}

// Clear empties the prompt.
func (s *Session) Clear() {
	s.mu.Lock()
	s.prompt.Clear()
	s.mu.Unlock()
	s.changed()
}

// Commit runs the prompt text as a command. It returns the spawned object, or
// nil when the text was not understood.
func (s *Session) Commit() *scene.Object {
	s.mu.Lock()
	o := s.prompt.Commit(s.scene)
	if o != nil {
		s.status = "spawned " + o.Shape.Kind().String()
	} else {
		s.status = "invalid command"
	}
	s.mu.Unlock()
	s.changed()
	return o
}

// Execute replaces the prompt text with text and commits it under one lock.
// It returns the spawned object, if any, and the resulting prompt text.
func (s *Session) Execute(text string) (*scene.Object, string) {
	s.mu.Lock()
	s.prompt.Clear()
	s.prompt.Type(text)
	o := s.prompt.Commit(s.scene)
	out := s.prompt.Text()
	s.mu.Unlock()
	s.changed()
	return o, out
}

// Replace makes sc the current scene and rebinds the prompt.
func (s *Session) Replace(sc *scene.Scene) {
	s.mu.Lock()
	s.install(sc)
	s.status = "replaced"
	s.mu.Unlock()
	s.changed()
}

// Save writes the scene to the session path.
func (s *Session) Save() error {
	s.mu.Lock()
	err := store.SaveFile(s.path, s.scene)
	var preview image.Image
	if err == nil {
		preview = s.render()
		s.status = "saved " + s.path
	} else {
		s.status = "save failed"
	}
	s.mu.Unlock()
	s.changed()
	if err != nil {
		return err
	}
	slog.Info("saved drawing", "path", s.path)
	s.notifier.Save(s.path, preview)
	return nil
}

// Load replaces the scene with the one saved at the session path and rebinds
// the prompt. On error the current scene is kept.
func (s *Session) Load() error {
	sc, err := store.LoadFile(s.path)
	s.mu.Lock()
	var preview image.Image
	if err == nil {
		s.install(sc)
		preview = s.render()
		s.status = "loaded " + s.path
	} else {
		s.status = "load failed"
	}
	s.mu.Unlock()
	s.changed()
	if err != nil {
		return err
	}
	slog.Info("loaded drawing", "path", s.path)
	s.notifier.Load(s.path, preview)
	return nil
}

// Copy publishes the rendered frame to the clipboard.
func (s *Session) Copy() error {
	if err := writeImage(s.Render()); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	s.notifier.Copy("drawing")
	return nil
}

// CopyScene publishes the scene document to the clipboard.
func (s *Session) CopyScene() error {
	s.mu.Lock()
	err := writeScene(s.scene)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("copy scene: %w", err)
	}
	s.notifier.Copy("scene document")
	return nil
}

// Snapshot encodes the scene in format f.
func (s *Session) Snapshot(f store.Format) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.Marshal(s.scene, f)
}

// Render rasterizes the scene at the session size.
func (s *Session) Render() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render()
}

func (s *Session) render() *image.RGBA {
	return raster.Render(s.scene, s.width, s.height, s.theme)
}

// Draw renders the scene onto dst, with the status bar along its bottom edge.
func (s *Session) Draw(dst *image.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raster.Wrap(dst, s.theme).Render(s.scene)
	raster.DrawStatus(dst, s.statusLine(), s.theme)
}

// Status returns the one-line summary shown in the status bar.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLine()
}

func (s *Session) statusLine() string {
	sc := s.scene
	line := "empty"
	if o, err := sc.Selection(); err == nil {
		line = fmt.Sprintf("%d/%d %s", sc.Selected+1, len(sc.Objects), o.Shape.Kind())
	}
	line += fmt.Sprintf("  zoom %.1f  rot %g°", sc.Scale.X, sc.Rotation)
	if s.status != "" {
		line += "  " + s.status
	}
	return line
}
