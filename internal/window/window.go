// Package window shows a session in a desktop window and edits it from the
// keyboard.
package window

import (
	"image"
	"log/slog"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/vecdraw/internal/session"
)

// DefaultTitle is the window title when none is configured.
const DefaultTitle = "vecdraw"

// Window renders a session and forwards key presses to it.
type Window struct {
	session *session.Session
	title   string
	width   int
	height  int

	updateCh  chan struct{}
	onClose   func()
	closeOnce sync.Once
}

// Option modifies a Window during creation.
type Option func(*Window)

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(w *Window) { w.title = title } }

// WithSize sets the initial window size in pixels.
func WithSize(width, height int) Option {
	return func(w *Window) {
		w.width = width
		w.height = height
	}
}

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(w *Window) { w.onClose = fn } }

// New creates a window for s. The size defaults to the session frame size.
func New(s *session.Session, opts ...Option) *Window {
	w := &Window{
		session:  s,
		title:    DefaultTitle,
		updateCh: make(chan struct{}, 1),
	}
	w.width, w.height = s.Size()
	for _, o := range opts {
		o(w)
	}
	return w
}

// requestPaint schedules a repaint. Requests made while one is pending are
// merged.
func (w *Window) requestPaint() {
	select {
	case w.updateCh <- struct{}{}:
	default:
	}
}

func (w *Window) notifyClose() {
	w.closeOnce.Do(func() {
		if w.onClose != nil {
			w.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver. It returns once the window is
// closed.
func (w *Window) Run() { driver.Main(w.Main) }

// Main runs the event loop on screen s.
func (w *Window) Main(s screen.Screen) {
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.width, Height: w.height, Title: w.title})
	if err != nil {
		slog.Error("new window", "err", err)
		return
	}
	defer win.Release()
	defer w.notifyClose()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-w.updateCh:
				win.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	w.session.SetOnChange(w.requestPaint)
	defer w.session.SetOnChange(nil)

	sz := image.Point{w.width, w.height}
	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			sz = image.Point{e.WidthPx, e.HeightPx}
			win.Send(paint.Event{})
		case paint.Event:
			w.drawFrame(s, win, sz)
		case key.Event:
			if handleKey(w.session, e) {
				return
			}
		case error:
			slog.Error("window event", "err", e)
		}
	}
}

func (w *Window) drawFrame(s screen.Screen, win screen.Window, sz image.Point) {
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	b, err := s.NewBuffer(sz)
	if err != nil {
		slog.Error("new buffer", "err", err)
		return
	}
	defer b.Release()
	w.session.Draw(b.RGBA())
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}
