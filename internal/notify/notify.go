// Package notify raises desktop notifications when a drawing is saved,
// loaded or copied.
package notify

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/example/vecdraw/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when a drawing is written to disk.
	EventSave Event = "save"
	// EventLoad emits a notification when a drawing is read back.
	EventLoad Event = "load"
	// EventCopy emits a notification when data is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "vecdraw",
		Events: map[Event]EventPreference{
			EventSave: {Template: "Saved %s"},
			EventLoad: {Template: "Loaded %s"},
			EventCopy: {Template: "Copied %s to clipboard"},
		},
	}
}

type envPreferences struct {
	Title    string `envconfig:"TITLE"`
	SaveText string `envconfig:"SAVE_TEXT"`
	LoadText string `envconfig:"LOAD_TEXT"`
	CopyText string `envconfig:"COPY_TEXT"`
}

// LoadPreferences overlays VECDRAW_NOTIFY_TITLE and VECDRAW_NOTIFY_*_TEXT
// onto the defaults.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()
	var env envPreferences
	if err := envconfig.Process("VECDRAW_NOTIFY", &env); err != nil {
		return prefs, fmt.Errorf("notification preferences: %w", err)
	}
	if v := strings.TrimSpace(env.Title); v != "" {
		prefs.Title = v
	}
	for event, text := range map[Event]string{
		EventSave: env.SaveText,
		EventLoad: env.LoadText,
		EventCopy: env.CopyText,
	} {
		if v := strings.TrimSpace(text); v != "" {
			prefs.Events[event] = EventPreference{Template: v}
		}
	}
	return prefs, nil
}

// sendTimeout bounds a single delivery.
const sendTimeout = 3 * time.Second

// send delivers a notification; tests replace it.
var send = platform.Notify

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save sends a save notification naming the written file, with an optional
// preview of the drawing.
func (n *Notifier) Save(path string, preview image.Image) {
	n.fileEvent(EventSave, path, preview)
}

// Load sends a load notification naming the file that was read.
func (n *Notifier) Load(path string, preview image.Image) {
	n.fileEvent(EventLoad, path, preview)
}

func (n *Notifier) fileEvent(event Event, path string, preview image.Image) {
	if !n.enabledFor(event) {
		return
	}
	detail := strings.TrimSpace(path)
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
	}
	opts := platform.Options{Category: "transfer.complete"}
	if preview != nil {
		if icon, cleanup, err := createPreview(preview); err != nil {
			slog.Warn("notification preview", "err", err)
		} else {
			defer cleanup()
			opts.IconPath = icon
		}
	}
	n.dispatch(event, detail, opts)
}

// Copy sends a clipboard notification.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "drawing"
	}
	n.dispatch(EventCopy, detail, platform.Options{Category: "transfer"})
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := send(ctx, n.prefs.Title, body, opts); err != nil {
		slog.Warn("notification failed", "event", string(event), "err", err)
	}
}

func (n *Notifier) template(event Event) string {
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "vecdraw-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Warn("remove preview", "err", err)
		}
	}
	return path, cleanup, nil
}
