package theme

import (
	"image/color"
	"sort"
	"strings"
)

// Theme defines the colours used to present a scene.
type Theme struct {
	Name string

	Background color.RGBA // Canvas clear colour
	Foreground color.RGBA // Status line text
	Highlight  color.RGBA // Selected object

	StatusBackground color.RGBA
}

// Default returns the built-in dark theme: a black canvas with a yellow
// selection highlight.
func Default() *Theme {
	return &Theme{
		Name:             "default",
		Background:       color.RGBA{0, 0, 0, 255},
		Foreground:       color.RGBA{255, 255, 255, 255},
		Highlight:        color.RGBA{255, 255, 0, 255},
		StatusBackground: color.RGBA{32, 32, 32, 255},
	}
}

// Light returns the built-in light theme.
func Light() *Theme {
	return &Theme{
		Name:             "light",
		Background:       color.RGBA{245, 245, 245, 255},
		Foreground:       color.RGBA{0, 0, 0, 255},
		Highlight:        color.RGBA{255, 140, 0, 255},
		StatusBackground: color.RGBA{220, 220, 220, 255},
	}
}

var builtins = map[string]func() *Theme{
	"default": Default,
	"dark":    Default,
	"light":   Light,
}

// Builtin returns a fresh copy of the named built-in theme.
func Builtin(name string) (*Theme, bool) {
	f, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return f(), true
}

// BuiltinNames lists the built-in theme names.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
