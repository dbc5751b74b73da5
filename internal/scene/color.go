package scene

import "image/color"

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

var (
	// DefaultColor is given to objects created without an explicit colour.
	DefaultColor = Color{0, 255, 255}
	// WarningColor marks objects spawned from the command prompt.
	WarningColor = Color{255, 0, 0}
	// HighlightColor is used to paint the selected object.
	HighlightColor = Color{255, 255, 0}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// ColorOf converts any colour to an opaque Color, dropping alpha.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}
