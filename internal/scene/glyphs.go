package scene

import (
	"unicode"

	"github.com/example/vecdraw/internal/geom"
)

const (
	// GlyphSize is the side of the square every glyph is drawn in.
	GlyphSize = 50
	// GlyphAdvance is the horizontal distance between glyph origins.
	GlyphAdvance = 100
	// DefaultWrapWidth is the width after which text continues on a new row.
	DefaultWrapWidth = 1100
)

var glyphs = func() map[rune][]geom.Line {
	const s = GlyphSize
	l := geom.L
	circle := []geom.Line{
		l(s/2, 0, 0, s/2),
		l(s/2, 0, s, s/2),
		l(s, s/2, s/2, s),
		l(0, s/2, s/2, s),
	}
	zed := []geom.Line{
		l(0, 0, s, 0),
		l(s, 0, 0, s),
		l(0, s, s, s),
	}
	ess := []geom.Line{
		l(s, 0, 0, s/3),
		l(0, s/3, s, 2*s/3),
		l(s, 2*s/3, 0, s),
	}
	return map[rune][]geom.Line{
		'A': {l(0, s, s/2, 0), l(s/2, 0, s, s), l(s/4, s/2, 3*s/4, s/2)},
		'B': {l(0, 0, 1, s), l(0, 0, s/2, s/4), l(s/2, s/4, 0, s/2), l(0, s/2, s/2, 3*s/4), l(s/2, 3*s/4, 0, s)},
		'C': {l(s/2, 0, 0, s/2), l(0, s/2, s/2, s)},
		'D': {l(0, 0, s/2, s/2), l(s/2, s/2, 0, s), l(0, 0, 1, s)},
		'E': {l(0, 0, 1, s), l(0, 0, s, 0), l(0, s/2, s, s/2), l(0, s, s, s)},
		'F': {l(0, 0, 1, s), l(0, 0, s, 0), l(0, s/2, s, s/2)},
		'G': {l(s/2, 0, 0, s/2), l(0, s/2, s/2, s), l(s/2, s, s, s/2), l(s-1, s/2, s/2, s/2)},
		'H': {l(0, 0, 1, s), l(s, 0, s-1, s), l(0, s/2, s, s/2)},
		'I': {l(0, 0, 1, s)},
		'J': {l(s, 0, s-1, s), l(s, s, 0, s), l(0, s, 1, s/2)},
		'K': {l(0, 0, 1, s), l(0, s/2, s, 0), l(0, s/2, s, s)},
		'L': {l(0, 0, 1, s), l(1, s, s, s)},
		'M': {l(0, 0, 1, s), l(0, 0, s/2, s/2), l(s/2, s/2, s, 0), l(s, 0, s-1, s)},
		'N': {l(0, 0, 1, s), l(0, 0, s, s), l(s, s, s-1, 0)},
		'O': circle,
		'P': {l(0, 0, 1, s), l(0, 0, s/2, s/4), l(s/2, s/4, 0, s/2)},
		'Q': append(append([]geom.Line(nil), circle...), l(s/2, s/2, s, s)),
		'R': {l(0, 0, 1, s), l(0, 0, s/2, s/4), l(s/2, s/4, 0, s/2), l(0, s/2, s/2, s)},
		'S': ess,
		'T': {l(s/2, 0, s/2+1, s), l(0, 0, s, 0)},
		'U': {l(0, 0, 1, s), l(1, s, s-1, s), l(s-1, s, s, 0)},
		'V': {l(0, 0, s/2, s), l(s/2, s, s, 0)},
		'W': {l(0, 0, s/3, s), l(s/3, s, s/2, 0), l(s/2, 0, 2*s/3, s), l(2*s/3, s, s, 0)},
		'X': {l(0, 0, s, s), l(s, 0, 0, s)},
		'Y': {l(0, 0, s/2, s/2), l(s, 0, s/2, s/2), l(s/2, s/2, s/2-1, s)},
		'Z': zed,
		'0': circle,
		'1': {l(0, 0, 1, s)},
		'2': zed,
		'3': {l(s, 0, s-1, s), l(0, 0, s, 0), l(0, s/2, s, s/2), l(0, s, s, s)},
		'4': {l(s, 0, 0, s/2), l(0, s/2, s, s/2), l(s, 0, s-1, s)},
		'5': ess,
		'6': {l(0, 0, 1, s), l(0, s, s/2, 3*s/4), l(s/2, 3*s/4, 0, s/2)},
		'7': {l(0, 0, s, 0), l(s, 0, s/2, s)},
		'8': {l(1, 0, 0, s), l(0, 0, s, 0), l(0, s/2, s, s/2), l(s-1, 0, s, s), l(0, s, s, s)},
		'9': {l(s, 0, s-1, s), l(s, 0, s/2, s/4), l(s/2, s/4, s, s/2)},
		' ': nil,
	}
}()

// Glyph returns the stroke shape for r. Lowercase letters fold to uppercase;
// anything without an entry, space included, is empty.
func Glyph(r rune) *Lines {
	src := glyphs[unicode.ToUpper(r)]
	return &Lines{Lines: append([]geom.Line(nil), src...)}
}
