package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vecdraw/internal/geom"
)

func TestGlyphCaseFolding(t *testing.T) {
	assert.Equal(t, Glyph('A'), Glyph('a'))
	assert.Equal(t, Glyph('Q'), Glyph('q'))
	require.Len(t, Glyph('A').Lines, 3)
	assert.Equal(t, geom.L(0, GlyphSize, GlyphSize/2, 0), Glyph('A').Lines[0])
}

func TestGlyphUnmappedIsEmpty(t *testing.T) {
	for _, r := range []rune{' ', '?', '#', 'é'} {
		assert.Empty(t, Glyph(r).Lines, "rune %q", r)
	}
}

func TestGlyphTableCoverage(t *testing.T) {
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" {
		assert.NotEmpty(t, Glyph(r).Lines, "rune %q", r)
	}
}

func TestGlyphReturnsCopy(t *testing.T) {
	g := Glyph('I')
	g.Lines[0] = geom.L(9, 9, 9, 9)
	assert.Equal(t, geom.L(0, 0, 1, GlyphSize), Glyph('I').Lines[0])
}

func TestLettersLayout(t *testing.T) {
	pts := (&Letters{Text: "II"}).Lower(Identity)
	assert.Contains(t, pts, geom.Pt(0, 0))
	assert.Contains(t, pts, geom.Pt(1, GlyphSize))
	assert.Contains(t, pts, geom.Pt(GlyphAdvance, 0))
	assert.Contains(t, pts, geom.Pt(GlyphAdvance+1, GlyphSize))
}

func TestLettersWrap(t *testing.T) {
	text := strings.Repeat("I", 12)
	pts := (&Letters{Text: text}).lower(Identity, DefaultWrapWidth)
	// the twelfth glyph starts the second row
	assert.Contains(t, pts, geom.Pt(0, GlyphAdvance))
	assert.Contains(t, pts, geom.Pt(1, GlyphAdvance+GlyphSize))
	assert.Contains(t, pts, geom.Pt(1000, 0))

	narrow := (&Letters{Text: "III"}).lower(Identity, 200)
	assert.Contains(t, narrow, geom.Pt(0, GlyphAdvance))
}

func TestLettersSkipsUnknownButAdvances(t *testing.T) {
	pts := (&Letters{Text: "?I"}).Lower(Identity)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, GlyphAdvance)
	}
	assert.NotEmpty(t, pts)
}

func TestGroupLowersChildrenWithTransforms(t *testing.T) {
	child := NewObject(&Lines{Lines: []geom.Line{geom.L(0, 0, 0, 0)}}, geom.Pt(5, 7))
	child.Scale = Scale{2, 2}
	g := &Group{Children: ObjectList{child}}
	assert.ElementsMatch(t, geom.Points{geom.Pt(5, 7), geom.Pt(5, 7)}, g.Lower(Identity))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Circle", (&Circle{}).Kind().String())
	assert.Equal(t, "Group", (&Group{}).Kind().String())
	assert.Equal(t, "Unknown", Kind(42).String())
}
