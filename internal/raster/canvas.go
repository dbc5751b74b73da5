// Package raster turns scene draw output into pixels.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/scene"
	"github.com/example/vecdraw/internal/theme"
)

// Canvas is a scene.Painter backed by an RGBA image. Scene coordinates map
// one to one onto pixels; points outside the image are dropped.
type Canvas struct {
	img *image.RGBA
	bg  color.RGBA
}

var _ scene.Painter = (*Canvas)(nil)

// NewCanvas allocates a w×h canvas cleared to the theme background.
func NewCanvas(w, h int, th *theme.Theme) *Canvas {
	if th == nil {
		th = theme.Default()
	}
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), bg: th.Background}
	c.Clear()
	return c
}

// Wrap paints onto an existing image, such as a window buffer. The image is
// not cleared until Clear or Render is called.
func Wrap(img *image.RGBA, th *theme.Theme) *Canvas {
	if th == nil {
		th = theme.Default()
	}
	return &Canvas{img: img, bg: th.Background}
}

// Clear fills the canvas with its background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.bg}, image.Point{}, draw.Src)
}

// Paint plots every point of pts that lies inside the canvas.
func (c *Canvas) Paint(col color.Color, pts geom.Points) {
	b := c.img.Bounds()
	pts.ScissorIter(b.Min, b.Max)
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	for _, p := range pts {
		c.img.SetRGBA(p.X, p.Y, rgba)
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Render clears the canvas and draws s onto it.
func (c *Canvas) Render(s *scene.Scene) {
	c.Clear()
	s.Draw(c)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Render draws s onto a fresh w×h image using th.
func Render(s *scene.Scene, w, h int, th *theme.Theme) *image.RGBA {
	c := NewCanvas(w, h, th)
	s.Draw(c)
	return c.img
}
