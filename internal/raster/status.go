package raster

import (
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/vecdraw/internal/theme"
)

// StatusHeight is the height of the status bar in pixels.
const StatusHeight = 20

var (
	faceOnce   sync.Once
	statusFace font.Face = basicfont.Face7x13
)

func face() font.Face {
	faceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		if ff, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 13, DPI: 72, Hinting: font.HintingFull}); err == nil {
			statusFace = ff
		}
	})
	return statusFace
}

// DrawStatus paints a status bar with text along the bottom edge of dst.
func DrawStatus(dst draw.Image, text string, th *theme.Theme) image.Rectangle {
	if th == nil {
		th = theme.Default()
	}
	b := dst.Bounds()
	rect := image.Rect(b.Min.X, b.Max.Y-StatusHeight, b.Max.X, b.Max.Y).Intersect(b)
	draw.Draw(dst, rect, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(th.Foreground),
		Face: face(),
		Dot:  fixed.P(rect.Min.X+4, rect.Max.Y-5),
	}
	d.DrawString(text)
	return rect
}
