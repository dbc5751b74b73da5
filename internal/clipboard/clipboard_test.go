package clipboard

import (
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vecdraw/internal/scene"
)

type memBackend struct {
	text, png []byte
}

func (m *memBackend) writeText(b []byte) error  { m.text = b; return nil }
func (m *memBackend) writePNG(b []byte) error   { m.png = b; return nil }
func (m *memBackend) readText() ([]byte, error) { return m.text, nil }
func (m *memBackend) readPNG() ([]byte, error)  { return m.png, nil }

func useMemory(t *testing.T) *memBackend {
	t.Helper()
	mem := &memBackend{}
	prev := open
	open = func() (backend, error) { return mem, nil }
	initOnce = sync.Once{}
	initErr = nil
	t.Cleanup(func() {
		open = prev
		initOnce = sync.Once{}
		initErr = nil
		active = nil
	})
	return mem
}

func TestTextRoundTrip(t *testing.T) {
	useMemory(t)
	_, err := ReadText()
	assert.Error(t, err)

	require.NoError(t, WriteText("hello world"))
	got, err := ReadText()
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestImageRoundTrip(t *testing.T) {
	mem := useMemory(t)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{255, 255, 0, 255})
	require.NoError(t, WriteImage(img))
	assert.NotEmpty(t, mem.png)

	got, err := ReadImage()
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0}, []uint32{r, g, b})
}

func TestSceneRoundTrip(t *testing.T) {
	useMemory(t)
	s, _ := scene.NewStarter()
	require.NoError(t, WriteScene(s))
	got, err := ReadScene()
	require.NoError(t, err)
	assert.Len(t, got.Objects, len(s.Objects))
	assert.Same(t, got.Groups[0], got.Objects[0])
}
