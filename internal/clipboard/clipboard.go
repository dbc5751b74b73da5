// Package clipboard publishes rendered frames and scene documents to the
// system clipboard.
package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/example/vecdraw/internal/scene"
	"github.com/example/vecdraw/internal/store"
)

// backend moves raw bytes in and out of the platform clipboard.
type backend interface {
	writeText(data []byte) error
	writePNG(data []byte) error
	readText() ([]byte, error)
	readPNG() ([]byte, error)
}

var (
	initOnce sync.Once
	initErr  error
	active   backend
	// open is the platform backend constructor, swapped out in tests.
	open = openBackend
)

func ensureInit() error {
	initOnce.Do(func() {
		active, initErr = open()
	})
	return initErr
}

// WriteImage encodes the provided image as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return active.writePNG(buf.Bytes())
}

// ReadImage retrieves PNG image data from the clipboard and decodes it.
func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := active.readPNG()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("clipboard does not contain image data")
	}
	return png.Decode(bytes.NewReader(data))
}

// WriteText writes text data to the clipboard.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return active.writeText([]byte(text))
}

// ReadText returns UTF-8 text data from the clipboard.
func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	data, err := active.readText()
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("clipboard does not contain text data")
	}
	return string(data), nil
}

// WriteScene publishes s as a JSON scene document.
func WriteScene(s *scene.Scene) error {
	b, err := store.Marshal(s, store.JSON)
	if err != nil {
		return err
	}
	return WriteText(string(b))
}

// ReadScene decodes a scene document from the clipboard text.
func ReadScene() (*scene.Scene, error) {
	text, err := ReadText()
	if err != nil {
		return nil, err
	}
	return store.Unmarshal([]byte(text), store.JSON)
}
