package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/vecdraw/internal/scene"
)

// DefaultFile is where drawings are saved when nothing else is configured.
const DefaultFile = "saved_drawing.json"

// SaveFile encodes s in the format implied by path and writes it out. The
// document goes to a temporary file in the same directory which then replaces
// path, so an interrupted save leaves the previous drawing intact.
func SaveFile(path string, s *scene.Scene) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s, FormatFor(path)); err != nil {
		return err
	}
	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadFile reads a scene saved by SaveFile.
func LoadFile(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()
	s, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}
