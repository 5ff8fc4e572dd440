package fileio

import (
	"bytes"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFileAtomic writes through a sibling temp file and renames it
// into place, so a crashed run never leaves a truncated texture for
// the game to load.
func WriteFileAtomic(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, fs.FileMode(0o644)); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		// cleanup best-effort
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data)
}

func WriteWebP(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return err
	}
	return WriteFileAtomic(path, buf.Bytes())
}
