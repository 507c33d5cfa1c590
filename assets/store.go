package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
)

var (
	errNilImage   = errors.New("nil image")
	errEmptyImage = errors.New("empty image")
)

// Store reads images from disk.
type Store struct{}

// DecodeImage decodes the image file at path.
func (Store) DecodeImage(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
