package obj

import (
	"errors"
	"fmt"
)

var (
	ErrMissingPlayer = errors.New("map has no player")
	ErrMissingDoor   = errors.New("map has no exit")
)

// MapFormatError reports a map file that parsed but lacks a required marker.
type MapFormatError struct {
	Path string
	Err  error
}

func (e *MapFormatError) Error() string {
	return fmt.Sprintf("map %s: %v", e.Path, e.Err)
}

func (e *MapFormatError) Unwrap() error { return e.Err }

// ResourceLoadError reports an asset that failed to decode, open or upload.
// Asset names the asset class, e.g. "background" or "spike texture".
type ResourceLoadError struct {
	Asset string
	Path  string
	Err   error
}

func (e *ResourceLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load %s: %v", e.Asset, e.Err)
	}
	return fmt.Sprintf("load %s %s: %v", e.Asset, e.Path, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }
