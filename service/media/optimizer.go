package media

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Gallery derivatives: resized webp renditions of catalog images, cached on
// disk so each source/size pair is encoded once.

const cacheDir = "var/cache/media"

// Size presets (max dimension, webp quality).
var presets = map[string]struct {
	MaxSize int
	Quality float32
}{
	"thumb":  {300, 60},
	"medium": {800, 75},
	"large":  {1600, 85},
}

// ValidPreset reports whether size names a known preset.
func ValidPreset(size string) bool {
	_, ok := presets[size]
	return ok
}

func cachePath(file, size string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return filepath.Join(cacheDir, fmt.Sprintf("%s_%s.webp", base, size))
}

// Derivative returns the webp rendition of a catalog image at the given
// preset, encoding and caching it on first request.
func Derivative(mediaDir, file, size string) ([]byte, error) {
	preset, ok := presets[size]
	if !ok {
		return nil, fmt.Errorf("unknown media size %q", size)
	}

	cached := cachePath(file, size)
	if data, err := os.ReadFile(cached); err == nil {
		return data, nil
	}

	src, err := imaging.Open(filepath.Join(mediaDir, filepath.Base(file)))
	if err != nil {
		return nil, fmt.Errorf("open source image: %w", err)
	}
	resized := imaging.Fit(src, preset.MaxSize, preset.MaxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: preset.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cached), 0755); err == nil {
		// Cache write failures are not fatal; the next request re-encodes.
		_ = os.WriteFile(cached, buf.Bytes(), 0644)
	}
	return buf.Bytes(), nil
}
