package icon

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	// Decoders for icon sources other than PNG.
	_ "image/gif"
	_ "image/jpeg"
)

// DefaultSize is the thumbnail edge in pixels.
const DefaultSize = 64

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrInvalidSize is returned for non-positive thumbnail sizes.
	ErrInvalidSize = errors.New("thumbnail size must be positive")
)

// Result is the outcome of loading an icon.
type Result struct {
	// Encoded is the base64 PNG thumbnail; set only on success.
	Encoded string
	// Skipped is true when there is no icon file.
	Skipped bool
	// Err is the processing failure, if any.
	Err error
}

// Ok reports whether a thumbnail was produced.
func (r Result) Ok() bool {
	return !r.Skipped && r.Err == nil
}

// Load builds the thumbnail for the icon at path. A missing file is
// reported as skipped, silently.
func Load(path string, size int) Result {
	file, err := os.Open(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return Result{Skipped: true}
	}

	if err != nil {
		return Result{Err: fmt.Errorf("open icon: %w", err)}
	}

	defer func() {
		_ = file.Close()
	}()

	data, err := Thumbnail(file, size)
	if err != nil {
		return Result{Err: fmt.Errorf("icon %s: %w", path, err)}
	}

	return Result{Encoded: base64.StdEncoding.EncodeToString(data)}
}

// Thumbnail decodes an image and returns it as a size×size PNG.
// The source is scaled to cover the square and the overflow is cropped
// evenly from both sides.
func Thumbnail(r io.Reader, size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	crop := coverRect(src.Bounds())
	if crop.Empty() {
		return nil, ErrEmptyImage
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)

	var buf bytes.Buffer
	if err = png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return buf.Bytes(), nil
}

// coverRect returns the centred square of b with the side of its shorter edge.
func coverRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()

	side := min(w, h)
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2

	return image.Rect(x0, y0, x0+side, y0+side)
}
