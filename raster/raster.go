// Package raster renders generated chart documents into bitmap previews,
// by wrapping oksvg and rasterx.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrEmptyCanvas is returned when the document has no usable size.
var ErrEmptyCanvas = errors.New("raster: document has no width or height")

// Rasterize reads an SVG document and draws it on an image sized from its
// viewBox, or from its width and height when there is no viewBox.
// Elements oksvg does not draw, such as the style block, are ignored.
func Rasterize(svg io.Reader) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(svg, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("raster: read svg: %w", err)
	}
	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCanvas
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to path as a PNG, creating the parent directory if it
// does not exist yet.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}
