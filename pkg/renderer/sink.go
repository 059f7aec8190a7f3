package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// ImageSink receives every rendered pixel exactly once, in row-major order
type ImageSink interface {
	WritePixel(x, y int, r, g, b uint8) error
}

// SinkFunc adapts a function to ImageSink
type SinkFunc func(x, y int, r, g, b uint8) error

// WritePixel calls f
func (f SinkFunc) WritePixel(x, y int, r, g, b uint8) error {
	return f(x, y, r, g, b)
}

// ProgressFunc is notified once per traced sample. In parallel renders it is
// called from several goroutines at once and must be safe for that.
type ProgressFunc func()

// ImageBuffer is an ImageSink backed by an in-memory RGBA image
type ImageBuffer struct {
	img *image.RGBA
}

// NewImageBuffer creates an opaque black image of the given size
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// WritePixel stores one pixel
func (b *ImageBuffer) WritePixel(x, y int, r, g, bl uint8) error {
	if !image.Pt(x, y).In(b.img.Bounds()) {
		return fmt.Errorf("pixel (%d, %d) outside image bounds %v", x, y, b.img.Bounds())
	}
	b.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
	return nil
}

// Image returns the underlying image
func (b *ImageBuffer) Image() *image.RGBA {
	return b.img
}
