// Package frames models decoded raster pages on their way into a recognition
// session: raw pixel buffers with explicit dimensions and bit depth, optional
// region restrictions, and the stride arithmetic the native engine expects.
package frames

import "fmt"

// Region is a rectangular area in pixel coordinates, origin at the upper-left
// corner of the image. A nil or empty region means "whole image".
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsEmpty reports whether the region has non-positive dimensions.
func (r Region) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Frame is one page of pixel data. The buffer is owned by the caller and is
// never mutated by the library.
type Frame struct {
	// Width and Height are the pixel dimensions of the page.
	Width  int
	Height int
	// BitDepth is the bits per pixel: 1 for binary bitmaps, 8 for grayscale,
	// 24 for RGB.
	BitDepth int
	// Pixels holds rows packed to ceil(Width*BitDepth/8) bytes each.
	Pixels []byte
	// Region optionally restricts recognition to a subsection of the page.
	Region *Region
}

// InvalidFrameError reports a frame the engine cannot accept.
type InvalidFrameError struct {
	Width    int
	Height   int
	BitDepth int
	Reason   string
}

func (e *InvalidFrameError) Error() string {
	return fmt.Sprintf("invalid frame %dx%d@%dbpp: %s", e.Width, e.Height, e.BitDepth, e.Reason)
}

// Stride computes the bytes-per-pixel and bytes-per-line parameters for
// submitting f to the engine. Bytes per line is rounded up to the nearest
// whole byte, which matters for 1-bit frames whose width is not a multiple
// of eight. It performs no native calls.
func Stride(f Frame) (bytesPerPixel, bytesPerLine int, err error) {
	if f.Width <= 0 || f.Height <= 0 {
		return 0, 0, &InvalidFrameError{f.Width, f.Height, f.BitDepth, "non-positive dimensions"}
	}
	switch f.BitDepth {
	case 1, 8, 24:
	default:
		return 0, 0, &InvalidFrameError{f.Width, f.Height, f.BitDepth, "unsupported bit depth"}
	}
	return f.BitDepth / 8, (f.Width*f.BitDepth + 7) / 8, nil
}
