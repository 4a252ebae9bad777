package frames

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// FromImage converts a decoded image into a Frame. Grayscale sources become
// 8-bit frames; everything else is flattened to packed 24-bit RGB.
func FromImage(img image.Image) Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if gray, ok := img.(*image.Gray); ok {
		pix := make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(pix[y*w:(y+1)*w], gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}
		return Frame{Width: w, Height: h, BitDepth: 8, Pixels: pix}
	}

	pix := make([]byte, w*h*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bl >> 8)
			i += 3
		}
	}
	return Frame{Width: w, Height: h, BitDepth: 24, Pixels: pix}
}

// Decode reads one image from r (PNG, JPEG, TIFF, or BMP) and converts it into
// a single frame. Multi-page TIFF traversal is not performed here; the
// file-path rendering route lets the native engine walk pages itself.
func Decode(r io.Reader) ([]Frame, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return []Frame{FromImage(img)}, nil
}

// DecodeFile reads the image at path and converts it into frames.
func DecodeFile(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
