// Package preprocess offers image cleanup steps commonly applied before
// recognition: grayscale conversion, contrast stretching, sharpening,
// upscaling of low-resolution scans, and threshold binarization. Steps
// compose left to right and plug into the engine through its preprocess
// option.
package preprocess

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Step transforms an image on its way into recognition.
type Step func(image.Image) image.Image

// Apply runs the steps over img in order.
func Apply(img image.Image, steps ...Step) image.Image {
	for _, step := range steps {
		img = step(img)
	}
	return img
}

// Grayscale drops color information.
func Grayscale() Step {
	return func(img image.Image) image.Image {
		return imaging.Grayscale(img)
	}
}

// Contrast adjusts contrast by pct in the range -100..100.
func Contrast(pct float64) Step {
	return func(img image.Image) image.Image {
		return imaging.AdjustContrast(img, pct)
	}
}

// Sharpen applies a sharpening filter with the given sigma.
func Sharpen(sigma float64) Step {
	return func(img image.Image) image.Image {
		return imaging.Sharpen(img, sigma)
	}
}

// Scale resizes by factor, preserving aspect ratio. Upscaling small scans
// toward 300 DPI noticeably improves recognition of small glyphs.
func Scale(factor float64) Step {
	return func(img image.Image) image.Image {
		if factor <= 0 || factor == 1 {
			return img
		}
		width := int(float64(img.Bounds().Dx()) * factor)
		return imaging.Resize(img, width, 0, imaging.Lanczos)
	}
}

// Binarize maps every pixel to black or white around the given threshold.
func Binarize(threshold uint8) Step {
	return func(img image.Image) image.Image {
		return segment.Threshold(img, threshold)
	}
}
