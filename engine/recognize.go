package engine

import (
	"fmt"
	"image"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/wudi/tesskit/frames"
	"github.com/wudi/tesskit/hocr"
	"github.com/wudi/tesskit/observability"
	"github.com/wudi/tesskit/preprocess"
	"github.com/wudi/tesskit/tess"
)

// RecognizeFrames runs recognition over a multi-page document and returns the
// concatenated text. A region restricts recognition on frames that carry no
// region of their own; nil or zero-area means the whole image. A page that
// cannot be submitted or recognized is logged and skipped without aborting
// the batch.
func (e *Engine) RecognizeFrames(fs []frames.Frame, region *frames.Region) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recognize(fs, region)
}

// RecognizeImage runs recognition over one decoded image.
func (e *Engine) RecognizeImage(img image.Image, region *frames.Region) (string, error) {
	return e.RecognizeImages([]image.Image{img}, region)
}

// RecognizeImages runs recognition over a sequence of decoded images, one
// page each, applying the configured preprocess steps first.
func (e *Engine) RecognizeImages(imgs []image.Image, region *frames.Region) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fs := make([]frames.Frame, 0, len(imgs))
	for _, img := range imgs {
		fs = append(fs, frames.FromImage(preprocess.Apply(img, e.steps...)))
	}
	return e.recognize(fs, region)
}

// RecognizeRaw runs recognition over one page of raw pixel data. Bit depth is
// 1 for binary bitmaps, 8 for grayscale, 24 for RGB.
func (e *Engine) RecognizeRaw(width, height int, pixels []byte, region *frames.Region, bitDepth int) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := frames.Frame{Width: width, Height: height, BitDepth: bitDepth, Pixels: pixels}
	return e.recognize([]frames.Frame{f}, region)
}

// RecognizeFile decodes the image at path and runs recognition over it.
func (e *Engine) RecognizeFile(path string, region *frames.Region) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return e.recognize([]frames.Frame{frames.FromImage(preprocess.Apply(img, e.steps...))}, region)
}

// recognize is the per-call core: one session for the whole batch, variables
// applied up front, pages fed one by one, teardown guaranteed. The page
// counter advances for every input frame, including skipped ones, so hOCR
// page indexes stay aligned with the input.
func (e *Engine) recognize(fs []frames.Frame, region *frames.Region) (string, error) {
	s, err := e.openSession()
	if err != nil {
		return "", err
	}
	defer e.closeSession(s)

	var b strings.Builder
	page := 0
	for _, f := range fs {
		page++
		if f.Region == nil {
			f.Region = region
		}
		if err := s.SetImage(f); err != nil {
			e.log.Warn("skipping page", observability.Int("page", page), observability.Err(err))
			continue
		}
		text, err := e.pageText(s, page)
		if err != nil {
			e.log.Warn("skipping page", observability.Int("page", page), observability.Err(err))
			continue
		}
		b.WriteString(text)
	}

	out := b.String()
	if e.output == tess.FormatHOCR {
		out = hocr.WrapPages(out)
	}
	return norm.NFC.String(out), nil
}

func (e *Engine) pageText(s session, page int) (string, error) {
	if e.output == tess.FormatHOCR {
		return s.HOCRText(page - 1)
	}
	return s.Text()
}
