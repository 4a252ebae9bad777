package tess

import (
	"errors"
	"fmt"

	"github.com/wudi/tesskit/frames"
)

// Config carries the parameters the native engine needs at creation time.
type Config struct {
	// Datapath is the directory the engine's language data resides under.
	// Empty means the engine resolves it (TESSDATA_PREFIX or its build-time
	// default).
	Datapath string
	// Language is an ISO 639-3 code, or several joined with "+".
	Language    string
	Mode        EngineMode
	PageSegMode PageSegMode
}

// Session owns exactly one native engine instance. It must be closed exactly
// once; every method errors after Close. A Session processes one logical
// document and is not reused across documents.
type Session struct {
	base   base
	closed bool
}

// NewSession creates and initializes a native engine instance. It fails with
// an InitError when the engine cannot locate language data under the data
// path or the mode is unsupported, and with ErrNotEnabled when the module was
// built without the native binding.
func NewSession(cfg Config) (*Session, error) {
	return newSession(defaultAPI(), cfg)
}

func newSession(a api, cfg Config) (*Session, error) {
	b, err := a.NewBase(cfg.Datapath, cfg.Language, cfg.Mode)
	if err != nil {
		if errors.Is(err, ErrNotEnabled) {
			return nil, err
		}
		return nil, &InitError{Datapath: cfg.Datapath, Language: cfg.Language, Mode: cfg.Mode, Err: err}
	}
	b.SetPageSegMode(cfg.PageSegMode)
	return &Session{base: b}, nil
}

// SetPageSegMode reconfigures page segmentation. Pure configuration; nothing
// happens natively until recognition runs.
func (s *Session) SetPageSegMode(mode PageSegMode) error {
	if s.closed {
		return ErrClosed
	}
	s.base.SetPageSegMode(mode)
	return nil
}

// SetVariable applies one engine configuration key. Unknown keys are accepted
// by the engine itself, so no validation happens here; the surface is as
// permissive as the engine's.
func (s *Session) SetVariable(key, value string) error {
	if s.closed {
		return ErrClosed
	}
	if !s.base.SetVariable(key, value) {
		return fmt.Errorf("tess: set variable %q", key)
	}
	return nil
}

// SetImage submits one frame for recognition, deriving the byte strides the
// engine expects. A non-empty frame region additionally restricts recognition
// to that rectangle; a nil or zero-area region means the whole image.
// Submitting a new image invalidates cursors obtained for the previous one.
func (s *Session) SetImage(f frames.Frame) error {
	if s.closed {
		return ErrClosed
	}
	perPixel, perLine, err := frames.Stride(f)
	if err != nil {
		return err
	}
	if len(f.Pixels) < perLine*f.Height {
		return &frames.InvalidFrameError{
			Width: f.Width, Height: f.Height, BitDepth: f.BitDepth,
			Reason: fmt.Sprintf("pixel buffer holds %d bytes, need %d", len(f.Pixels), perLine*f.Height),
		}
	}
	s.base.SetImage(f.Pixels, f.Width, f.Height, perPixel, perLine)
	if f.Region != nil && !f.Region.IsEmpty() {
		s.base.SetRectangle(f.Region.X, f.Region.Y, f.Region.Width, f.Region.Height)
	}
	return nil
}

// Recognize runs classification over the currently set image. Text, HOCRText,
// and Results run it implicitly when needed, so calling it explicitly is only
// required before Results.
func (s *Session) Recognize() error {
	if s.closed {
		return ErrClosed
	}
	if !s.base.Recognize() {
		return errors.New("tess: recognition failed")
	}
	return nil
}

// Text returns the recognized text for the current image, running recognition
// first if it has not happened yet.
func (s *Session) Text() (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	text, ok := s.base.UTF8Text()
	if !ok {
		return "", errors.New("tess: no recognition output; was an image set?")
	}
	return text, nil
}

// HOCRText returns the hOCR body for the current image. The page index is
// zero-based and must equal the number of pages processed so far minus one.
func (s *Session) HOCRText(pageIndex int) (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	text, ok := s.base.HOCRText(pageIndex)
	if !ok {
		return "", errors.New("tess: no recognition output; was an image set?")
	}
	return text, nil
}

// Datapath reports the data path the engine resolved at initialization.
func (s *Session) Datapath() string {
	if s.closed {
		return ""
	}
	return s.base.Datapath()
}

// Results returns a cursor over the current image's recognition results.
// Recognize must have run. The cursor is only valid until the next image is
// submitted or the session is closed, and must be closed by the caller.
func (s *Session) Results() (ResultCursor, error) {
	if s.closed {
		return nil, ErrClosed
	}
	it, ok := s.base.Iterator()
	if !ok {
		return nil, errors.New("tess: no result iterator; run Recognize first")
	}
	return &ResultIterator{it: it}, nil
}

// Close releases the native engine instance. The first call wins; later calls
// return ErrClosed without touching native state.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.base.Delete()
	return nil
}
