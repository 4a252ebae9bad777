package engine

import (
	"errors"
	"fmt"

	"github.com/wudi/tesskit/frames"
	"github.com/wudi/tesskit/observability"
	"github.com/wudi/tesskit/tess"
)

// fakeSession counts lifecycle calls so tests can verify the orchestrator's
// acquire/release discipline.
type fakeSession struct {
	vars       []string
	images     []frames.Frame
	hocrPages  []int
	recognizes int
	closes     int

	varAfterImage bool
	failImageAt   int // 1-based page; 0 disables
	textErr       error

	renderOuts      []tess.Output
	renderErr       error
	renderedPath    string
	renderedFormats []tess.Format

	cursor     tess.ResultCursor
	resultsErr error
}

func (s *fakeSession) SetVariable(key, value string) error {
	if len(s.images) > 0 {
		s.varAfterImage = true
	}
	s.vars = append(s.vars, key+"="+value)
	return nil
}

func (s *fakeSession) SetImage(f frames.Frame) error {
	if s.failImageAt > 0 && len(s.images)+1 == s.failImageAt {
		s.images = append(s.images, f)
		return &frames.InvalidFrameError{Width: f.Width, Height: f.Height, BitDepth: f.BitDepth, Reason: "unreadable"}
	}
	s.images = append(s.images, f)
	return nil
}

func (s *fakeSession) Recognize() error {
	s.recognizes++
	return nil
}

func (s *fakeSession) Text() (string, error) {
	if s.textErr != nil {
		return "", s.textErr
	}
	return fmt.Sprintf("page%d;", len(s.images)), nil
}

func (s *fakeSession) HOCRText(pageIndex int) (string, error) {
	s.hocrPages = append(s.hocrPages, pageIndex)
	return fmt.Sprintf("<div class='ocr_page' id='page_%d'></div>\n", pageIndex+1), nil
}

func (s *fakeSession) Render(inputPath string, formats []tess.Format) ([]tess.Output, error) {
	s.renderedPath = inputPath
	s.renderedFormats = formats
	return s.renderOuts, s.renderErr
}

func (s *fakeSession) Results() (tess.ResultCursor, error) {
	if s.resultsErr != nil {
		return nil, s.resultsErr
	}
	return s.cursor, nil
}

func (s *fakeSession) Close() error {
	s.closes++
	if s.closes > 1 {
		return tess.ErrClosed
	}
	return nil
}

// testEngine builds an engine whose sessions are served from the factory and
// recorded for later lifecycle assertions.
func testEngine(factory func() *fakeSession, opts ...Option) (*Engine, *[]*fakeSession) {
	var sessions []*fakeSession
	e := New(opts...)
	e.newSession = func(tess.Config) (session, error) {
		s := factory()
		sessions = append(sessions, s)
		return s, nil
	}
	return e, &sessions
}

func failingEngine(err error, opts ...Option) *Engine {
	e := New(opts...)
	e.newSession = func(tess.Config) (session, error) { return nil, err }
	return e
}

func grayFrame(n int) frames.Frame {
	return frames.Frame{Width: n, Height: n, BitDepth: 8, Pixels: make([]byte, n*n)}
}

var errBoom = errors.New("boom")

// countingLogger tallies entries per level.
type countingLogger struct {
	warns  int
	errors int
	msgs   []string
}

func (l *countingLogger) Debug(msg string, _ ...observability.Field) { l.msgs = append(l.msgs, msg) }
func (l *countingLogger) Info(msg string, _ ...observability.Field)  { l.msgs = append(l.msgs, msg) }

func (l *countingLogger) Warn(msg string, _ ...observability.Field) {
	l.warns++
	l.msgs = append(l.msgs, msg)
}

func (l *countingLogger) Error(msg string, _ ...observability.Field) {
	l.errors++
	l.msgs = append(l.msgs, msg)
}

func (l *countingLogger) With(...observability.Field) observability.Logger { return l }

// fakeCursor serves fixed units at whatever level it is asked for.
type fakeUnit struct {
	text    string
	conf    float32
	box     tess.BoundingBox
	font    tess.FontAttributes
	choices []Choice
}

type fakeCursor struct {
	units  []fakeUnit
	pos    int
	closed bool
}

func (c *fakeCursor) Begin() { c.pos = 0 }

func (c *fakeCursor) Next(tess.Level) bool {
	if c.pos+1 >= len(c.units) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Text(tess.Level) (string, error) {
	if c.pos >= len(c.units) {
		return "", errors.New("no unit")
	}
	return c.units[c.pos].text, nil
}

func (c *fakeCursor) Confidence(tess.Level) float32 { return c.units[c.pos].conf }

func (c *fakeCursor) BoundingBox(tess.Level) (tess.BoundingBox, bool) {
	return c.units[c.pos].box, true
}

func (c *fakeCursor) Orientation() (tess.Orientation, error) {
	return tess.Orientation{}, nil
}

func (c *fakeCursor) FontAttributes() (tess.FontAttributes, bool) {
	return c.units[c.pos].font, true
}

func (c *fakeCursor) Choices() (tess.ChoiceCursor, error) {
	if c.units[c.pos].choices == nil {
		return nil, errors.New("no choices")
	}
	return &fakeChoiceCursor{choices: c.units[c.pos].choices}, nil
}

func (c *fakeCursor) Close() error {
	if c.closed {
		return tess.ErrClosed
	}
	c.closed = true
	return nil
}

type fakeChoiceCursor struct {
	choices []Choice
	pos     int
	closed  bool
}

func (c *fakeChoiceCursor) Next() bool {
	if c.pos+1 >= len(c.choices) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeChoiceCursor) Text() string        { return c.choices[c.pos].Text }
func (c *fakeChoiceCursor) Confidence() float32 { return c.choices[c.pos].Confidence }

func (c *fakeChoiceCursor) Close() error {
	if c.closed {
		return tess.ErrClosed
	}
	c.closed = true
	return nil
}
