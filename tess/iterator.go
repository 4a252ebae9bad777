package tess

import "fmt"

// ResultCursor walks recognition results for the current image in a fixed
// hierarchical order: block, paragraph, line, word, symbol. All accessors
// return owned copies, so values stay valid after the cursor advances; the
// cursor itself is invalidated by submitting a new image or closing the
// session.
type ResultCursor interface {
	// Begin resets the cursor to the first unit at the finest level.
	Begin()
	// Next advances to the next unit at the given level, skipping any finer
	// detail in between. It returns false when no further units exist.
	Next(level Level) bool
	// Text returns the text span of the current unit at the given level.
	Text(level Level) (string, error)
	// Confidence returns the mean confidence of the current unit, 0-100.
	Confidence(level Level) float32
	// BoundingBox returns the current unit's box in pixel coordinates.
	BoundingBox(level Level) (BoundingBox, bool)
	// Orientation reports the layout orientation of the current block.
	Orientation() (Orientation, error)
	// FontAttributes reports the font matched for the current word.
	FontAttributes() (FontAttributes, bool)
	// Choices opens a cursor over the competing hypotheses for the current
	// symbol. It must be closed before advancing this cursor. Choices are
	// only captured when the session variable enabling them was set before
	// recognition.
	Choices() (ChoiceCursor, error)
	Close() error
}

// ChoiceCursor enumerates alternative recognition hypotheses for one symbol
// in engine-assigned order. The layer passes the order through untouched.
type ChoiceCursor interface {
	Next() bool
	Text() string
	Confidence() float32
	Close() error
}

// ResultIterator is the native-backed ResultCursor.
type ResultIterator struct {
	it     resultIter
	closed bool
}

func (r *ResultIterator) Begin() {
	if !r.closed {
		r.it.Begin()
	}
}

func (r *ResultIterator) Next(level Level) bool {
	if r.closed {
		return false
	}
	return r.it.Next(level)
}

func (r *ResultIterator) Text(level Level) (string, error) {
	if r.closed {
		return "", ErrClosed
	}
	text, ok := r.it.Text(level)
	if !ok {
		return "", fmt.Errorf("tess: no text at level %d", level)
	}
	return text, nil
}

func (r *ResultIterator) Confidence(level Level) float32 {
	if r.closed {
		return 0
	}
	return r.it.Confidence(level)
}

func (r *ResultIterator) BoundingBox(level Level) (BoundingBox, bool) {
	if r.closed {
		return BoundingBox{}, false
	}
	return r.it.BoundingBox(level)
}

func (r *ResultIterator) Orientation() (Orientation, error) {
	if r.closed {
		return Orientation{}, ErrClosed
	}
	return r.it.Orientation(), nil
}

func (r *ResultIterator) FontAttributes() (FontAttributes, bool) {
	if r.closed {
		return FontAttributes{}, false
	}
	return r.it.FontAttributes()
}

func (r *ResultIterator) Choices() (ChoiceCursor, error) {
	if r.closed {
		return nil, ErrClosed
	}
	ci, ok := r.it.Choices()
	if !ok {
		return nil, fmt.Errorf("tess: no choices for current symbol")
	}
	return &ChoiceIterator{it: ci}, nil
}

func (r *ResultIterator) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	r.it.Delete()
	return nil
}

// ChoiceIterator is the native-backed ChoiceCursor.
type ChoiceIterator struct {
	it     choiceIter
	closed bool
}

func (c *ChoiceIterator) Next() bool {
	if c.closed {
		return false
	}
	return c.it.Next()
}

func (c *ChoiceIterator) Text() string {
	if c.closed {
		return ""
	}
	return c.it.Text()
}

func (c *ChoiceIterator) Confidence() float32 {
	if c.closed {
		return 0
	}
	return c.it.Confidence()
}

func (c *ChoiceIterator) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	c.it.Delete()
	return nil
}
