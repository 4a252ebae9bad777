package tess

import (
	"errors"
	"fmt"
)

// fakeAPI implements the binding surface in-memory so the resource wrappers
// can be exercised without a native engine.
type fakeAPI struct {
	initErr error
	base    *fakeBase
}

func (f *fakeAPI) NewBase(datapath, language string, mode EngineMode) (base, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	if f.base == nil {
		f.base = &fakeBase{datapath: datapath, language: language, mode: mode, text: "hello"}
	}
	return f.base, nil
}

type imageCall struct {
	width, height, bytesPerPixel, bytesPerLine, bufLen int
}

type rectCall struct {
	x, y, width, height int
}

type fakeBase struct {
	datapath string
	language string
	mode     EngineMode
	psm      PageSegMode

	vars    []string
	images  []imageCall
	rects   []rectCall
	deletes int

	text          string
	failRecognize bool
	recognized    int

	failRenderer    Format
	failRendererSet bool
	renderers       []*fakeRenderer
	failProcess     bool
	processed       []string

	iter *fakeResultIter
}

func (b *fakeBase) SetPageSegMode(mode PageSegMode) { b.psm = mode }

func (b *fakeBase) SetVariable(key, value string) bool {
	b.vars = append(b.vars, key+"="+value)
	return true
}

func (b *fakeBase) SetImage(pix []byte, width, height, bytesPerPixel, bytesPerLine int) {
	b.images = append(b.images, imageCall{width, height, bytesPerPixel, bytesPerLine, len(pix)})
}

func (b *fakeBase) SetRectangle(x, y, width, height int) {
	b.rects = append(b.rects, rectCall{x, y, width, height})
}

func (b *fakeBase) Recognize() bool {
	b.recognized++
	return !b.failRecognize
}

func (b *fakeBase) UTF8Text() (string, bool) { return b.text, true }

func (b *fakeBase) HOCRText(page int) (string, bool) {
	return fmt.Sprintf("<div class='ocr_page' id='page_%d'></div>\n", page+1), true
}

func (b *fakeBase) Datapath() string { return b.datapath }

func (b *fakeBase) NewRenderer(format Format, outputBase string) (renderer, error) {
	if b.failRendererSet && format == b.failRenderer {
		return nil, errors.New("constructor failed")
	}
	r := &fakeRenderer{
		format:     format,
		outputBase: outputBase,
		data:       []byte(format.String() + " bytes"),
	}
	b.renderers = append(b.renderers, r)
	return r, nil
}

func (b *fakeBase) ProcessPages(filename string, head renderer) bool {
	b.processed = append(b.processed, filename)
	return !b.failProcess
}

func (b *fakeBase) Iterator() (resultIter, bool) {
	if b.iter == nil {
		return nil, false
	}
	return b.iter, true
}

func (b *fakeBase) Delete() { b.deletes++ }

type fakeRenderer struct {
	format     Format
	outputBase string
	data       []byte
	outErr     error
	inserted   []*fakeRenderer
	deleted    bool
}

func (r *fakeRenderer) Insert(next renderer) {
	r.inserted = append(r.inserted, next.(*fakeRenderer))
}

func (r *fakeRenderer) Extension() string { return r.format.Extension() }

func (r *fakeRenderer) Output() ([]byte, error) {
	if r.outErr != nil {
		return nil, r.outErr
	}
	return r.data, nil
}

func (r *fakeRenderer) Delete() {
	r.deleted = true
	for _, n := range r.inserted {
		n.deleted = true
	}
}

// fakeResultIter serves a fixed sequence of words, each optionally carrying
// symbol choices.
type fakeWord struct {
	text    string
	conf    float32
	box     BoundingBox
	font    FontAttributes
	choices []fakeChoice
}

type fakeChoice struct {
	text string
	conf float32
}

type fakeResultIter struct {
	words   []fakeWord
	pos     int
	deleted bool
}

func (it *fakeResultIter) Begin() { it.pos = 0 }

func (it *fakeResultIter) Next(level Level) bool {
	if it.pos+1 >= len(it.words) {
		return false
	}
	it.pos++
	return true
}

func (it *fakeResultIter) Text(level Level) (string, bool) {
	if it.pos >= len(it.words) {
		return "", false
	}
	return it.words[it.pos].text, true
}

func (it *fakeResultIter) Confidence(level Level) float32 {
	return it.words[it.pos].conf
}

func (it *fakeResultIter) BoundingBox(level Level) (BoundingBox, bool) {
	return it.words[it.pos].box, true
}

func (it *fakeResultIter) Orientation() Orientation {
	return Orientation{Page: OrientationPageUp}
}

func (it *fakeResultIter) FontAttributes() (FontAttributes, bool) {
	return it.words[it.pos].font, true
}

func (it *fakeResultIter) Choices() (choiceIter, bool) {
	if it.words[it.pos].choices == nil {
		return nil, false
	}
	return &fakeChoiceIter{choices: it.words[it.pos].choices}, true
}

func (it *fakeResultIter) Delete() { it.deleted = true }

type fakeChoiceIter struct {
	choices []fakeChoice
	pos     int
	deleted bool
}

func (c *fakeChoiceIter) Next() bool {
	if c.pos+1 >= len(c.choices) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeChoiceIter) Text() string        { return c.choices[c.pos].text }
func (c *fakeChoiceIter) Confidence() float32 { return c.choices[c.pos].conf }
func (c *fakeChoiceIter) Delete()             { c.deleted = true }
