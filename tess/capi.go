//go:build ocr

package tess

/*
#cgo LDFLAGS: -ltesseract
#include <stdlib.h>
#include <tesseract/capi.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

func defaultAPI() api { return capiAPI{} }

type capiAPI struct{}

func (capiAPI) NewBase(datapath, language string, mode EngineMode) (base, error) {
	h := C.TessBaseAPICreate()

	var cData, cLang *C.char
	if datapath != "" {
		cData = C.CString(datapath)
		defer C.free(unsafe.Pointer(cData))
	}
	if language != "" {
		cLang = C.CString(language)
		defer C.free(unsafe.Pointer(cLang))
	}

	if C.TessBaseAPIInit2(h, cData, cLang, C.TessOcrEngineMode(mode)) != 0 {
		C.TessBaseAPIDelete(h)
		return nil, errors.New("TessBaseAPIInit2 failed")
	}
	return &capiBase{h: h}, nil
}

// capiBase owns one TessBaseAPI handle plus the C copy of the most recently
// submitted pixel buffer. The engine keeps referring to the image data after
// SetImage returns, so the buffer lives until the next SetImage or Delete.
type capiBase struct {
	h   *C.TessBaseAPI
	pix unsafe.Pointer
}

func (b *capiBase) SetPageSegMode(mode PageSegMode) {
	C.TessBaseAPISetPageSegMode(b.h, C.TessPageSegMode(mode))
}

func (b *capiBase) SetVariable(key, value string) bool {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))
	return C.TessBaseAPISetVariable(b.h, cKey, cVal) != 0
}

func (b *capiBase) SetImage(pix []byte, width, height, bytesPerPixel, bytesPerLine int) {
	if b.pix != nil {
		C.free(b.pix)
	}
	b.pix = C.CBytes(pix)
	C.TessBaseAPISetImage(b.h, (*C.uchar)(b.pix),
		C.int(width), C.int(height), C.int(bytesPerPixel), C.int(bytesPerLine))
}

func (b *capiBase) SetRectangle(x, y, width, height int) {
	C.TessBaseAPISetRectangle(b.h, C.int(x), C.int(y), C.int(width), C.int(height))
}

func (b *capiBase) Recognize() bool {
	return C.TessBaseAPIRecognize(b.h, nil) == 0
}

func (b *capiBase) UTF8Text() (string, bool) {
	p := C.TessBaseAPIGetUTF8Text(b.h)
	if p == nil {
		return "", false
	}
	defer C.TessDeleteText(p)
	return C.GoString(p), true
}

func (b *capiBase) HOCRText(page int) (string, bool) {
	p := C.TessBaseAPIGetHOCRText(b.h, C.int(page))
	if p == nil {
		return "", false
	}
	defer C.TessDeleteText(p)
	return C.GoString(p), true
}

func (b *capiBase) Datapath() string {
	return C.GoString(C.TessBaseAPIGetDatapath(b.h))
}

func (b *capiBase) NewRenderer(format Format, outputBase string) (renderer, error) {
	cOut := C.CString(outputBase)
	defer C.free(unsafe.Pointer(cOut))

	var r *C.TessResultRenderer
	switch format {
	case FormatText:
		r = C.TessTextRendererCreate(cOut)
	case FormatHOCR:
		r = C.TessHOcrRendererCreate(cOut)
	case FormatPDF:
		cData := C.CString(b.Datapath())
		defer C.free(unsafe.Pointer(cData))
		r = C.TessPDFRendererCreate(cOut, cData, 0)
	case FormatBox:
		r = C.TessBoxTextRendererCreate(cOut)
	case FormatUNLV:
		r = C.TessUnlvRendererCreate(cOut)
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}
	if r == nil {
		return nil, errors.New("renderer constructor returned nil")
	}
	return &capiRenderer{r: r, outputBase: outputBase}, nil
}

func (b *capiBase) ProcessPages(filename string, head renderer) bool {
	cName := C.CString(filename)
	defer C.free(unsafe.Pointer(cName))
	return C.TessBaseAPIProcessPages(b.h, cName, nil, 0, head.(*capiRenderer).r) != 0
}

func (b *capiBase) Iterator() (resultIter, bool) {
	ri := C.TessBaseAPIGetIterator(b.h)
	if ri == nil {
		return nil, false
	}
	return &capiResultIter{ri: ri, pi: C.TessResultIteratorGetPageIterator(ri)}, true
}

func (b *capiBase) Delete() {
	if b.pix != nil {
		C.free(b.pix)
		b.pix = nil
	}
	C.TessBaseAPIDelete(b.h)
	b.h = nil
}

// capiRenderer wraps one TessResultRenderer. The native renderers write to
// <outputBase>.<ext>; Output reads the bytes back.
type capiRenderer struct {
	r          *C.TessResultRenderer
	outputBase string
}

func (r *capiRenderer) Insert(next renderer) {
	C.TessResultRendererInsert(r.r, next.(*capiRenderer).r)
}

func (r *capiRenderer) Extension() string {
	return C.GoString(C.TessResultRendererExtention(r.r))
}

func (r *capiRenderer) Output() ([]byte, error) {
	return os.ReadFile(r.outputBase + "." + r.Extension())
}

func (r *capiRenderer) Delete() {
	C.TessDeleteResultRenderer(r.r)
}

// capiResultIter pairs the result iterator with the page iterator sharing its
// position. The page iterator belongs to the result iterator and is not
// deleted separately.
type capiResultIter struct {
	ri *C.TessResultIterator
	pi *C.TessPageIterator
}

func (it *capiResultIter) Begin() {
	C.TessPageIteratorBegin(it.pi)
}

func (it *capiResultIter) Next(level Level) bool {
	return C.TessResultIteratorNext(it.ri, C.TessPageIteratorLevel(level)) != 0
}

func (it *capiResultIter) Text(level Level) (string, bool) {
	p := C.TessResultIteratorGetUTF8Text(it.ri, C.TessPageIteratorLevel(level))
	if p == nil {
		return "", false
	}
	defer C.TessDeleteText(p)
	return C.GoString(p), true
}

func (it *capiResultIter) Confidence(level Level) float32 {
	return float32(C.TessResultIteratorConfidence(it.ri, C.TessPageIteratorLevel(level)))
}

func (it *capiResultIter) BoundingBox(level Level) (BoundingBox, bool) {
	var left, top, right, bottom C.int
	ok := C.TessPageIteratorBoundingBox(it.pi, C.TessPageIteratorLevel(level),
		&left, &top, &right, &bottom) != 0
	return BoundingBox{int(left), int(top), int(right), int(bottom)}, ok
}

func (it *capiResultIter) Orientation() Orientation {
	var orient C.TessOrientation
	var direction C.TessWritingDirection
	var order C.TessTextlineOrder
	var deskew C.float
	C.TessPageIteratorOrientation(it.pi, &orient, &direction, &order, &deskew)
	return Orientation{
		Page:             PageOrientation(orient),
		WritingDirection: WritingDirection(direction),
		TextlineOrder:    TextlineOrder(order),
		DeskewAngle:      float32(deskew),
	}
}

func (it *capiResultIter) FontAttributes() (FontAttributes, bool) {
	var bold, italic, underlined, monospace, serif, smallcaps C.BOOL
	var pointSize, fontID C.int
	name := C.TessResultIteratorWordFontAttributes(it.ri,
		&bold, &italic, &underlined, &monospace, &serif, &smallcaps, &pointSize, &fontID)
	attrs := FontAttributes{
		Bold:       bold != 0,
		Italic:     italic != 0,
		Underlined: underlined != 0,
		Monospace:  monospace != 0,
		Serif:      serif != 0,
		SmallCaps:  smallcaps != 0,
		PointSize:  int(pointSize),
		FontID:     int(fontID),
	}
	if name == nil {
		return attrs, false
	}
	attrs.Name = C.GoString(name)
	return attrs, true
}

func (it *capiResultIter) Choices() (choiceIter, bool) {
	ci := C.TessResultIteratorGetChoiceIterator(it.ri)
	if ci == nil {
		return nil, false
	}
	return &capiChoiceIter{ci: ci}, true
}

func (it *capiResultIter) Delete() {
	C.TessResultIteratorDelete(it.ri)
	it.ri = nil
	it.pi = nil
}

type capiChoiceIter struct {
	ci *C.TessChoiceIterator
}

func (c *capiChoiceIter) Next() bool {
	return C.TessChoiceIteratorNext(c.ci) != 0
}

func (c *capiChoiceIter) Text() string {
	return C.GoString(C.TessChoiceIteratorGetUTF8Text(c.ci))
}

func (c *capiChoiceIter) Confidence() float32 {
	return float32(C.TessChoiceIteratorConfidence(c.ci))
}

func (c *capiChoiceIter) Delete() {
	C.TessChoiceIteratorDelete(c.ci)
	c.ci = nil
}
