// Package tess wraps the Tesseract C API in owned resource types: a Session
// holding one native engine instance, a Chain of output renderers, and result
// cursors for walking recognition output. Each type is created through a
// constructor and released through a single Close/Delete path; raw native
// handles are never exposed.
//
// The native binding is compiled only when the "ocr" build tag is set and a
// Tesseract development install is available:
//
//	go build -tags ocr
//
// Without the tag, NewSession returns ErrNotEnabled and everything above the
// binding still compiles and tests against fakes.
package tess
