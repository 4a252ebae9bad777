package tess

import (
	"errors"
	"fmt"
)

// ErrNotEnabled is returned by NewSession when the module was built without
// the "ocr" build tag and no native binding is available.
var ErrNotEnabled = errors.New("tess: native OCR support not enabled; rebuild with -tags ocr")

// ErrClosed is returned when a session, chain, or cursor is used after its
// native resources were released.
var ErrClosed = errors.New("tess: use of released native resource")

// InitError reports that the native engine could not be initialized, usually
// because the language data is missing under the data path or the engine mode
// is unsupported.
type InitError struct {
	Datapath string
	Language string
	Mode     EngineMode
	Err      error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("tess: init engine (datapath=%q language=%q mode=%d): %v",
		e.Datapath, e.Language, e.Mode, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// RenderError reports a failed multi-page rendering pass. Renderer output
// accumulated before the failure is still collectable; callers decide whether
// to keep it.
type RenderError struct {
	Input string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("tess: rendering pass failed for %q", e.Input)
}
