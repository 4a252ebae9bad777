package engine

import (
	"github.com/wudi/tesskit/observability"
	"github.com/wudi/tesskit/preprocess"
	"github.com/wudi/tesskit/tess"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithDatapath sets the directory the engine's language data resides under.
func WithDatapath(path string) Option {
	return func(e *Engine) { e.datapath = path }
}

// WithLanguage sets the recognition language, an ISO 639-3 code such as
// "eng", or several joined with "+" ("eng+deu").
func WithLanguage(language string) Option {
	return func(e *Engine) { e.language = language }
}

// WithEngineMode selects the recognition engine variant.
func WithEngineMode(mode tess.EngineMode) Option {
	return func(e *Engine) { e.mode = mode }
}

// WithPageSegMode sets how pages are partitioned into text regions.
func WithPageSegMode(mode tess.PageSegMode) Option {
	return func(e *Engine) { e.psm = mode }
}

// WithVariable adds one engine configuration entry, e.g.
// ("tessedit_char_whitelist", "0123456789"). Entries apply in the order they
// were added; unknown keys pass through to the engine unvalidated.
func WithVariable(key, value string) Option {
	return func(e *Engine) { e.vars = append(e.vars, Variable{Key: key, Value: value}) }
}

// WithOutputFormat selects the text-extraction output: tess.FormatText for
// plain text (the default) or tess.FormatHOCR for framed hOCR markup. Other
// formats are produced through the rendering APIs, not text extraction.
func WithOutputFormat(format tess.Format) Option {
	return func(e *Engine) { e.output = format }
}

// WithLogger installs a logger for skipped pages, rejected variables, and
// file write failures.
func WithLogger(log observability.Logger) Option {
	return func(e *Engine) {
		if log == nil {
			log = observability.NopLogger{}
		}
		e.log = log
	}
}

// WithPreprocess applies the given cleanup steps to every image-based input
// before recognition. Raw frame submissions are not touched.
func WithPreprocess(steps ...preprocess.Step) Option {
	return func(e *Engine) { e.steps = append(e.steps, steps...) }
}
