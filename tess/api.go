package tess

// api is the call surface of the native binding. The cgo implementation lives
// behind the "ocr" build tag; tag-less builds get a stub, and tests substitute
// fakes. The surface mirrors the engine's C API one call per method so the
// wrapper types above it stay free of conditional compilation.
type api interface {
	// NewBase creates and initializes one native engine instance.
	NewBase(datapath, language string, mode EngineMode) (base, error)
}

type base interface {
	SetPageSegMode(mode PageSegMode)
	SetVariable(key, value string) bool
	SetImage(pix []byte, width, height, bytesPerPixel, bytesPerLine int)
	SetRectangle(x, y, width, height int)
	Recognize() bool
	UTF8Text() (string, bool)
	HOCRText(page int) (string, bool)
	Datapath() string
	NewRenderer(format Format, outputBase string) (renderer, error)
	ProcessPages(filename string, head renderer) bool
	Iterator() (resultIter, bool)
	Delete()
}

type renderer interface {
	Insert(next renderer)
	Extension() string
	Output() ([]byte, error)
	// Delete releases the renderer and, when called on a chain head, every
	// renderer linked after it.
	Delete()
}

type resultIter interface {
	Begin()
	Next(level Level) bool
	Text(level Level) (string, bool)
	Confidence(level Level) float32
	BoundingBox(level Level) (BoundingBox, bool)
	Orientation() Orientation
	FontAttributes() (FontAttributes, bool)
	Choices() (choiceIter, bool)
	Delete()
}

type choiceIter interface {
	Next() bool
	Text() string
	Confidence() float32
	Delete()
}
