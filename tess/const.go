package tess

// EngineMode selects which recognition engine a session runs.
type EngineMode int

const (
	EngineModeTesseractOnly EngineMode = iota
	EngineModeLSTMOnly
	EngineModeTesseractLSTMCombined
	EngineModeDefault
)

// PageSegMode controls how the engine partitions a page into text regions
// before recognition.
type PageSegMode int

const (
	PSMOSDOnly PageSegMode = iota
	PSMAutoOSD
	PSMAutoOnly
	PSMAuto
	PSMSingleColumn
	PSMSingleBlockVertText
	PSMSingleBlock
	PSMSingleLine
	PSMSingleWord
	PSMCircleWord
	PSMSingleChar
	PSMSparseText
	PSMSparseTextOSD
	PSMRawLine
)

// Level is one of the five page hierarchy levels result cursors operate on,
// coarsest first.
type Level int

const (
	LevelBlock Level = iota
	LevelParagraph
	LevelLine
	LevelWord
	LevelSymbol
)

// Format identifies one rendered output kind.
type Format int

const (
	FormatText Format = iota
	FormatHOCR
	FormatPDF
	FormatBox
	FormatUNLV
)

// Extension returns the file extension the native renderer for f produces.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatHOCR:
		return "hocr"
	case FormatPDF:
		return "pdf"
	case FormatBox:
		return "box"
	case FormatUNLV:
		return "unlv"
	}
	return ""
}

func (f Format) String() string {
	switch f {
	case FormatText:
		return "TEXT"
	case FormatHOCR:
		return "HOCR"
	case FormatPDF:
		return "PDF"
	case FormatBox:
		return "BOX"
	case FormatUNLV:
		return "UNLV"
	}
	return "UNKNOWN"
}

// Output is one renderer's accumulated bytes for a complete processing run.
type Output struct {
	Extension string
	Data      []byte
}

// BoundingBox is a unit's box in pixel coordinates.
type BoundingBox struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// FontAttributes describes the font the engine matched for the current word.
type FontAttributes struct {
	Name       string
	Bold       bool
	Italic     bool
	Underlined bool
	Monospace  bool
	Serif      bool
	SmallCaps  bool
	PointSize  int
	FontID     int
}

// PageOrientation is the detected orientation of a block's text.
type PageOrientation int

const (
	OrientationPageUp PageOrientation = iota
	OrientationPageRight
	OrientationPageDown
	OrientationPageLeft
)

// WritingDirection is the detected writing direction of a block's text.
type WritingDirection int

const (
	WritingDirectionLeftToRight WritingDirection = iota
	WritingDirectionRightToLeft
	WritingDirectionTopToBottom
)

// TextlineOrder is the order textlines flow within a block.
type TextlineOrder int

const (
	TextlineOrderLeftToRight TextlineOrder = iota
	TextlineOrderRightToLeft
	TextlineOrderTopToBottom
)

// Orientation bundles the layout orientation queries for the current block.
type Orientation struct {
	Page             PageOrientation
	WritingDirection WritingDirection
	TextlineOrder    TextlineOrder
	DeskewAngle      float32
}
