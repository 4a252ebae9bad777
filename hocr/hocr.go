// Package hocr handles the hOCR markup format: the HTML-based representation
// of OCR output with per-word bounding boxes and confidences. It provides the
// document framing applied around per-page engine output and a parser turning
// hOCR markup into a structured page/paragraph/line/word hierarchy.
package hocr

// DocumentBegin and DocumentEnd frame the concatenated per-page hOCR bodies
// emitted by the engine into one well-formed document. They are applied once
// per document, never per page.
const (
	DocumentBegin = "<html xmlns=\"http://www.w3.org/1999/xhtml\" xml:lang=\"en\" lang=\"en\">\n" +
		"<head>\n<title></title>\n" +
		"<meta http-equiv=\"Content-Type\" content=\"text/html;charset=utf-8\" />\n" +
		"<meta name='ocr-system' content='tesseract'/>\n" +
		"</head>\n<body>\n"

	DocumentEnd = "</body>\n</html>\n"
)

// WrapPages frames the concatenated per-page bodies into a complete document.
func WrapPages(body string) string {
	return DocumentBegin + body + DocumentEnd
}

// Box is a bounding box in pixel coordinates as carried by hOCR title
// attributes: left, top, right, bottom.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Word is a single recognized token (class ocrx_word).
type Word struct {
	Text       string
	Box        Box
	Confidence float64
}

// Line is one text line (class ocr_line).
type Line struct {
	Box   Box
	Words []Word
}

// Paragraph is one paragraph (class ocr_par).
type Paragraph struct {
	Box   Box
	Lines []Line
}

// Page is one page (class ocr_page).
type Page struct {
	ID         string
	Box        Box
	Paragraphs []Paragraph
}

// Document is a parsed hOCR document.
type Document struct {
	Pages []Page
}

// Words returns every word of the document in reading order.
func (d *Document) Words() []Word {
	var out []Word
	for _, p := range d.Pages {
		for _, par := range p.Paragraphs {
			for _, ln := range par.Lines {
				out = append(out, ln.Words...)
			}
		}
	}
	return out
}
