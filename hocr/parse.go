package hocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads hOCR markup and builds the structured document hierarchy.
// Elements it does not recognize are descended through, so engine-specific
// wrappers (divs, spans without an ocr class) are tolerated.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse hocr: %w", err)
	}
	doc := &Document{}
	walk(root, doc)
	return doc, nil
}

func walk(n *html.Node, doc *Document) {
	if n.Type == html.ElementNode {
		switch class(n) {
		case "ocr_page":
			page := Page{ID: attr(n, "id"), Box: parseBox(attr(n, "title"))}
			collectPage(n, &page)
			doc.Pages = append(doc.Pages, page)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, doc)
	}
}

func collectPage(n *html.Node, page *Page) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch class(c) {
		case "ocr_par":
			par := Paragraph{Box: parseBox(attr(c, "title"))}
			collectParagraph(c, &par)
			page.Paragraphs = append(page.Paragraphs, par)
		default:
			collectPage(c, page)
		}
	}
}

func collectParagraph(n *html.Node, par *Paragraph) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch class(c) {
		case "ocr_line", "ocr_header", "ocr_caption", "ocr_textfloat":
			line := Line{Box: parseBox(attr(c, "title"))}
			collectLine(c, &line)
			par.Lines = append(par.Lines, line)
		default:
			collectParagraph(c, par)
		}
	}
}

func collectLine(n *html.Node, line *Line) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if class(c) == "ocrx_word" {
			title := attr(c, "title")
			line.Words = append(line.Words, Word{
				Text:       strings.TrimSpace(text(c)),
				Box:        parseBox(title),
				Confidence: parseConfidence(title),
			})
			continue
		}
		collectLine(c, line)
	}
}

func class(n *html.Node) string { return attr(n, "class") }

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}

// parseBox extracts the "bbox l t r b" property from an hOCR title attribute.
func parseBox(title string) Box {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) == 5 && fields[0] == "bbox" {
			l, _ := strconv.Atoi(fields[1])
			t, _ := strconv.Atoi(fields[2])
			r, _ := strconv.Atoi(fields[3])
			b, _ := strconv.Atoi(fields[4])
			return Box{Left: l, Top: t, Right: r, Bottom: b}
		}
	}
	return Box{}
}

// parseConfidence extracts the "x_wconf n" property from a title attribute.
func parseConfidence(title string) float64 {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) == 2 && fields[0] == "x_wconf" {
			v, _ := strconv.ParseFloat(fields[1], 64)
			return v
		}
	}
	return 0
}
