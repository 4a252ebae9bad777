package engine

import (
	"github.com/wudi/tesskit/frames"
	"github.com/wudi/tesskit/tess"
)

// Word is one recognized token with its position and matched font.
type Word struct {
	Text       string
	Confidence float32
	Box        tess.BoundingBox
	Font       tess.FontAttributes
}

// Choice is one alternative hypothesis for a symbol, in engine-assigned
// order.
type Choice struct {
	Text       string
	Confidence float32
}

// Symbol is one recognized character with its competing hypotheses.
type Symbol struct {
	Text       string
	Confidence float32
	Box        tess.BoundingBox
	Choices    []Choice
}

// saveBlobChoices makes the engine retain per-symbol alternatives during
// recognition; without it the choice cursor has nothing to report.
const saveBlobChoices = "save_blob_choices"

// Words recognizes one frame and returns its words in reading order.
func (e *Engine) Words(f frames.Frame) ([]Word, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var words []Word
	err := e.walk(f, false, func(cur tess.ResultCursor) {
		for {
			if text, terr := cur.Text(tess.LevelWord); terr == nil && text != "" {
				box, _ := cur.BoundingBox(tess.LevelWord)
				font, _ := cur.FontAttributes()
				words = append(words, Word{
					Text:       text,
					Confidence: cur.Confidence(tess.LevelWord),
					Box:        box,
					Font:       font,
				})
			}
			if !cur.Next(tess.LevelWord) {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Symbols recognizes one frame at symbol granularity, capturing each
// symbol's alternative hypotheses. Choice capture is enabled for the
// session before recognition runs.
func (e *Engine) Symbols(f frames.Frame) ([]Symbol, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var symbols []Symbol
	err := e.walk(f, true, func(cur tess.ResultCursor) {
		for {
			if text, terr := cur.Text(tess.LevelSymbol); terr == nil && text != "" {
				box, _ := cur.BoundingBox(tess.LevelSymbol)
				symbols = append(symbols, Symbol{
					Text:       text,
					Confidence: cur.Confidence(tess.LevelSymbol),
					Box:        box,
					Choices:    collectChoices(cur),
				})
			}
			if !cur.Next(tess.LevelSymbol) {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return symbols, nil
}

// walk runs one recognition over f and hands the positioned cursor to visit.
func (e *Engine) walk(f frames.Frame, withChoices bool, visit func(tess.ResultCursor)) error {
	s, err := e.openSession()
	if err != nil {
		return err
	}
	defer e.closeSession(s)

	if withChoices {
		if verr := s.SetVariable(saveBlobChoices, "T"); verr != nil {
			return verr
		}
	}
	if err := s.SetImage(f); err != nil {
		return err
	}
	if err := s.Recognize(); err != nil {
		return err
	}
	cur, err := s.Results()
	if err != nil {
		return err
	}
	defer cur.Close()

	cur.Begin()
	visit(cur)
	return nil
}

// collectChoices drains and closes the choice cursor for the current symbol.
// The cursor must be closed before the owning result cursor advances.
func collectChoices(cur tess.ResultCursor) []Choice {
	ci, err := cur.Choices()
	if err != nil {
		return nil
	}
	defer ci.Close()

	var out []Choice
	for {
		out = append(out, Choice{Text: ci.Text(), Confidence: ci.Confidence()})
		if !ci.Next() {
			return out
		}
	}
}
