package engine

import (
	"os"
	"path/filepath"

	"github.com/wudi/tesskit/observability"
	"github.com/wudi/tesskit/tess"
)

// RenderToBytes runs one rendering pass over the image file at imagePath and
// returns every requested format's bytes, one entry per format in request
// order. A failed pass still returns whatever output the renderers
// accumulated, alongside the error; the caller decides whether partial output
// is acceptable.
func (e *Engine) RenderToBytes(imagePath string, formats []tess.Format) ([]tess.Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.render(imagePath, formats)
}

// RenderToFiles runs one rendering pass over the image file at imagePath and
// writes one file per requested format, named <outputPrefix>.<extension>,
// into outputDir. A failed write for one format is logged and does not stop
// the remaining formats.
func (e *Engine) RenderToFiles(imagePath, outputPrefix, outputDir string, formats []tess.Format) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	outs, err := e.render(imagePath, formats)
	if outs == nil {
		return err
	}
	if err != nil {
		e.log.Warn("rendering pass reported errors",
			observability.String("input", imagePath), observability.Err(err))
	}

	for _, out := range outs {
		path := filepath.Join(outputDir, outputPrefix+"."+out.Extension)
		if werr := os.WriteFile(path, out.Data, 0o644); werr != nil {
			e.log.Error("write output file",
				observability.String("path", path), observability.Err(werr))
		}
	}
	return nil
}

func (e *Engine) render(imagePath string, formats []tess.Format) ([]tess.Output, error) {
	s, err := e.openSession()
	if err != nil {
		return nil, err
	}
	defer e.closeSession(s)

	return s.Render(imagePath, formats)
}
