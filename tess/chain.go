package tess

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Chain is an ordered sequence of native output renderers sharing one
// processing pass. The order of the requested formats is preserved. Closing
// the chain releases every renderer through the native head link.
type Chain struct {
	nodes  []chainNode
	dir    string
	closed bool
}

type chainNode struct {
	format   Format
	renderer renderer
}

// NewChain builds one renderer per requested format, in request order. The
// PDF renderer is constructed against the session's resolved data path. The
// renderers write through a chain-owned temporary output base that Outputs
// reads back; Close removes it.
func (s *Session) NewChain(formats []Format) (*Chain, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if len(formats) == 0 {
		return nil, errors.New("tess: no output formats requested")
	}

	dir, err := os.MkdirTemp("", "tesskit-render-")
	if err != nil {
		return nil, fmt.Errorf("tess: create render dir: %w", err)
	}
	outputBase := filepath.Join(dir, "render")

	c := &Chain{dir: dir}
	for _, format := range formats {
		r, err := s.base.NewRenderer(format, outputBase)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("tess: create %s renderer: %w", format, err)
		}
		if len(c.nodes) > 0 {
			c.nodes[0].renderer.Insert(r)
		}
		c.nodes = append(c.nodes, chainNode{format: format, renderer: r})
	}
	return c, nil
}

// ProcessPages drives one full multi-page pass over the image file at
// inputPath, feeding every renderer in the chain per page. A native failure
// returns a RenderError; output accumulated before the failure remains
// collectable through Outputs.
func (s *Session) ProcessPages(inputPath string, c *Chain) error {
	if s.closed || c.closed {
		return ErrClosed
	}
	if !s.base.ProcessPages(inputPath, c.nodes[0].renderer) {
		return &RenderError{Input: inputPath}
	}
	return nil
}

// Outputs collects every renderer's accumulated bytes, one entry per
// requested format in request order. A failure reading one renderer's output
// does not stop collection of the rest; the entry keeps whatever bytes exist
// and the failures come back joined as the error.
func (c *Chain) Outputs() ([]Output, error) {
	if c.closed {
		return nil, ErrClosed
	}
	outs := make([]Output, 0, len(c.nodes))
	var errs []error
	for _, n := range c.nodes {
		ext := n.renderer.Extension()
		data, err := n.renderer.Output()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s output: %w", n.format, err))
		}
		outs = append(outs, Output{Extension: ext, Data: data})
	}
	return outs, errors.Join(errs...)
}

// Close releases the whole chain through its head and removes the temporary
// output base. The first call wins; later calls return ErrClosed.
func (c *Chain) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	if len(c.nodes) > 0 {
		c.nodes[0].renderer.Delete()
	}
	if c.dir != "" {
		os.RemoveAll(c.dir)
	}
	return nil
}

// Render is the whole rendering pipeline over one input file: build the chain
// for the requested formats, run the processing pass, and collect the
// outputs. Outputs are returned even when the pass or part of the collection
// failed, with the failures joined as the error; the caller decides whether
// partial output is acceptable.
func (s *Session) Render(inputPath string, formats []Format) ([]Output, error) {
	c, err := s.NewChain(formats)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	procErr := s.ProcessPages(inputPath, c)
	outs, readErr := c.Outputs()
	return outs, errors.Join(procErr, readErr)
}
