package engine

import (
	"sync"

	"github.com/wudi/tesskit/frames"
	"github.com/wudi/tesskit/observability"
	"github.com/wudi/tesskit/preprocess"
	"github.com/wudi/tesskit/tess"
)

// session is the slice of tess.Session the orchestrator drives. Tests
// substitute counting fakes to verify lifecycle discipline.
type session interface {
	SetVariable(key, value string) error
	SetImage(f frames.Frame) error
	Recognize() error
	Text() (string, error)
	HOCRText(pageIndex int) (string, error)
	Render(inputPath string, formats []tess.Format) ([]tess.Output, error)
	Results() (tess.ResultCursor, error)
	Close() error
}

// Variable is one engine configuration entry. Entries apply in the order they
// were added, before any image is submitted.
type Variable struct {
	Key   string
	Value string
}

// Engine coordinates recognition calls. The zero value is not usable; build
// one with New.
type Engine struct {
	mu sync.Mutex

	datapath string
	language string
	mode     tess.EngineMode
	psm      tess.PageSegMode
	vars     []Variable
	output   tess.Format
	steps    []preprocess.Step
	log      observability.Logger

	newSession func(tess.Config) (session, error)
}

// New builds an Engine. Defaults: language "eng", engine-resolved data path,
// default engine mode, automatic page segmentation, plain text output, no
// logging.
func New(opts ...Option) *Engine {
	e := &Engine{
		language: "eng",
		mode:     tess.EngineModeDefault,
		psm:      tess.PSMAuto,
		output:   tess.FormatText,
		log:      observability.NopLogger{},
	}
	e.newSession = func(cfg tess.Config) (session, error) {
		return tess.NewSession(cfg)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) config() tess.Config {
	return tess.Config{
		Datapath:    e.datapath,
		Language:    e.language,
		Mode:        e.mode,
		PageSegMode: e.psm,
	}
}

// openSession creates a session and applies the variable store. A variable
// the native engine rejects is logged and skipped; the surface stays as
// permissive as the engine's own.
func (e *Engine) openSession() (session, error) {
	s, err := e.newSession(e.config())
	if err != nil {
		return nil, err
	}
	for _, v := range e.vars {
		if verr := s.SetVariable(v.Key, v.Value); verr != nil {
			e.log.Warn("variable rejected by engine",
				observability.String("key", v.Key), observability.Err(verr))
		}
	}
	return s, nil
}

func (e *Engine) closeSession(s session) {
	if err := s.Close(); err != nil {
		e.log.Error("close session", observability.Err(err))
	}
}
