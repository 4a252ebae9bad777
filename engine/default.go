package engine

import "sync"

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

// Default returns the process-wide shared engine, constructing it with
// default options on first use. It is one recognizer identity offered for
// convenience; its calls serialize on the engine's internal lock.
func Default() *Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine == nil {
		defaultEngine = New()
	}
	return defaultEngine
}

// SetDefault replaces the shared engine, e.g. with one configured for a
// specific data path or language.
func SetDefault(e *Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = e
}
