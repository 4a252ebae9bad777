// Package engine is the public coordinator over the native recognition
// session. Each call owns its session for the whole call: the engine creates
// it, applies the configured variables, feeds pages through, extracts text or
// drives the renderer chain, and releases the session on every exit path.
//
// An Engine value serializes its exported methods with an internal mutex so
// the shared Default instance is safe to use from multiple goroutines; that
// lock is a convenience, not a performance primitive. For parallel OCR,
// construct one Engine per worker.
//
// There is no cancellation once recognition starts; the native engine runs to
// completion on the calling goroutine.
package engine
