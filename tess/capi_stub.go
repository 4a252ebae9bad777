//go:build !ocr

package tess

func defaultAPI() api { return stubAPI{} }

// stubAPI stands in when the module is built without the "ocr" tag. Session
// construction fails with ErrNotEnabled; nothing else is reachable.
type stubAPI struct{}

func (stubAPI) NewBase(string, string, EngineMode) (base, error) {
	return nil, ErrNotEnabled
}
