package render

import "errors"

// Sentinel kinds for render errors.
var (
	ErrRenderFailed = errors.New("render failed")
)
