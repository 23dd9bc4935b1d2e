package layout

import "errors"

// Sentinel kinds for layout errors.
var (
	ErrInvalidLayoutArea = errors.New("invalid layout area")
)
