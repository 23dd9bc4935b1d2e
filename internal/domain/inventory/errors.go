package inventory

import "errors"

// Sentinel kinds for inventory errors.
var (
	ErrFetchFailed = errors.New("inventory fetch failed")
)
