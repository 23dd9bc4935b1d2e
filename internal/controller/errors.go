package controller

import "errors"

// Sentinel kinds for refresh errors.
var (
	ErrDataFetchFailed = errors.New("dataset fetch failed")
)
