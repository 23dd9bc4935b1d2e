package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrAlreadyLoaded = errors.New("dataset already loaded")
)
