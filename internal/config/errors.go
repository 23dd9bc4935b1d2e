package config

import "errors"

// Sentinel kinds for configuration errors, matchable with errors.Is.
var (
	// ErrInvalidConfig indicates a loaded value failed validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig indicates a provider (file or env) failed to load.
	ErrLoadConfig = errors.New("load config failed")
)
