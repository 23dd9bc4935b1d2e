package service

import "errors"

// ErrNotStarted is returned when an operation is invoked before Start
// has initialized the store and the refresh controller.
var ErrNotStarted = errors.New("service not started")
