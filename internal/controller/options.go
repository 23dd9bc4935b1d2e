// Package controller coordinates dataset refreshes against the external source.
package controller

import (
	"time"

	"github.com/okraft/skillscope/pkg/logger"
)

// Option applies a configuration option to the FilterController.
type Option func(*FilterController)

// WithTimeout bounds how long a single dataset fetch may run.
func WithTimeout(timeout time.Duration) Option {
	return func(c *FilterController) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets a custom logger for the controller.
func WithLogger(log logger.Logger) Option {
	return func(c *FilterController) {
		if log != nil {
			c.log = log
		}
	}
}

// WithErrorHandler sets the handler that surfaces fetch failures to the
// user. The prior dataset is always retained on failure.
func WithErrorHandler(handler func(error)) Option {
	return func(c *FilterController) {
		if handler != nil {
			c.onError = handler
		}
	}
}
