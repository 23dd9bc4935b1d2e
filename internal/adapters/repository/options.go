// Package repository defines the dataset store interface and errors.
package repository

import "github.com/okraft/skillscope/pkg/logger"

// Option applies a configuration option to the DatasetStore.
type Option func(*DatasetStore)

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *DatasetStore) {
		if log != nil {
			s.log = log
		}
	}
}
