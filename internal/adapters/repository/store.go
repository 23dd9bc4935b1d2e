// Package repository defines the dataset store interface and errors.
package repository

import (
	"context"

	"github.com/okraft/skillscope/internal/domain/model"
)

// Subscriber is notified with the full dataset after every replacement.
// Subscribers must treat the dataset they receive as an immutable value
// and must not retain it across a later replacement.
type Subscriber func(model.Dataset)

// Store owns the current dashboard dataset. The dataset is only ever
// swapped wholesale, so a reader always observes a complete snapshot and
// never a mix of pre- and post-replacement fields.
type Store interface {
	// Load installs the initial dataset. Returns ErrAlreadyLoaded if a
	// dataset was installed before.
	Load(ctx context.Context, initial model.Dataset) error

	// Replace swaps in the next dataset and notifies subscribers
	// synchronously in subscription order.
	Replace(ctx context.Context, next model.Dataset)

	// Current returns the dataset snapshot held right now.
	Current(ctx context.Context) model.Dataset

	// Loaded reports whether an initial dataset has been installed.
	Loaded(ctx context.Context) bool

	// OnChange registers a subscriber for future replacements.
	OnChange(sub Subscriber)
}
