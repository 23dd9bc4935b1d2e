package repository

import (
	"context"
	"sync"

	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/pkg/logger"
	"github.com/okraft/skillscope/pkg/metrics"
)

// DatasetStore implements Store with a mutex-guarded in-memory snapshot.
type DatasetStore struct {
	mu      sync.RWMutex
	dataset model.Dataset
	loaded  bool
	subs    []Subscriber

	log logger.Logger
}

// NewDatasetStore creates an empty store with configuration options.
func NewDatasetStore(opts ...Option) *DatasetStore {
	s := &DatasetStore{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load installs the initial dataset.
func (s *DatasetStore) Load(ctx context.Context, initial model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return ErrAlreadyLoaded
	}

	s.dataset = initial
	s.loaded = true
	metrics.UpdateDatasetGauges(initial.Metrics.TotalSkills, initial.Metrics.TotalClusters, initial.Metrics.TotalEmployees, initial.Metrics.AvgProficiency)

	if s.log != nil {
		s.log.Info(ctx, "initial dataset loaded",
			logger.Int("clusters", len(initial.Clusters)),
			logger.Int("gaps", len(initial.Gaps)),
		)
	}
	return nil
}

// Replace swaps the dataset wholesale and notifies subscribers
// synchronously in subscription order. Each subscriber receives the new
// snapshot by value, so no subscriber can observe a partial mix of old
// and new fields.
func (s *DatasetStore) Replace(ctx context.Context, next model.Dataset) {
	s.mu.Lock()
	s.dataset = next
	s.loaded = true
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	metrics.UpdateDatasetGauges(next.Metrics.TotalSkills, next.Metrics.TotalClusters, next.Metrics.TotalEmployees, next.Metrics.AvgProficiency)

	for _, sub := range subs {
		sub(next)
	}

	if s.log != nil {
		s.log.Debug(ctx, "dataset replaced",
			logger.Int("clusters", len(next.Clusters)),
			logger.Int("gaps", len(next.Gaps)),
			logger.Int("subscribers", len(subs)),
		)
	}
}

// Current returns the dataset snapshot held right now. Before Load it
// returns the zero dataset.
func (s *DatasetStore) Current(_ context.Context) model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Loaded reports whether an initial dataset has been installed.
func (s *DatasetStore) Loaded(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// OnChange registers a subscriber for future replacements. Subscribers
// are invoked in registration order.
func (s *DatasetStore) OnChange(sub Subscriber) {
	if sub == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}
