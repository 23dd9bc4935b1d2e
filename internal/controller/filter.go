// Package controller coordinates dataset refreshes against the external source.
//
// The controller is a two-state machine: Idle and Refreshing. A filter
// change while Idle starts a fetch; a filter change while Refreshing is
// queued with latest-wins semantics, and interest in the in-flight
// result is dropped at the same moment. A stale fetch that still
// completes is discarded, never applied, so dataset replacements are
// observed in the order their surviving fetches complete.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okraft/skillscope/internal/adapters/repository"
	"github.com/okraft/skillscope/internal/domain/inventory"
	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/pkg/logger"
	"github.com/okraft/skillscope/pkg/metrics"
)

// defaultFetchTimeout bounds a single dataset fetch.
const defaultFetchTimeout = 10 * time.Second

// State is the controller's current refresh state.
type State int

// Controller states.
const (
	StateIdle State = iota
	StateRefreshing
)

// Source is the external analytics collaborator the controller fetches
// fresh datasets from.
type Source interface {
	FetchDataset(ctx context.Context, f inventory.Filter) (model.Dataset, error)
}

// FilterController turns user filter-change events into dataset
// replacements. It never runs overlapping fetches and never touches the
// stored dataset when a fetch fails.
type FilterController struct {
	mu           sync.Mutex
	state        State
	pending      *inventory.Filter // latest queued filter while refreshing
	activeID     uuid.UUID         // id of the fetch whose result is still wanted
	cancelActive context.CancelFunc

	store   repository.Store
	source  Source
	timeout time.Duration
	onError func(error)
	log     logger.Logger
}

// New creates a FilterController bound to a store and a source.
func New(store repository.Store, source Source, opts ...Option) *FilterController {
	c := &FilterController{
		store:   store,
		source:  source,
		timeout: defaultFetchTimeout,
		log:     logger.Get(),
	}
	c.onError = func(err error) {
		c.log.Error(context.Background(), "dataset refresh failed", logger.Error(err))
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the controller's current state.
func (c *FilterController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Apply handles a user filter-change event. It returns immediately; the
// fetch runs asynchronously. While a fetch is in flight, later filters
// overwrite the queued one (latest wins) and the in-flight result is
// discarded even if it completes successfully.
func (c *FilterController) Apply(ctx context.Context, f inventory.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRefreshing {
		c.pending = &f
		// Drop interest in the in-flight fetch. Its result, success or
		// failure, no longer matters.
		c.activeID = uuid.Nil
		if c.cancelActive != nil {
			c.cancelActive()
		}
		metrics.RecordRefreshSuperseded()
		c.log.Debug(ctx, "refresh superseded by newer filter",
			logger.String("department", f.Department()),
		)
		return
	}

	c.state = StateRefreshing
	c.launch(f)
}

// launch starts an asynchronous fetch for f. Callers must hold c.mu.
func (c *FilterController) launch(f inventory.Filter) {
	id := uuid.New()
	c.activeID = id

	fetchCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
	c.cancelActive = cancel

	go c.fetch(fetchCtx, cancel, id, f)
}

// fetch runs one dataset fetch to completion and settles the state
// machine: apply the result if it is still wanted, start the queued
// filter if one arrived meanwhile, otherwise return to Idle.
func (c *FilterController) fetch(ctx context.Context, cancel context.CancelFunc, id uuid.UUID, f inventory.Filter) {
	start := time.Now()
	ds, err := c.source.FetchDataset(ctx, f)
	cancel()
	metrics.ObserveRefreshDuration(float64(time.Since(start).Milliseconds()))

	var surfaced error

	c.mu.Lock()
	stale := c.activeID != id
	if !stale {
		if err != nil {
			// Prior dataset retained; state machine still settles below.
			surfaced = fmt.Errorf("%w: %v", ErrDataFetchFailed, err)
		} else {
			// Replace while holding the lock so replacements cannot be
			// reordered against a refresh that starts right after this
			// one settles. Store subscribers must not call back into the
			// controller.
			c.store.Replace(context.Background(), ds)
			metrics.RecordRefresh()
		}
	}

	if c.pending != nil {
		next := *c.pending
		c.pending = nil
		c.launch(next)
	} else {
		c.state = StateIdle
		c.activeID = uuid.Nil
		c.cancelActive = nil
	}
	c.mu.Unlock()

	if stale {
		c.log.Debug(context.Background(), "discarded stale fetch result",
			logger.String("fetchID", id.String()),
		)
		return
	}
	if surfaced != nil {
		metrics.RecordRefreshFailure()
		c.onError(surfaced)
	}
}
