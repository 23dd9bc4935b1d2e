// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"time"

	"github.com/okraft/skillscope/internal/controller"
	"github.com/okraft/skillscope/internal/domain/inventory"
	"github.com/okraft/skillscope/internal/render"
	"github.com/okraft/skillscope/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSource sets the external dataset source. Defaults to the fixture
// inventory when unset.
func WithSource(source controller.Source) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithPalette sets the ordered cluster color palette.
func WithPalette(palette []string) Option {
	return func(s *Service) {
		s.palette = palette
	}
}

// WithLayoutPadding sets the minimum gap between cluster circles.
func WithLayoutPadding(padding float64) Option {
	return func(s *Service) {
		if padding >= 0 {
			s.layoutPadding = padding
		}
	}
}

// WithLayoutMargin sets the outer margin around the packed arrangement.
func WithLayoutMargin(margin float64) Option {
	return func(s *Service) {
		if margin >= 0 {
			s.layoutMargin = margin
		}
	}
}

// WithLayoutMinWeight floors cluster weights for sizing.
func WithLayoutMinWeight(w float64) Option {
	return func(s *Service) {
		if w > 0 {
			s.layoutMinWeight = w
		}
	}
}

// WithFontRange bounds cluster label font sizes.
func WithFontRange(minSize, maxSize float64) Option {
	return func(s *Service) {
		if minSize > 0 && maxSize >= minSize {
			s.fontMin = minSize
			s.fontMax = maxSize
		}
	}
}

// WithRefreshTimeout bounds a single dataset fetch.
func WithRefreshTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.refreshTimeout = timeout
		}
	}
}

// WithDefaultFilter sets the filter used for the initial dataset load.
func WithDefaultFilter(f inventory.Filter) Option {
	return func(s *Service) {
		if f != nil {
			s.defaultFilter = f
		}
	}
}

// WithActionHandler sets the handler that receives gap-row action
// intents from the view boundary.
func WithActionHandler(handler render.ActionHandler) Option {
	return func(s *Service) {
		if handler != nil {
			s.actionHandler = handler
		}
	}
}
