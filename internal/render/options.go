// Package render draws dashboard views onto a host-provided surface.
package render

import "github.com/okraft/skillscope/pkg/logger"

// ClusterViewOption applies a configuration option to the ClusterView.
type ClusterViewOption func(*ClusterView)

// WithPalette sets the ordered color palette for cluster circles.
func WithPalette(palette []string) ClusterViewOption {
	return func(v *ClusterView) {
		if len(palette) > 0 {
			v.palette = palette
		}
	}
}

// WithFontRange sets the floor and ceiling for circle label font sizes.
func WithFontRange(minSize, maxSize float64) ClusterViewOption {
	return func(v *ClusterView) {
		if minSize > 0 && maxSize >= minSize {
			v.minFont = minSize
			v.maxFont = maxSize
		}
	}
}

// WithClusterLogger sets a custom logger for the cluster view.
func WithClusterLogger(log logger.Logger) ClusterViewOption {
	return func(v *ClusterView) {
		if log != nil {
			v.log = log
		}
	}
}

// GapTableOption applies a configuration option to the GapTableView.
type GapTableOption func(*GapTableView)

// WithGapTableLogger sets a custom logger for the gap table view.
func WithGapTableLogger(log logger.Logger) GapTableOption {
	return func(v *GapTableView) {
		if log != nil {
			v.log = log
		}
	}
}
