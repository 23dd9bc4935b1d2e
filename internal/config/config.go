// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ViewportWidth and ViewportHeight size the server-rendered cluster map.
	ViewportWidth  float64 `koanf:"viewport_width"`
	ViewportHeight float64 `koanf:"viewport_height"`

	// LayoutPadding is the minimum gap between cluster circles.
	LayoutPadding float64 `koanf:"layout_padding"`

	// LayoutMargin is the outer margin around the packed arrangement.
	LayoutMargin float64 `koanf:"layout_margin"`

	// LayoutMinWeight floors cluster weights so empty clusters stay visible.
	LayoutMinWeight float64 `koanf:"layout_min_weight"`

	// Palette is the ordered color palette for cluster circles.
	Palette []string `koanf:"palette"`

	// FontMin and FontMax bound cluster label font sizes.
	FontMin float64 `koanf:"font_min"`
	FontMax float64 `koanf:"font_max"`

	// RefreshTimeoutMS bounds a single dataset fetch.
	RefreshTimeoutMS int `koanf:"refresh_timeout_ms"`

	// DefaultDepartment preselects the department facet at startup.
	// Empty means all departments.
	DefaultDepartment string `koanf:"default_department"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9090",
		ViewportWidth:    960,
		ViewportHeight:   540,
		LayoutPadding:    4,
		LayoutMargin:     16,
		LayoutMinWeight:  1,
		FontMin:          9,
		FontMax:          22,
		RefreshTimeoutMS: 10_000,
	}
}
