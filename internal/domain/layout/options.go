// Package layout computes render-ready circle geometry for skill clusters.
package layout

// Option applies a configuration option to the Packer.
type Option func(*Packer)

// WithPadding sets the minimum gap kept between neighboring circles
// during placement. The gap scales with the rest of the arrangement
// when the layout is fitted to the target rectangle.
func WithPadding(padding float64) Option {
	return func(p *Packer) {
		if padding >= 0 {
			p.padding = padding
		}
	}
}

// WithMargin sets the outer margin left between the arrangement and the
// edges of the target rectangle.
func WithMargin(margin float64) Option {
	return func(p *Packer) {
		if margin >= 0 {
			p.margin = margin
		}
	}
}

// WithMinWeight sets the sizing floor applied to cluster weights so that
// zero-count clusters still receive a visible, labellable circle.
func WithMinWeight(w float64) Option {
	return func(p *Packer) {
		if w > 0 {
			p.minWeight = w
		}
	}
}
