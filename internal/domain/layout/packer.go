// Package layout computes render-ready circle geometry for skill clusters.
//
// The packer turns a weighted cluster list into one circle per cluster,
// sized so that circle area is proportional to the cluster count and
// arranged so that circles never overlap. The whole arrangement is scaled
// to fit the target rectangle and centered inside it, leaving a fixed
// outer margin. Placement uses no randomness: identical inputs always
// produce identical geometry.
package layout

import (
	"fmt"
	"math"

	"github.com/okraft/skillscope/internal/domain/model"
)

// Default packer configuration constants.
const (
	defaultPadding   = 4.0
	defaultMargin    = 16.0
	defaultMinWeight = 1.0

	// referenceRadius is the radius the heaviest cluster is normalized to
	// before placement. Padding is expressed in the same reference units.
	referenceRadius = 100.0

	// spiralProbeStep is the angular step between candidate positions.
	spiralProbeStep = 0.1
)

// Circle is the render-ready geometry for a single cluster. It is derived
// fresh on every layout pass and never cached across viewport changes.
type Circle struct {
	ClusterID string
	CenterX   float64
	CenterY   float64
	Radius    float64
}

// Packer computes circle-packing layouts for weighted cluster lists.
type Packer struct {
	padding   float64
	margin    float64
	minWeight float64
}

// New creates a Packer with configuration options applied over defaults.
func New(opts ...Option) *Packer {
	p := &Packer{
		padding:   defaultPadding,
		margin:    defaultMargin,
		minWeight: defaultMinWeight,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Pack lays out one circle per cluster inside a width x height rectangle.
//
// Guarantees:
//   - no two circles overlap,
//   - every circle lies inside the rectangle minus the outer margin,
//   - radius is monotonically non-decreasing in the cluster count,
//   - zero-count clusters still get a strictly positive radius,
//   - an empty cluster list yields an empty geometry list without error.
//
// A non-positive width or height fails with ErrInvalidLayoutArea.
func (p *Packer) Pack(clusters []model.Cluster, width, height float64) ([]Circle, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidLayoutArea, width, height)
	}

	availW := width - 2*p.margin
	availH := height - 2*p.margin
	if availW <= 0 || availH <= 0 {
		return nil, fmt.Errorf("%w: margin %g leaves no drawable area in %gx%g",
			ErrInvalidLayoutArea, p.margin, width, height)
	}

	if len(clusters) == 0 {
		return []Circle{}, nil
	}

	// Area proportional to weight: radius grows with the square root of
	// the count, floored so empty clusters remain visible and labellable.
	radii := make([]float64, len(clusters))
	maxR := 0.0
	for i, c := range clusters {
		w := float64(c.Count)
		if w < p.minWeight {
			w = p.minWeight
		}
		radii[i] = math.Sqrt(w)
		if radii[i] > maxR {
			maxR = radii[i]
		}
	}

	// Normalize so the heaviest cluster has the reference radius. The
	// padding option is interpreted in the same reference units, so the
	// visual gap scales together with the arrangement.
	norm := referenceRadius / maxR
	for i := range radii {
		radii[i] *= norm
	}

	xs := make([]float64, len(clusters))
	ys := make([]float64, len(clusters))
	for i := range clusters {
		if i == 0 {
			continue // first circle anchors the arrangement at the origin
		}
		xs[i], ys[i] = p.place(radii[i], xs[:i], ys[:i], radii[:i])
	}

	// Fit the arrangement's bounding box into the drawable area and
	// center it within the full rectangle.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range clusters {
		minX = math.Min(minX, xs[i]-radii[i])
		maxX = math.Max(maxX, xs[i]+radii[i])
		minY = math.Min(minY, ys[i]-radii[i])
		maxY = math.Max(maxY, ys[i]+radii[i])
	}

	scale := math.Min(availW/(maxX-minX), availH/(maxY-minY))
	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2

	out := make([]Circle, len(clusters))
	for i, c := range clusters {
		out[i] = Circle{
			ClusterID: c.ID,
			CenterX:   width/2 + (xs[i]-centerX)*scale,
			CenterY:   height/2 + (ys[i]-centerY)*scale,
			Radius:    radii[i] * scale,
		}
	}

	return out, nil
}

// place finds the first collision-free position for a circle of radius r
// along an outward spiral from the origin. Probing in a fixed angular
// order keeps the layout reproducible for a fixed input ordering.
func (p *Packer) place(r float64, xs, ys, radii []float64) (float64, float64) {
	pitch := (r + p.padding) / (2 * math.Pi)

	for theta := spiralProbeStep; ; theta += spiralProbeStep {
		rho := pitch * theta
		x := rho * math.Cos(theta)
		y := rho * math.Sin(theta)

		if !p.collides(x, y, r, xs, ys, radii) {
			return x, y
		}
	}
}

// collides reports whether a circle at (x, y) with radius r would come
// closer than the padding gap to any already-placed circle.
func (p *Packer) collides(x, y, r float64, xs, ys, radii []float64) bool {
	for j := range xs {
		dx := x - xs[j]
		dy := y - ys[j]
		minDist := r + radii[j] + p.padding
		if dx*dx+dy*dy < minDist*minDist {
			return true
		}
	}
	return false
}
