package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/okraft/skillscope/internal/domain/layout"
	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/pkg/logger"
)

// Default cluster view appearance constants.
const (
	defaultMinFont   = 9.0
	defaultMaxFont   = 22.0
	nameFontScale    = 0.28 // label font size relative to circle radius
	countLabelScale  = 0.72 // count label size relative to the name label
	countLabelOffset = 1.4  // count label baseline offset in name-font units
)

// defaultPalette is cycled when clusters outnumber its entries.
var defaultPalette = []string{
	"#4e79a7", "#f28e2b", "#76b7b2", "#e15759",
	"#59a14f", "#edc948", "#b07aa1", "#9c755f",
}

// ClusterView draws packed cluster circles as SVG with labels and a
// hover-revealed detail per circle.
//
// Colors are assigned by a fixed ordinal over the first-seen ordering of
// cluster names, so the same cluster name keeps the same color for the
// lifetime of the view regardless of how later datasets order or filter
// the clusters.
type ClusterView struct {
	palette []string

	// ordinalMu guards ordinal: one view instance serves concurrent
	// render passes, each of which may record first-seen names.
	ordinalMu sync.Mutex
	ordinal   map[string]int // cluster name -> first-seen palette ordinal

	minFont float64
	maxFont float64
	log     logger.Logger
}

// NewClusterView creates a ClusterView with configuration options.
func NewClusterView(opts ...ClusterViewOption) *ClusterView {
	v := &ClusterView{
		palette: defaultPalette,
		ordinal: map[string]int{},
		minFont: defaultMinFont,
		maxFont: defaultMaxFont,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Render joins geometry to clusters by id and writes the bubble chart
// into the cluster-map mount point. The dataset is read-only input;
// geometry must come from the same cluster list in the same pass.
func (v *ClusterView) Render(s Surface, clusters []model.Cluster, circles []layout.Circle, width, height float64) error {
	w, err := s.Mount(MountClusterMap)
	if err != nil {
		return fmt.Errorf("%w: mount %s: %v", ErrRenderFailed, MountClusterMap, err)
	}

	byID := make(map[string]model.Cluster, len(clusters))
	for _, c := range clusters {
		byID[c.ID] = c
	}

	fmt.Fprintf(w, `<svg class="cluster-map" viewBox="0 0 %.1f %.1f" role="img" aria-label="skill clusters">`+"\n", width, height)

	for _, circ := range circles {
		c, ok := byID[circ.ClusterID]
		if !ok {
			continue // geometry for a cluster that is no longer present
		}

		name := html.EscapeString(c.Name)
		detail := html.EscapeString(fmt.Sprintf("%s: %s (%d skills)", c.Name, strings.Join(c.Skills, ", "), c.Count))
		nameFont := clampFont(circ.Radius*nameFontScale, v.minFont, v.maxFont)
		countFont := nameFont * countLabelScale

		fmt.Fprintf(w, `<g class="cluster">`)
		fmt.Fprintf(w, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.85"/>`,
			circ.CenterX, circ.CenterY, circ.Radius, v.colorFor(c.Name))
		fmt.Fprintf(w, `<title>%s</title>`, detail)
		fmt.Fprintf(w, `<text x="%.2f" y="%.2f" text-anchor="middle" font-size="%.1f">%s</text>`,
			circ.CenterX, circ.CenterY, nameFont, name)
		fmt.Fprintf(w, `<text x="%.2f" y="%.2f" text-anchor="middle" font-size="%.1f" class="count">%d skills</text>`,
			circ.CenterX, circ.CenterY+nameFont*countLabelOffset, countFont, c.Count)
		fmt.Fprintf(w, `</g>`+"\n")
	}

	fmt.Fprintf(w, `</svg>`+"\n")
	return nil
}

// colorFor returns the palette entry for a cluster name, assigning the
// next ordinal on first sight and cycling the palette when names
// outnumber its entries.
func (v *ClusterView) colorFor(name string) string {
	v.ordinalMu.Lock()
	defer v.ordinalMu.Unlock()

	idx, ok := v.ordinal[name]
	if !ok {
		idx = len(v.ordinal)
		v.ordinal[name] = idx
	}
	return v.palette[idx%len(v.palette)]
}

func clampFont(size, minSize, maxSize float64) float64 {
	if size < minSize {
		return minSize
	}
	if size > maxSize {
		return maxSize
	}
	return size
}
