package export

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/okraft/skillscope/internal/domain/layout"
	"github.com/okraft/skillscope/internal/domain/model"
)

// Bubble radius bounds for the exported chart, in printer points.
const (
	chartMinBubble = 4.0
	chartMaxBubble = 36.0
)

// ClusterChartPNG renders the packed cluster geometry as a standalone
// bubble-chart PNG. Positions come from the layout pass so the exported
// chart matches the dashboard arrangement; bubble size tracks the
// cluster count.
func ClusterChartPNG(clusters []model.Cluster, circles []layout.Circle, width, height float64) ([]byte, error) {
	if len(clusters) != len(circles) {
		return nil, fmt.Errorf("%w: %d clusters but %d circles", ErrExportFailed, len(clusters), len(circles))
	}

	p := plot.New()
	p.Title.Text = "Skill Clusters"
	p.HideAxes()

	xyzs := make(plotter.XYZs, len(circles))
	names := make([]string, len(clusters))
	for i, c := range circles {
		// Flip Y: layout uses screen coordinates, the plot uses math ones.
		xyzs[i].X = c.CenterX
		xyzs[i].Y = height - c.CenterY
		xyzs[i].Z = float64(clusters[i].Count)
		names[i] = clusters[i].Name
	}

	bubbles, err := plotter.NewBubbles(xyzs, vg.Points(chartMinBubble), vg.Points(chartMaxBubble))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	p.Add(bubbles)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    xyzsToXYs(xyzs),
		Labels: names,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	p.Add(labels)

	wt, err := p.WriterTo(vg.Points(width), vg.Points(height), "png")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

func xyzsToXYs(xyzs plotter.XYZs) plotter.XYs {
	xys := make(plotter.XYs, len(xyzs))
	for i, v := range xyzs {
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	return xys
}
