// Command snapshot renders the dashboard offline and writes every
// export artifact to a directory. Useful for generating reports without
// running the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okraft/skillscope/internal/domain/export"
	"github.com/okraft/skillscope/internal/domain/inventory"
	"github.com/okraft/skillscope/internal/domain/layout"
	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/internal/render"
	"github.com/okraft/skillscope/pkg/logger"
)

const (
	defaultWidth   = 960.0
	defaultHeight  = 540.0
	defaultTimeout = 30 * time.Second
	outputFileMode = 0o644
)

func main() {
	var (
		outDir     = flag.String("out", ".", "Output directory for artifacts")
		width      = flag.Float64("width", defaultWidth, "Viewport width in pixels")
		height     = flag.Float64("height", defaultHeight, "Viewport height in pixels")
		department = flag.String("department", "", "Restrict to a single department")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get().Named("snapshot")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := run(ctx, *outDir, *width, *height, *department); err != nil {
		log.Error(ctx, "snapshot failed", logger.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "snapshot written", logger.String("dir", *outDir))
}

func run(ctx context.Context, outDir string, width, height float64, department string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	filter := inventory.Filter{}
	if department != "" {
		filter[inventory.FacetDepartment] = department
	}

	source := inventory.Fixture()
	dataset, err := source.FetchDataset(ctx, filter)
	if err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}

	packer := layout.New()
	circles, err := packer.Pack(dataset.Clusters, width, height)
	if err != nil {
		return fmt.Errorf("pack clusters: %w", err)
	}

	sink := &dirDownloader{dir: outDir}
	now := time.Now().UTC()

	if err := sink.Download(ctx, export.GapReportFilename, "text/csv",
		[]byte(export.GapCSV(dataset.Gaps))); err != nil {
		return err
	}
	if err := sink.Download(ctx, export.ClusterStatsFilename(now), "text/csv",
		[]byte(export.ClusterCSV(dataset.Clusters))); err != nil {
		return err
	}

	summary, err := export.SummaryJSON(dataset, now)
	if err != nil {
		return fmt.Errorf("render dataset summary: %w", err)
	}
	if err := sink.Download(ctx, export.SummaryFilename(now), "application/json", summary); err != nil {
		return err
	}

	pdf, err := export.GapReportPDF(dataset.Gaps, now)
	if err != nil {
		return fmt.Errorf("render gap report PDF: %w", err)
	}
	if err := sink.Download(ctx, "skills_gap_analysis.pdf", "application/pdf", pdf); err != nil {
		return err
	}

	png, err := export.ClusterChartPNG(dataset.Clusters, circles, width, height)
	if err != nil {
		return fmt.Errorf("render cluster chart: %w", err)
	}
	if err := sink.Download(ctx, "skill_clusters.png", "image/png", png); err != nil {
		return err
	}

	html, err := renderPage(dataset, circles, width, height)
	if err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}
	return sink.Download(ctx, "dashboard.html", "text/html", html)
}

// renderPage runs the views against an in-memory surface and wraps the
// fragments into a standalone HTML document.
func renderPage(dataset model.Dataset, circles []layout.Circle, width, height float64) ([]byte, error) {
	surface := render.NewHTMLSurface()

	clusterView := render.NewClusterView()
	if err := clusterView.Render(surface, dataset.Clusters, circles, width, height); err != nil {
		return nil, err
	}
	gapView := render.NewGapTableView()
	if err := gapView.Render(surface, dataset.Gaps); err != nil {
		return nil, err
	}
	metricsView := render.NewMetricsView()
	if err := metricsView.Render(surface, dataset.Metrics); err != nil {
		return nil, err
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Skillscope snapshot</title></head>
<body>
<h1>Skillscope</h1>
<p>Skills: %s | Clusters: %s | Employees: %s | Avg proficiency: %s</p>
%s
%s
</body>
</html>
`,
		surface.Slot(render.SlotTotalSkills),
		surface.Slot(render.SlotTotalClusters),
		surface.Slot(render.SlotTotalEmployees),
		surface.Slot(render.SlotAvgProficiency),
		surface.Fragment(render.MountClusterMap),
		surface.Fragment(render.MountGapTable),
	)
	return []byte(page), nil
}

// dirDownloader delivers artifacts as files in a directory.
type dirDownloader struct {
	dir string
}

func (d *dirDownloader) Download(ctx context.Context, filename, contentType string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrExportFailed, filename, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, filename), content, outputFileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", export.ErrExportFailed, filename, err)
	}
	return nil
}
