package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okraft/skillscope/internal/domain/export"
	"github.com/okraft/skillscope/pkg/metrics"
)

// ExportHandler serves downloadable report artifacts.
type ExportHandler struct {
	deps   Dependencies
	width  float64
	height float64
}

// NewExportHandler creates a new export handler. The viewport size is
// used when rendering the cluster chart image.
func NewExportHandler(deps Dependencies, width, height float64) *ExportHandler {
	return &ExportHandler{deps: deps, width: width, height: height}
}

// HandleExport handles GET /export/{artifact} requests. Supported
// artifacts are gaps.csv, clusters.csv, summary.json, gaps.pdf and
// clusters.png.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, ErrMethodNotAllowed)
		return
	}

	artifact := strings.TrimPrefix(r.URL.Path, "/export/")

	var (
		filename    string
		contentType string
		content     []byte
		err         error
	)
	switch artifact {
	case "gaps.csv":
		filename, content = h.deps.ExportGapsCSV(r.Context())
		contentType = "text/csv; charset=utf-8"
	case "clusters.csv":
		filename, content = h.deps.ExportClustersCSV(r.Context())
		contentType = "text/csv; charset=utf-8"
	case "summary.json":
		filename, content, err = h.deps.ExportSummaryJSON(r.Context())
		contentType = "application/json; charset=utf-8"
	case "gaps.pdf":
		filename, content, err = h.deps.ExportGapsPDF(r.Context())
		contentType = "application/pdf"
	case "clusters.png":
		filename, content, err = h.deps.ExportClusterChart(r.Context(), h.width, h.height)
		contentType = "image/png"
	default:
		writeError(w, http.StatusNotFound, codeNotFound, ErrUnknownExport)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeExportFailed,
			errors.Join(export.ErrExportFailed, err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(content); err != nil {
		// Delivery failed mid-stream; nothing more can reach the client.
		metrics.RecordExportError(formatOf(artifact))
	}
}

func formatOf(artifact string) string {
	if i := strings.LastIndexByte(artifact, '.'); i >= 0 {
		return artifact[i+1:]
	}
	return "unknown"
}
