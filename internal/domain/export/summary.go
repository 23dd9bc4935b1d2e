package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/okraft/skillscope/internal/domain/model"
)

const summaryPattern = "clustering_summary_%s.json"

// clusterSummary is one cluster entry in the dataset summary document.
type clusterSummary struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Skills []string `json:"skills"`
}

// datasetSummary is the body of the JSON summary artifact. It carries
// the header metrics plus per-cluster composition, so a consumer can
// reconstruct the clustering result without parsing the CSV exports.
type datasetSummary struct {
	GeneratedAt string           `json:"generated_at"`
	Metrics     model.Metrics    `json:"metrics"`
	Clusters    []clusterSummary `json:"clusters"`
	GapCount    int              `json:"gap_count"`
}

// SummaryJSON renders the dataset summary artifact: indented JSON with
// clusters in input order and the generation timestamp in UTC.
func SummaryJSON(ds model.Dataset, t time.Time) ([]byte, error) {
	doc := datasetSummary{
		GeneratedAt: t.UTC().Format(time.RFC3339),
		Metrics:     ds.Metrics,
		Clusters:    make([]clusterSummary, len(ds.Clusters)),
		GapCount:    len(ds.Gaps),
	}
	for i, c := range ds.Clusters {
		doc.Clusters[i] = clusterSummary{Name: c.Name, Count: c.Count, Skills: c.Skills}
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode dataset summary: %w", err)
	}
	return append(content, '\n'), nil
}

// SummaryFilename names the dataset summary artifact with the given
// timestamp, mirroring the upstream analytics result naming.
func SummaryFilename(t time.Time) string {
	return fmt.Sprintf(summaryPattern, t.Format(timestampLayout))
}
