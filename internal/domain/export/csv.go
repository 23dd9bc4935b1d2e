// Package export serializes dashboard data into downloadable artifacts.
package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okraft/skillscope/internal/domain/model"
)

// Artifact filenames offered to the host environment.
const (
	GapReportFilename = "skills_gap_analysis.csv"

	clusterStatsPattern = "cluster_stats_%s.csv"
	timestampLayout     = "20060102_150405"
)

// Downloader hands a finished artifact to the host environment for
// saving. Implementations must report refusal instead of swallowing it.
type Downloader interface {
	Download(ctx context.Context, filename, contentType string, content []byte) error
}

// ToCSV joins rows into CSV text: one header line of field names followed
// by one line per row in input order, with a trailing newline.
//
// Fields are joined by a bare comma. Embedded commas or newlines in field
// values are NOT quoted or escaped; the dashboard's field set (skill
// names, counts, priorities) never contains them, and callers feeding
// arbitrary values accept the mangled output. This limitation is
// deliberate and documented rather than papered over.
func ToCSV(fields []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// GapCSV renders gap records as the downloadable gap-analysis artifact.
// Rows keep their input order and the Gap column shows the supplied value
// as-is, even when it disagrees with Required-Current.
func GapCSV(gaps []model.GapRecord) string {
	fields := []string{"Skill", "Required", "Current", "Gap", "Priority"}
	rows := make([][]string, len(gaps))
	for i, g := range gaps {
		rows[i] = []string{
			g.Skill,
			strconv.Itoa(g.Required),
			strconv.Itoa(g.Current),
			strconv.Itoa(g.Gap),
			string(g.Priority),
		}
	}
	return ToCSV(fields, rows)
}

// ClusterCSV renders cluster statistics as CSV in input order.
func ClusterCSV(clusters []model.Cluster) string {
	fields := []string{"Cluster", "Skills", "Count"}
	rows := make([][]string, len(clusters))
	for i, c := range clusters {
		rows[i] = []string{
			c.Name,
			strings.Join(c.Skills, "; "),
			strconv.Itoa(c.Count),
		}
	}
	return ToCSV(fields, rows)
}

// ClusterStatsFilename names the cluster statistics artifact with the
// given timestamp, mirroring the upstream analytics result naming.
func ClusterStatsFilename(t time.Time) string {
	return fmt.Sprintf(clusterStatsPattern, t.Format(timestampLayout))
}
