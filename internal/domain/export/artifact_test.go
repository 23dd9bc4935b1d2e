package export_test

import (
	"testing"
	"time"

	"github.com/okraft/skillscope/internal/domain/export"
	"github.com/okraft/skillscope/internal/domain/layout"
	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapReportPDF(t *testing.T) {
	gaps := []model.GapRecord{
		{Skill: "Blockchain", Required: 5, Current: 0, Gap: 5, Priority: model.PriorityHigh},
		{Skill: "Rust", Required: 4, Current: 1, Gap: 3, Priority: model.Priority("Urgent")},
	}

	content, err := export.GapReportPDF(gaps, time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF-", string(content[:5]))
}

func TestGapReportPDF_Empty(t *testing.T) {
	content, err := export.GapReportPDF(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(content[:5]))
}

func TestClusterChartPNG(t *testing.T) {
	clusters := []model.Cluster{
		{ID: "cluster-1", Name: "Programming Languages", Count: 5},
		{ID: "cluster-2", Name: "Leadership", Count: 2},
	}
	circles := []layout.Circle{
		{ClusterID: "cluster-1", CenterX: 300, CenterY: 270, Radius: 120},
		{ClusterID: "cluster-2", CenterX: 600, CenterY: 270, Radius: 80},
	}

	content, err := export.ClusterChartPNG(clusters, circles, 960, 540)
	require.NoError(t, err)
	require.True(t, len(content) > 8)
	assert.Equal(t, []byte("PNG"), content[1:4])
}

func TestClusterChartPNG_Mismatch(t *testing.T) {
	clusters := []model.Cluster{{ID: "cluster-1", Name: "Leadership", Count: 2}}

	_, err := export.ClusterChartPNG(clusters, nil, 960, 540)
	require.ErrorIs(t, err, export.ErrExportFailed)
}
