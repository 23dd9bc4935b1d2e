package render

import (
	"fmt"
	"strconv"

	"github.com/okraft/skillscope/internal/domain/model"
)

// MetricsView writes the four summary values into their display slots.
type MetricsView struct{}

// NewMetricsView creates a MetricsView.
func NewMetricsView() *MetricsView {
	return &MetricsView{}
}

// Render fills the summary slots from the dataset's metrics.
func (v *MetricsView) Render(s Surface, m model.Metrics) error {
	slots := []struct {
		name  string
		value string
	}{
		{SlotTotalSkills, strconv.Itoa(m.TotalSkills)},
		{SlotTotalClusters, strconv.Itoa(m.TotalClusters)},
		{SlotTotalEmployees, strconv.Itoa(m.TotalEmployees)},
		{SlotAvgProficiency, fmt.Sprintf("%.1f", m.AvgProficiency)},
	}

	for _, slot := range slots {
		if err := s.SetSlot(slot.name, slot.value); err != nil {
			return fmt.Errorf("%w: slot %s: %v", ErrRenderFailed, slot.name, err)
		}
	}
	return nil
}
