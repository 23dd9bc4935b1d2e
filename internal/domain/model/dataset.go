// Package model contains domain models passed between layers.
package model

// Priority classifies how urgently a skill gap needs attention.
// Values outside the known set are tolerated and rendered neutrally.
type Priority string

// Known priority values for gap records.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Known reports whether p is one of the recognized priority values.
func (p Priority) Known() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Metrics holds the scalar summary values shown in the dashboard header.
// Recomputed or replaced wholesale on every refresh, never patched.
type Metrics struct {
	TotalSkills    int     `json:"total_skills"`
	TotalClusters  int     `json:"total_clusters"`
	TotalEmployees int     `json:"total_employees"`
	AvgProficiency float64 `json:"avg_proficiency"`
}

// Cluster is a named grouping of related skills with a sizing weight.
// Count should equal len(Skills) in well-formed input, but consumers
// always size by Count and never re-derive it from the skill list.
type Cluster struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// GapRecord describes a skill where required coverage exceeds current
// coverage. Gap is authoritative input: renderers display it as supplied
// even when it disagrees with Required-Current, so inconsistent upstream
// data is surfaced rather than silently corrected.
type GapRecord struct {
	Skill    string   `json:"skill"`
	Required int      `json:"required"`
	Current  int      `json:"current"`
	Gap      int      `json:"gap"`
	Priority Priority `json:"priority"`
}

// Dataset is the aggregate root held by the dataset store. It is built
// wholesale by the inventory source and replaced, never mutated in place.
type Dataset struct {
	Metrics  Metrics     `json:"metrics"`
	Clusters []Cluster   `json:"clusters"`
	Gaps     []GapRecord `json:"gaps"`
}
