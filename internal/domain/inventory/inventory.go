// Package inventory aggregates raw skill records into dashboard datasets.
//
// It plays the role of the external analytics collaborator: the rest of
// the system only sees FetchDataset and the resulting dataset shape, not
// how the records were produced or stored.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/okraft/skillscope/internal/domain/model"
)

// Filter keys recognized by the inventory. The facet set is open:
// unrecognized keys are carried opaquely and simply have no effect here.
const (
	FacetDepartment = "department"
)

// Proficiency levels as they appear in raw records.
const (
	proficiencyBeginner     = "BEGINNER"
	proficiencyIntermediate = "INTERMEDIATE"
	proficiencyAdvanced     = "ADVANCED"
	proficiencyExpert       = "EXPERT"

	defaultProficiencyScore = 2 // unknown levels count as intermediate
)

// Gap priority thresholds on the gap/required ratio.
const (
	highPriorityRatio   = 0.6
	mediumPriorityRatio = 0.3
)

// Filter is the open facet set passed with a refresh request.
type Filter map[string]string

// Department returns the department facet, trimmed, or "" when absent.
func (f Filter) Department() string {
	return strings.TrimSpace(f[FacetDepartment])
}

// Record is one raw skill inventory row as produced upstream.
type Record struct {
	EmployeeID      string
	Skill           string
	Department      string
	Proficiency     string
	YearsExperience int
}

// Category groups related skills under a cluster name.
type Category struct {
	Name   string
	Skills []string
}

// Inventory holds raw records plus the coverage requirements and skill
// taxonomy used to derive clusters and gaps.
type Inventory struct {
	records      []Record
	categories   []Category
	requirements map[string]int // normalized skill -> required employee count
}

// New creates an Inventory with configuration options.
func New(opts ...Option) *Inventory {
	inv := &Inventory{
		requirements: map[string]int{},
	}

	for _, opt := range opts {
		opt(inv)
	}

	return inv
}

// FetchDataset builds a complete dataset for the given filter. The whole
// dataset is derived in one pass; callers replace their copy wholesale.
//
// Derivation mirrors the upstream ETL that the dashboard was built
// against: skill names are trimmed and upper-cased, proficiency levels
// map to a 1-4 score with unknown levels treated as intermediate,
// records missing an employee id or skill are dropped, and duplicate
// (employee, skill) pairs are collapsed to the first occurrence.
func (inv *Inventory) FetchDataset(ctx context.Context, f Filter) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	department := f.Department()

	type skillAgg struct {
		employees int
		profSum   int
	}
	bySkill := map[string]*skillAgg{}
	seen := map[string]bool{}      // employee|skill pairs
	employees := map[string]bool{} // distinct employee ids

	for _, rec := range inv.records {
		emp := strings.TrimSpace(rec.EmployeeID)
		skill := normalizeSkill(rec.Skill)
		if emp == "" || skill == "" {
			continue
		}
		if department != "" && !strings.EqualFold(strings.TrimSpace(rec.Department), department) {
			continue
		}

		key := emp + "|" + skill
		if seen[key] {
			continue
		}
		seen[key] = true
		employees[emp] = true

		agg := bySkill[skill]
		if agg == nil {
			agg = &skillAgg{}
			bySkill[skill] = agg
		}
		agg.employees++
		agg.profSum += proficiencyScore(rec.Proficiency)
	}

	skills := make([]string, 0, len(bySkill))
	for s := range bySkill {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	counts := make(map[string]int, len(bySkill))
	for s, agg := range bySkill {
		counts[s] = agg.employees
	}

	clusters := inv.buildClusters(skills)
	gaps := inv.buildGaps(counts)

	profSum, profRecords := 0, 0
	for _, agg := range bySkill {
		profSum += agg.profSum
		profRecords += agg.employees
	}
	avgProficiency := 0.0
	if profRecords > 0 {
		avgProficiency = float64(profSum) / float64(profRecords)
	}

	return model.Dataset{
		Metrics: model.Metrics{
			TotalSkills:    len(skills),
			TotalClusters:  len(clusters),
			TotalEmployees: len(employees),
			AvgProficiency: avgProficiency,
		},
		Clusters: clusters,
		Gaps:     gaps,
	}, nil
}

// buildClusters groups the observed skills by category. Skills outside
// the taxonomy fall into a trailing "Other" cluster. Output order is an
// explicit transform: heaviest cluster first, ties broken by name.
func (inv *Inventory) buildClusters(skills []string) []model.Cluster {
	assigned := map[string]string{} // skill -> category name
	for _, cat := range inv.categories {
		for _, s := range cat.Skills {
			assigned[normalizeSkill(s)] = cat.Name
		}
	}

	grouped := map[string][]string{}
	for _, s := range skills {
		name := assigned[s]
		if name == "" {
			name = "Other"
		}
		grouped[name] = append(grouped[name], s)
	}

	clusters := make([]model.Cluster, 0, len(grouped))
	for name, members := range grouped {
		clusters = append(clusters, model.Cluster{
			Name:   name,
			Skills: members,
			Count:  len(members),
		})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		return clusters[i].Name < clusters[j].Name
	})
	for i := range clusters {
		clusters[i].ID = fmt.Sprintf("cluster-%d", i+1)
	}
	return clusters
}

// buildGaps compares required coverage against observed coverage. Only
// positive gaps are reported. Output order is an explicit transform:
// widest gap first, ties broken by skill name.
func (inv *Inventory) buildGaps(current map[string]int) []model.GapRecord {
	gaps := make([]model.GapRecord, 0, len(inv.requirements))
	for skill, required := range inv.requirements {
		cur := current[skill]
		gap := required - cur
		if gap <= 0 {
			continue
		}
		gaps = append(gaps, model.GapRecord{
			Skill:    skill,
			Required: required,
			Current:  cur,
			Gap:      gap,
			Priority: gapPriority(gap, required),
		})
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return gaps[i].Skill < gaps[j].Skill
	})
	return gaps
}

// normalizeSkill applies the upstream cleaning rules to a skill name.
func normalizeSkill(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// proficiencyScore converts a raw proficiency level to its numeric score.
func proficiencyScore(level string) int {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case proficiencyBeginner:
		return 1
	case proficiencyIntermediate:
		return 2
	case proficiencyAdvanced:
		return 3
	case proficiencyExpert:
		return 4
	default:
		return defaultProficiencyScore
	}
}

// gapPriority classifies a gap by how much of the requirement is unmet.
func gapPriority(gap, required int) model.Priority {
	ratio := float64(gap) / float64(required)
	switch {
	case ratio >= highPriorityRatio:
		return model.PriorityHigh
	case ratio >= mediumPriorityRatio:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
