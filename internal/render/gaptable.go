package render

import (
	"context"
	"fmt"
	"html"

	"github.com/okraft/skillscope/internal/domain/model"
	"github.com/okraft/skillscope/pkg/logger"
	"github.com/okraft/skillscope/pkg/metrics"
)

// ActionIntent is the typed event emitted when a gap row's action
// affordance is triggered. The view never acts on it; the host decides.
type ActionIntent struct {
	Skill string `json:"skill"`
}

// ActionHandler receives action intents from the host boundary.
type ActionHandler func(ctx context.Context, intent ActionIntent)

// GapTableView renders gap records as an HTML table. Rows follow the
// input sequence order verbatim; any sorting is a separate transform
// applied before rendering, never inside the view.
type GapTableView struct {
	log logger.Logger
}

// NewGapTableView creates a GapTableView with configuration options.
func NewGapTableView(opts ...GapTableOption) *GapTableView {
	v := &GapTableView{}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Render writes the gap table into the gap-table mount point. A record
// with an unrecognized priority renders with neutral styling and is
// logged as a data-quality observation; it never fails the pass.
func (v *GapTableView) Render(s Surface, gaps []model.GapRecord) error {
	w, err := s.Mount(MountGapTable)
	if err != nil {
		return fmt.Errorf("%w: mount %s: %v", ErrRenderFailed, MountGapTable, err)
	}

	fmt.Fprint(w, `<table class="gap-table">`+"\n")
	fmt.Fprint(w, `<thead><tr><th>Skill</th><th>Required</th><th>Current</th><th>Gap</th><th>Priority</th><th>Action</th></tr></thead>`+"\n")
	fmt.Fprint(w, `<tbody>`+"\n")

	for _, g := range gaps {
		if !g.Priority.Known() {
			metrics.RecordMalformedPriority()
			if v.log != nil {
				v.log.Warn(context.Background(), "unrecognized gap priority; rendering neutral",
					logger.String("skill", g.Skill),
					logger.String("priority", string(g.Priority)),
				)
			}
		}

		skill := html.EscapeString(g.Skill)
		fmt.Fprintf(w, `<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td>`,
			skill, g.Required, g.Current, g.Gap)
		fmt.Fprintf(w, `<td><span class="priority %s">%s</span></td>`,
			priorityClass(g.Priority), html.EscapeString(string(g.Priority)))
		fmt.Fprintf(w, `<td><button type="button" class="action-btn" data-skill="%s">Request training</button></td></tr>`+"\n",
			skill)
	}

	fmt.Fprint(w, `</tbody>`+"\n"+`</table>`+"\n")
	return nil
}

// priorityClass maps a priority to its style class; unrecognized values
// degrade to the neutral class.
func priorityClass(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "priority-high"
	case model.PriorityMedium:
		return "priority-medium"
	case model.PriorityLow:
		return "priority-low"
	default:
		return "priority-neutral"
	}
}
