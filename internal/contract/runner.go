package contract

import (
	"github.com/orbit-sync/orbitspec/internal/models"
	"github.com/orbit-sync/orbitspec/internal/specdoc"
)

// EventType represents the type of check event.
type EventType int

const (
	// EventStarting indicates a check is about to run
	EventStarting EventType = iota
	// EventCompleted indicates a check has completed
	EventCompleted
)

// CheckEvent represents an event during check execution.
type CheckEvent struct {
	Type   EventType
	Check  Check
	Result *models.CheckResult // nil for Starting events
	Index  int                 // current check index (0-based)
	Total  int                 // total number of checks
}

// OnCheckEvent is a callback function for check events.
type OnCheckEvent func(event CheckEvent)

// Runner executes contract checks against a loaded document.
type Runner struct {
	doc *specdoc.Document
}

// NewRunner creates a runner bound to a loaded document. The document is
// only ever read; the same runner may be reused for any number of runs.
func NewRunner(doc *specdoc.Document) *Runner {
	return &Runner{doc: doc}
}

// RunCheck runs a single check and reports its outcome. A failing check
// never affects its siblings.
func (r *Runner) RunCheck(c Check) models.CheckResult {
	violations := c.Run(r.doc)
	return models.CheckResult{
		ID:          c.ID,
		Description: c.Description,
		Passed:      len(violations) == 0,
		Violations:  violations,
	}
}

// RunAll runs the given checks in order with optional live event reporting.
func (r *Runner) RunAll(checks []Check, onEvent OnCheckEvent) models.CheckSummary {
	summary := models.CheckSummary{
		Results: make([]models.CheckResult, 0, len(checks)),
	}
	total := len(checks)

	for i, c := range checks {
		if onEvent != nil {
			onEvent(CheckEvent{Type: EventStarting, Check: c, Index: i, Total: total})
		}

		result := r.RunCheck(c)
		summary.AddResult(result)

		if onEvent != nil {
			onEvent(CheckEvent{Type: EventCompleted, Check: c, Result: &result, Index: i, Total: total})
		}
	}

	return summary
}
