package models

// Violation represents a single structural expectation that did not hold.
type Violation struct {
	// Field locates the offending element within the document,
	// e.g. "paths./sync-runs.post.responses".
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckResult represents the outcome of a single contract check.
type CheckResult struct {
	ID          string `json:"id"`
	Description string `json:"description"`

	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations,omitempty"`
}

// CheckSummary represents the overall outcome of a check run.
type CheckSummary struct {
	TotalChecks int           `json:"total_checks"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	Results     []CheckResult `json:"results"`
}

// AddResult adds a check result to the summary.
func (s *CheckSummary) AddResult(result CheckResult) {
	s.TotalChecks++
	s.Results = append(s.Results, result)
	if result.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
}
