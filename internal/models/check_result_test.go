package models

import "testing"

func TestAddResult(t *testing.T) {
	var s CheckSummary

	s.AddResult(CheckResult{ID: "a", Passed: true})
	s.AddResult(CheckResult{ID: "b", Passed: false, Violations: []Violation{
		{Field: "paths", Message: "missing path templates: /health"},
	}})
	s.AddResult(CheckResult{ID: "c", Passed: true})

	if s.TotalChecks != 3 {
		t.Errorf("Expected 3 total checks, got %d", s.TotalChecks)
	}
	if s.Passed != 2 {
		t.Errorf("Expected 2 passed, got %d", s.Passed)
	}
	if s.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", s.Failed)
	}
	if len(s.Results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(s.Results))
	}
	if s.Results[1].Violations[0].Field != "paths" {
		t.Errorf("Unexpected violation: %+v", s.Results[1].Violations[0])
	}
}
