package validation

import (
	"fmt"
	"strings"
)

// ConstraintResult is the outcome of one named check.
type ConstraintResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report is the result of validating one generated dungeon.
type Report struct {
	Passed  bool
	Results []ConstraintResult
	Errors  []string
	Warnings []string
}

// NewReport creates an empty, passing report.
func NewReport() *Report {
	return &Report{
		Passed:   true,
		Results:  []ConstraintResult{},
		Errors:   []string{},
		Warnings: []string{},
	}
}

func (r *Report) addError(name, details string) {
	r.Passed = false
	r.Errors = append(r.Errors, details)
	r.Results = append(r.Results, ConstraintResult{Name: name, Satisfied: false, Details: details})
}

func (r *Report) addWarning(name, details string) {
	r.Warnings = append(r.Warnings, details)
	r.Results = append(r.Results, ConstraintResult{Name: name, Satisfied: false, Details: details})
}

func (r *Report) addPass(name, details string) {
	r.Results = append(r.Results, ConstraintResult{Name: name, Satisfied: true, Details: details})
}

// Summary renders a human-readable report.
func Summary(r *Report) string {
	var b strings.Builder

	if r.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	b.WriteString("\n=== Checks ===\n")
	for i, res := range r.Results {
		status := "PASS"
		if !res.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, res.Name, res.Details))
	}

	if len(r.Errors) > 0 {
		b.WriteString("\n=== Errors ===\n")
		for i, err := range r.Errors {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err))
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n=== Warnings ===\n")
		for i, warn := range r.Warnings {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, warn))
		}
	}

	return b.String()
}
