package erc

import (
	"fmt"

	"ercheck/core"
)

// Violation records one failed assertion. Violations are reported, never
// raised: a run enumerates all of them.
type Violation struct {
	Expr     string
	FailMsg  string
	Severity core.Severity
	File     string
	Line     int
	Function string
	ObjectID string
	Kind     string
}

// String renders the one-line report form.
func (v Violation) String() string {
	return fmt.Sprintf("%s %s in %s:%d:%s.", v.Expr, v.FailMsg, v.File, v.Line, v.Function)
}

// Report aggregates the outcome of one rule-check run on one object.
type Report struct {
	RunID      string
	ObjectID   string
	Kind       string
	Functions  int // check functions executed
	Assertions int // assertions evaluated
	Violations []Violation
}

// HasErrors reports whether any violation carries error severity.
func (r *Report) HasErrors() bool {
	for _, v := range r.Violations {
		if v.Severity == core.SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any violation carries warning severity.
func (r *Report) HasWarnings() bool {
	for _, v := range r.Violations {
		if v.Severity == core.SeverityWarning {
			return true
		}
	}
	return false
}
