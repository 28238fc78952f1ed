package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// CheckFunc is a registered rule-check callable. It is invoked with the
// object under check plus whatever arguments were handed to the run, and
// executes purely for side effects.
type CheckFunc func(obj *Object, args ...any)

// Assertion is an immutable rule-check record: a boolean expression with
// its failure message, severity, and the source location captured at
// registration time. Bindings is the variable scope the expression is
// evaluated against; it is stored by reference, so mutations made after
// registration are visible at evaluation time.
type Assertion struct {
	Expr     string
	FailMsg  string
	Severity Severity
	File     string
	Line     int
	Function string
	Bindings map[string]any
}

// CaptureAssertion builds an assertion record, recording the source file,
// line and enclosing function of the caller. skip counts stack frames
// above CaptureAssertion itself, as in runtime.Caller.
func CaptureAssertion(stmt, failMsg string, severity Severity, bindings map[string]any, skip int) Assertion {
	if !severity.Valid() {
		severity = SeverityError
	}
	if failMsg == "" {
		failMsg = "FAILED"
	}
	file, line, function := callerLocation(skip + 1)
	return Assertion{
		Expr:     stmt,
		FailMsg:  failMsg,
		Severity: severity,
		File:     file,
		Line:     line,
		Function: function,
		Bindings: bindings,
	}
}

func callerLocation(skip int) (string, int, string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0, "unknown"
	}
	function := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		function = f.Name()
		if idx := strings.LastIndex(function, "."); idx >= 0 {
			function = function[idx+1:]
		}
	}
	return filepath.Base(file), line, function
}
