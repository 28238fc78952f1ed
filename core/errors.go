package core

import "fmt"

// ConstructionError reports structural misuse when building a core object,
// such as initializing a field map from a non-mapping value or writing to
// a reserved key.
type ConstructionError struct {
	Op     string // operation that failed, e.g. "fields"
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construction error in %s: %s", e.Op, e.Reason)
}

// EvaluationError reports a rule-check expression that failed to evaluate
// for reasons other than producing a false value. It is fatal to the rule
// check run that raised it.
type EvaluationError struct {
	Expr   string
	Reason string
	Err    error
}

func (e *EvaluationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("evaluation of %q failed: %s: %v", e.Expr, e.Reason, e.Err)
	}
	return fmt.Sprintf("evaluation of %q failed: %s", e.Expr, e.Reason)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
