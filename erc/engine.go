package erc

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ercheck/core"
	"ercheck/expr"
	"ercheck/metrics"
)

// Engine runs registered checks against objects and reports violations
// through a leveled logging sink.
type Engine struct {
	registry *Registry
	sugar    *zap.SugaredLogger
}

// NewEngine creates an engine over the given registry. A nil logger
// silences reporting (the returned Report still carries every violation).
func NewEngine(registry *Registry, sugar *zap.SugaredLogger) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return &Engine{registry: registry, sugar: sugar}
}

// Registry returns the engine's kind-scoped registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Run executes the full rule check for one object in two ordered phases.
//
// Phase one invokes check functions with (obj, args...): first the
// kind-scoped lists walking the kind's ancestry, then the instance's own
// list. Functions run for side effects and may mutate state that later
// assertions read, so phase order is significant.
//
// Phase two evaluates assertions in the same kind-then-instance order.
// A false result produces a Violation, logged at the record's severity
// and collected into the returned report; evaluation continues. An
// expression that fails to evaluate (parse error, undefined name) aborts
// the run with an EvaluationError.
func (e *Engine) Run(obj *core.Object, args ...any) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:    uuid.NewString(),
		ObjectID: obj.ID(),
		Kind:     obj.Kind(),
	}

	for _, fn := range e.registry.kindFunctions(obj.Kind()) {
		fn(obj, args...)
		report.Functions++
	}
	for _, fn := range obj.ERCFunctions() {
		fn(obj, args...)
		report.Functions++
	}
	if report.Functions > 0 {
		metrics.ChecksExecuted.WithLabelValues("function").Add(float64(report.Functions))
	}

	for _, record := range e.registry.kindAssertions(obj.Kind()) {
		if err := e.evalAssertion(obj, record, report); err != nil {
			return nil, err
		}
	}
	for _, record := range obj.ERCAssertions() {
		if err := e.evalAssertion(obj, record, report); err != nil {
			return nil, err
		}
	}
	if report.Assertions > 0 {
		metrics.ChecksExecuted.WithLabelValues("assertion").Add(float64(report.Assertions))
	}

	metrics.RunsCompleted.Inc()
	metrics.RunDuration.Observe(time.Since(start).Seconds())
	return report, nil
}

func (e *Engine) evalAssertion(obj *core.Object, record core.Assertion, report *Report) error {
	report.Assertions++

	compiled, err := expr.Compile(record.Expr)
	if err != nil {
		return &core.EvaluationError{Expr: record.Expr, Reason: "parse error", Err: err}
	}

	scope := expr.Chain(expr.MapScope(record.Bindings), obj)
	ok, err := compiled.EvalBool(scope)
	if err != nil {
		return &core.EvaluationError{Expr: record.Expr, Reason: "evaluation error", Err: err}
	}
	if ok {
		return nil
	}

	violation := Violation{
		Expr:     record.Expr,
		FailMsg:  record.FailMsg,
		Severity: record.Severity,
		File:     record.File,
		Line:     record.Line,
		Function: record.Function,
		ObjectID: obj.ID(),
		Kind:     obj.Kind(),
	}
	report.Violations = append(report.Violations, violation)
	e.reportViolation(violation)
	metrics.ViolationsReported.WithLabelValues(string(violation.Severity)).Inc()
	return nil
}

func (e *Engine) reportViolation(v Violation) {
	if v.Severity.ZapLevel() == zapcore.WarnLevel {
		e.sugar.Warn(v.String())
		return
	}
	e.sugar.Error(v.String())
}
