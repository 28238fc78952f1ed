// Package erc implements the electrical-rule-check engine: kind-scoped and
// instance-scoped check registration plus a single evaluation entry point
// with severity-classified reporting.
package erc

import (
	"fmt"
	"sync"

	"ercheck/core"
)

// kindEntry holds the shared check lists for one object kind.
type kindEntry struct {
	parent     string
	funcs      []core.CheckFunc
	assertions []core.Assertion
}

// Registry is the kind-scoped registration tier. Checks added for a kind
// apply to every object of that kind, and to objects of kinds that
// declare it as an ancestor. Lists are append-only; insertion order is
// evaluation order.
//
// The mutex guards registration only. Evaluating while another goroutine
// registers into the same kind is not supported.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*kindEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*kindEntry)}
}

// DefineKind declares a kind, optionally deriving from a parent kind so
// the parent's checks apply to it. Redefining a kind with a different
// parent is rejected.
func (r *Registry) DefineKind(kind, parent string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.kinds[kind]; ok {
		if entry.parent != parent {
			return fmt.Errorf("kind %s already defined with parent %q", kind, entry.parent)
		}
		return nil
	}
	r.kinds[kind] = &kindEntry{parent: parent}
	return nil
}

// AddFunction appends a check function to the kind's shared list.
func (r *Registry) AddFunction(kind string, fn core.CheckFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.ensureKind(kind)
	entry.funcs = append(entry.funcs, fn)
}

// AddAssertion appends a check assertion to the kind's shared list,
// capturing the caller's source location. bindings may be nil; the
// expression then resolves identifiers against the object under check.
func (r *Registry) AddAssertion(kind, stmt, failMsg string, severity core.Severity, bindings map[string]any) {
	record := core.CaptureAssertion(stmt, failMsg, severity, bindings, 2)
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.ensureKind(kind)
	entry.assertions = append(entry.assertions, record)
}

// AddAssertionFromSource appends an assertion whose origin is a rule
// file rather than a Go call site: the file name and rule name stand in
// for the captured source location.
func (r *Registry) AddAssertionFromSource(kind, stmt, failMsg string, severity core.Severity, source, ruleName string) {
	if !severity.Valid() {
		severity = core.SeverityError
	}
	record := core.Assertion{
		Expr:     stmt,
		FailMsg:  failMsg,
		Severity: severity,
		File:     source,
		Function: ruleName,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.ensureKind(kind)
	entry.assertions = append(entry.assertions, record)
}

func (r *Registry) ensureKind(kind string) *kindEntry {
	entry, ok := r.kinds[kind]
	if !ok {
		entry = &kindEntry{}
		r.kinds[kind] = entry
	}
	return entry
}

// chain returns the ancestry for kind, root ancestor first, ending with
// kind itself. Unknown kinds yield just themselves so instance-scoped
// checks still run.
func (r *Registry) chain(kind string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lineage []string
	seen := make(map[string]bool)
	for current := kind; current != "" && !seen[current]; {
		seen[current] = true
		lineage = append([]string{current}, lineage...)
		entry, ok := r.kinds[current]
		if !ok {
			break
		}
		current = entry.parent
	}
	return lineage
}

// kindFunctions returns the shared functions for the kind's ancestry in
// evaluation order.
func (r *Registry) kindFunctions(kind string) []core.CheckFunc {
	lineage := r.chain(kind)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []core.CheckFunc
	for _, k := range lineage {
		if entry, ok := r.kinds[k]; ok {
			out = append(out, entry.funcs...)
		}
	}
	return out
}

// kindAssertions returns the shared assertions for the kind's ancestry in
// evaluation order.
func (r *Registry) kindAssertions(kind string) []core.Assertion {
	lineage := r.chain(kind)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []core.Assertion
	for _, k := range lineage {
		if entry, ok := r.kinds[k]; ok {
			out = append(out, entry.assertions...)
		}
	}
	return out
}
