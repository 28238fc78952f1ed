package expr

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// compiledCacheSize bounds the shared compile cache. Rule sets reuse a
// small number of distinct expressions across many objects, so a modest
// cache eliminates nearly all repeat parsing.
const compiledCacheSize = 256

var compiledCache, _ = lru.New[string, *Expr](compiledCacheSize)

// Expr is a compiled assertion expression, safe for repeated evaluation.
type Expr struct {
	source string
	root   Node
}

// Compile parses source into an evaluable expression. Compiled
// expressions are cached by source text.
func Compile(source string) (*Expr, error) {
	if cached, ok := compiledCache.Get(source); ok {
		return cached, nil
	}
	root, err := NewParser(source).Parse()
	if err != nil {
		return nil, err
	}
	e := &Expr{source: source, root: root}
	compiledCache.Add(source, e)
	return e, nil
}

// Source returns the original expression text.
func (e *Expr) Source() string {
	return e.source
}

// Eval evaluates the expression against the resolver.
func (e *Expr) Eval(r Resolver) (any, error) {
	return e.root.eval(r)
}

// EvalBool evaluates the expression and reduces the result to a truth
// value. Evaluation errors are returned as-is; a false result is not an
// error.
func (e *Expr) EvalBool(r Resolver) (bool, error) {
	v, err := e.root.eval(r)
	if err != nil {
		return false, err
	}
	return Truthy(v), nil
}
