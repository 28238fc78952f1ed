package expr

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Resolver supplies values for identifiers during evaluation.
type Resolver interface {
	Resolve(name string) (any, bool)
}

// MapScope is a Resolver backed by a plain binding map. The map is held by
// reference: mutations made between registration and evaluation are
// visible to the expression.
type MapScope map[string]any

// Resolve implements Resolver.
func (m MapScope) Resolve(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

type chainResolver []Resolver

func (c chainResolver) Resolve(name string) (any, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if v, ok := r.Resolve(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Chain combines resolvers; lookups walk them in order and the first hit
// wins. Nil entries are skipped.
func Chain(resolvers ...Resolver) Resolver {
	return chainResolver(resolvers)
}

// Eval evaluates the node against the resolver.
func (n *literalNode) eval(Resolver) (any, error) {
	return n.value, nil
}

func (n *identNode) eval(r Resolver) (any, error) {
	if r != nil {
		if v, ok := r.Resolve(n.name); ok {
			return v, nil
		}
		// Dotted paths fall back to resolving the head and walking
		// nested string-keyed maps segment by segment.
		if strings.Contains(n.name, ".") {
			if v, ok := resolvePath(r, n.name); ok {
				return v, nil
			}
		}
	}
	return nil, fmt.Errorf("undefined name: %s", n.name)
}

func resolvePath(r Resolver, name string) (any, bool) {
	segments := strings.Split(name, ".")
	current, ok := r.Resolve(segments[0])
	if !ok {
		return nil, false
	}
	for _, seg := range segments[1:] {
		m, isMap := current.(map[string]any)
		if !isMap {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func (n *listNode) eval(r Resolver) (any, error) {
	out := make([]any, 0, len(n.items))
	for _, item := range n.items {
		v, err := item.eval(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (n *unaryNode) eval(r Resolver) (any, error) {
	v, err := n.operand.eval(r)
	if err != nil {
		return nil, err
	}
	switch n.op {
	case "not":
		return !Truthy(v), nil
	case "-":
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("operand of unary - is not numeric: %v", v)
		}
		return -f, nil
	}
	return nil, fmt.Errorf("unknown unary operator %s", n.op)
}

func (n *binaryNode) eval(r Resolver) (any, error) {
	// Logical operators short-circuit.
	switch n.op {
	case "and":
		left, err := n.left.eval(r)
		if err != nil {
			return nil, err
		}
		if !Truthy(left) {
			return false, nil
		}
		right, err := n.right.eval(r)
		if err != nil {
			return nil, err
		}
		return Truthy(right), nil
	case "or":
		left, err := n.left.eval(r)
		if err != nil {
			return nil, err
		}
		if Truthy(left) {
			return true, nil
		}
		right, err := n.right.eval(r)
		if err != nil {
			return nil, err
		}
		return Truthy(right), nil
	}

	left, err := n.left.eval(r)
	if err != nil {
		return nil, err
	}
	right, err := n.right.eval(r)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "==":
		return valuesEqual(left, right), nil
	case "!=":
		return !valuesEqual(left, right), nil
	case ">", ">=", "<", "<=":
		return compareOrdered(n.op, left, right)
	case "+", "-", "*", "/", "%":
		return arithmetic(n.op, left, right)
	case "in":
		return membership(left, right)
	case "matches":
		return regexMatch(left, right)
	}
	return nil, fmt.Errorf("unknown operator %s", n.op)
}

// Truthy applies the language's truth rules: false, zero, empty string,
// nil and empty lists are false, everything else is true.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	default:
		if f, ok := toFloat(v); ok {
			return f != 0
		}
		return true
	}
}

// toFloat coerces numeric values to float64 for comparison, matching how
// mixed-type numeric fields are compared elsewhere in the system.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func valuesEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
		return false
	}
	return a == b
}

func compareOrdered(op string, a, b any) (any, error) {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		if !bok {
			return nil, fmt.Errorf("cannot compare %v with %v", a, b)
		}
		switch op {
		case ">":
			return af > bf, nil
		case ">=":
			return af >= bf, nil
		case "<":
			return af < bf, nil
		case "<=":
			return af <= bf, nil
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		switch op {
		case ">":
			return as > bs, nil
		case ">=":
			return as >= bs, nil
		case "<":
			return as < bs, nil
		case "<=":
			return as <= bs, nil
		}
	}
	return nil, fmt.Errorf("cannot compare %v with %v", a, b)
}

func arithmetic(op string, a, b any) (any, error) {
	// String concatenation is the one non-numeric case.
	if op == "+" {
		if as, ok := a.(string); ok {
			if bs, ok := b.(string); ok {
				return as + bs, nil
			}
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, fmt.Errorf("arithmetic on non-numeric operands: %v %s %v", a, op, b)
	}
	switch op {
	case "+":
		return af + bf, nil
	case "-":
		return af - bf, nil
	case "*":
		return af * bf, nil
	case "/":
		if bf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return af / bf, nil
	case "%":
		if bf == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return float64(int64(af) % int64(bf)), nil
	}
	return nil, fmt.Errorf("unknown arithmetic operator %s", op)
}

func membership(needle, haystack any) (any, error) {
	switch container := haystack.(type) {
	case []any:
		for _, item := range container {
			if valuesEqual(needle, item) {
				return true, nil
			}
		}
		return false, nil
	case []string:
		for _, item := range container {
			if valuesEqual(needle, item) {
				return true, nil
			}
		}
		return false, nil
	case string:
		ns, ok := needle.(string)
		if !ok {
			return nil, fmt.Errorf("left operand of in must be a string when matching inside a string")
		}
		return strings.Contains(container, ns), nil
	default:
		return nil, fmt.Errorf("right operand of in is not a container: %v", haystack)
	}
}

func regexMatch(value, pattern any) (any, error) {
	vs, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("left operand of matches must be a string, got %v", value)
	}
	ps, ok := pattern.(string)
	if !ok {
		return nil, fmt.Errorf("right operand of matches must be a pattern string, got %v", pattern)
	}
	re, err := regexp2.Compile(ps, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", ps, err)
	}
	matched, err := re.MatchString(vs)
	if err != nil {
		return nil, fmt.Errorf("pattern match failed: %w", err)
	}
	return matched, nil
}
