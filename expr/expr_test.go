package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Tokens(t *testing.T) {
	l := NewLexer(`count >= 2 and name == "VCC"`)

	expected := []struct {
		typ     TokenType
		literal string
	}{
		{TOKEN_IDENTIFIER, "count"},
		{TOKEN_OPERATOR, ">="},
		{TOKEN_NUMBER, "2"},
		{TOKEN_AND, "and"},
		{TOKEN_IDENTIFIER, "name"},
		{TOKEN_OPERATOR, "=="},
		{TOKEN_STRING, "VCC"},
		{TOKEN_EOF, ""},
	}
	for _, want := range expected {
		tok := l.NextToken()
		assert.Equal(t, want.typ, tok.Type)
		assert.Equal(t, want.literal, tok.Literal)
	}
}

func TestLexer_DottedIdentifiersAndBrackets(t *testing.T) {
	l := NewLexer(`part.value in ['10k', '22k']`)

	tok := l.NextToken()
	assert.Equal(t, TOKEN_IDENTIFIER, tok.Type)
	assert.Equal(t, "part.value", tok.Literal)
	assert.Equal(t, TOKEN_IN, l.NextToken().Type)
	assert.Equal(t, TOKEN_LBRACKET, l.NextToken().Type)
}

func TestCompile_Evaluate(t *testing.T) {
	scope := MapScope{
		"drivers": 1,
		"loads":   3,
		"name":    "VCC",
		"rails":   []any{"VCC", "GND"},
	}

	tests := []struct {
		expr string
		want bool
	}{
		{"drivers >= 1", true},
		{"drivers > 1", false},
		{"loads <= 3 and drivers == 1", true},
		{"drivers == 0 or loads == 3", true},
		{"not (drivers == 0)", true},
		{"name == 'VCC'", true},
		{"name != 'GND'", true},
		{"name in rails", true},
		{"'C' in name", true},
		{"name in ['GND', 'VCC']", true},
		{"name matches '^V'", true},
		{"name matches '^G'", false},
		{"drivers + loads == 4", true},
		{"loads - drivers == 2", true},
		{"loads * 2 > 5", true},
		{"loads / 3 == 1", true},
		{"loads % 2 == 1", true},
		{"-drivers < 0", true},
		{"true and name", true},
		{"false or ''", false},
		{"nil == nil", true},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			compiled, err := Compile(tc.expr)
			require.NoError(t, err)
			got, err := compiled.EvalBool(scope)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompile_ParseErrors(t *testing.T) {
	for _, src := range []string{
		"drivers >=",
		"(drivers == 1",
		"[1, 2",
		"drivers @ 1",
		"",
	} {
		_, err := Compile(src)
		assert.Error(t, err, "expression %q should not parse", src)
	}
}

func TestEval_UndefinedName(t *testing.T) {
	compiled, err := Compile("missing == 1")
	require.NoError(t, err)

	_, err = compiled.EvalBool(MapScope{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined name: missing")
}

func TestEval_TypeMismatch(t *testing.T) {
	compiled, err := Compile("name > 3")
	require.NoError(t, err)

	_, err = compiled.EvalBool(MapScope{"name": "VCC"})
	assert.Error(t, err)
}

func TestEval_DivisionByZero(t *testing.T) {
	compiled, err := Compile("1 / 0")
	require.NoError(t, err)

	_, err = compiled.Eval(MapScope{})
	assert.Error(t, err)
}

func TestEval_ShortCircuit(t *testing.T) {
	// The right side would fail on an undefined name but must never be
	// reached.
	compiled, err := Compile("false and missing == 1")
	require.NoError(t, err)
	got, err := compiled.EvalBool(MapScope{})
	require.NoError(t, err)
	assert.False(t, got)

	compiled, err = Compile("true or missing == 1")
	require.NoError(t, err)
	got, err = compiled.EvalBool(MapScope{})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEval_DottedPathTraversal(t *testing.T) {
	scope := MapScope{
		"part": map[string]any{
			"ratings": map[string]any{"power": 0.25},
		},
	}

	compiled, err := Compile("part.ratings.power <= 0.25")
	require.NoError(t, err)
	got, err := compiled.EvalBool(scope)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEval_ChainFirstHitWins(t *testing.T) {
	inner := MapScope{"x": 1, "y": 10}
	outer := MapScope{"x": 2}
	scope := Chain(outer, inner)

	compiled, err := Compile("x == 2 and y == 10")
	require.NoError(t, err)
	got, err := compiled.EvalBool(scope)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEval_LiveBindings(t *testing.T) {
	scope := MapScope{"threshold": 1}
	compiled, err := Compile("threshold == 5")
	require.NoError(t, err)

	got, err := compiled.EvalBool(scope)
	require.NoError(t, err)
	assert.False(t, got)

	// Bindings are held by reference: mutations after compilation are
	// visible to later evaluations.
	scope["threshold"] = 5
	got, err = compiled.EvalBool(scope)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCompile_CacheReturnsSameExpression(t *testing.T) {
	a, err := Compile("drivers >= 1")
	require.NoError(t, err)
	b, err := Compile("drivers >= 1")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, "drivers >= 1", a.Source())
}
