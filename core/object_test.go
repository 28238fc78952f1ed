package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_AliasesAbsentYieldsFreshEmptyContainer(t *testing.T) {
	obj := New("net")

	aliases := obj.Aliases()
	assert.Equal(t, 0, aliases.Len())
	assert.False(t, obj.HasAliases())

	// The transient container must not materialize backing storage.
	aliases.Add("GND")
	assert.False(t, obj.HasAliases())
	assert.Equal(t, 0, obj.Aliases().Len())
}

func TestObject_SetAliasesEmptyIsNoOp(t *testing.T) {
	obj := New("net")
	obj.SetAliases("VCC", "VDD")
	require.True(t, obj.HasAliases())

	obj.SetAliases()
	assert.True(t, obj.HasAliases())
	assert.Equal(t, []string{"VCC", "VDD"}, obj.Aliases().Names())
}

func TestObject_DeleteAliasesIdempotent(t *testing.T) {
	obj := New("net")
	obj.SetAliases("VCC")

	obj.DeleteAliases()
	assert.False(t, obj.HasAliases())
	assert.Equal(t, 0, obj.Aliases().Len())

	// Second delete is a no-op.
	obj.DeleteAliases()
	assert.False(t, obj.HasAliases())
}

func TestObject_NotesSameSemanticsAsAliases(t *testing.T) {
	obj := New("part")
	assert.False(t, obj.HasNotes())
	assert.Equal(t, 0, obj.Notes().Len())

	obj.SetNotes("place near U1")
	require.True(t, obj.HasNotes())

	obj.SetNotes()
	assert.Equal(t, []string{"place near U1"}, obj.Notes().All())

	obj.DeleteNotes()
	obj.DeleteNotes()
	assert.False(t, obj.HasNotes())
}

func TestObject_CopyDuplicatesFieldsAliasesNotes(t *testing.T) {
	src := New("part")
	require.NoError(t, src.Set("value", "10k"))
	require.NoError(t, src.Fields().Set("ratings", map[string]any{"power": 0.25}))
	src.SetAliases("A", "B")
	src.SetNotes("x")

	cpy := src.Copy()

	assert.Equal(t, src.Kind(), cpy.Kind())
	assert.NotEqual(t, src.ID(), cpy.ID())
	assert.Equal(t, []string{"A", "B"}, cpy.Aliases().Names())
	assert.Equal(t, []string{"x"}, cpy.Notes().All())

	// Containers must be independent in storage.
	cpy.Aliases().Add("C")
	assert.Equal(t, []string{"A", "B"}, src.Aliases().Names())

	ratings, ok := cpy.Fields().Get("ratings")
	require.True(t, ok)
	ratings.(map[string]any)["power"] = 1.0
	srcRatings, _ := src.Fields().Get("ratings")
	assert.Equal(t, 0.25, srcRatings.(map[string]any)["power"])
}

func TestObject_CopyPropagatesAbsence(t *testing.T) {
	src := New("part")
	cpy := src.Copy()

	assert.False(t, cpy.HasAliases())
	assert.False(t, cpy.HasNotes())
}

func TestObject_CopyDoesNotCarryInstanceChecks(t *testing.T) {
	src := New("part")
	src.AddERCFunction(func(obj *Object, args ...any) {})
	src.AddERCAssertion("true", "", SeverityError, nil)

	cpy := src.Copy()
	assert.Empty(t, cpy.ERCFunctions())
	assert.Empty(t, cpy.ERCAssertions())
}

func TestObject_ResolveAttributesThenFields(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Set("value", "10k"))
	require.NoError(t, obj.Fields().Set("footprint", "0805"))

	v, ok := obj.Resolve("value")
	require.True(t, ok)
	assert.Equal(t, "10k", v)

	v, ok = obj.Resolve("footprint")
	require.True(t, ok)
	assert.Equal(t, "0805", v)

	_, ok = obj.Resolve("missing")
	assert.False(t, ok)
}

func TestObject_AddERCAssertionCapturesLocation(t *testing.T) {
	obj := New("part")
	obj.AddERCAssertion("value == '10k'", "wrong value", SeverityWarning, nil)

	records := obj.ERCAssertions()
	require.Len(t, records, 1)
	assert.Equal(t, "object_test.go", records[0].File)
	assert.Equal(t, "TestObject_AddERCAssertionCapturesLocation", records[0].Function)
	assert.Greater(t, records[0].Line, 0)
	assert.Equal(t, SeverityWarning, records[0].Severity)
}

func TestObject_AddERCAssertionDefaults(t *testing.T) {
	obj := New("part")
	obj.AddERCAssertion("true", "", Severity("bogus"), nil)

	records := obj.ERCAssertions()
	require.Len(t, records, 1)
	assert.Equal(t, SeverityError, records[0].Severity)
	assert.Equal(t, "FAILED", records[0].FailMsg)
}

func TestObject_CheckListsPreserveInsertionOrder(t *testing.T) {
	obj := New("part")
	var order []int
	obj.AddERCFunction(func(o *Object, args ...any) { order = append(order, 1) })
	obj.AddERCFunction(func(o *Object, args ...any) { order = append(order, 2) })

	for _, fn := range obj.ERCFunctions() {
		fn(obj)
	}
	assert.Equal(t, []int{1, 2}, order)
}
