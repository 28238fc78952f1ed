package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMap_SyncMirrorsAttribute(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Set("tolerance", "5%"))

	v, ok := obj.Fields().Get("tolerance")
	require.True(t, ok)
	assert.Equal(t, "5%", v)
}

func TestFieldMap_SyncIdempotent(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Set("ref", "R1"))

	require.NoError(t, obj.Fields().Sync("ref"))
	require.NoError(t, obj.Fields().Sync("ref"))

	v, ok := obj.Fields().Get("ref")
	require.True(t, ok)
	assert.Equal(t, "R1", v)
	assert.Equal(t, 1, obj.Fields().Len())
}

func TestFieldMap_SyncMissingAttributeLeavesMapUntouched(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Fields().Sync("nonexistent"))

	_, ok := obj.Fields().Get("nonexistent")
	assert.False(t, ok)
}

func TestFieldMap_SyncRejectsReservedKey(t *testing.T) {
	obj := New("part")
	err := obj.Fields().Sync("fields")

	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
}

func TestFieldMap_SetRejectsReservedKey(t *testing.T) {
	obj := New("part")
	err := obj.Fields().Set("fields", "anything")

	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
}

func TestFieldMap_SetUpdatesExistingAttribute(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Set("value", "10k"))

	require.NoError(t, obj.Fields().Set("value", "22k"))

	attr, ok := obj.Attr("value")
	require.True(t, ok)
	assert.Equal(t, "22k", attr)
}

func TestFieldMap_SetWithoutAttributeDoesNotCreateOne(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Fields().Set("footprint", "0805"))

	_, ok := obj.Attr("footprint")
	assert.False(t, ok)

	v, ok := obj.Fields().Get("footprint")
	require.True(t, ok)
	assert.Equal(t, "0805", v)
}

func TestObject_SetFieldsBulkReplace(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Set("old", 1))

	err := obj.Set("fields", map[string]any{"mpn": "ABC-123", "rohs": true})
	require.NoError(t, err)

	assert.Equal(t, 2, obj.Fields().Len())
	_, ok := obj.Fields().Get("old")
	assert.False(t, ok)
	v, ok := obj.Fields().Get("mpn")
	require.True(t, ok)
	assert.Equal(t, "ABC-123", v)
}

func TestObject_SetFieldsAcceptsAnotherFieldMap(t *testing.T) {
	src := New("part")
	require.NoError(t, src.Set("value", "1uF"))

	dst := New("part")
	require.NoError(t, dst.Set("fields", src.Fields()))

	v, ok := dst.Fields().Get("value")
	require.True(t, ok)
	assert.Equal(t, "1uF", v)
}

func TestObject_SetFieldsRejectsNonMapping(t *testing.T) {
	obj := New("part")
	err := obj.Set("fields", 42)

	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
}

func TestFieldMap_Keys(t *testing.T) {
	obj := New("part")
	require.NoError(t, obj.Set("b", 2))
	require.NoError(t, obj.Set("a", 1))

	assert.Equal(t, []string{"a", "b"}, obj.Fields().Keys())
}
