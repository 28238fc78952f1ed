package core

import "sort"

// reservedFieldsKey is the attribute name of the field map itself. It can
// never appear as an entry inside the map.
const reservedFieldsKey = "fields"

// FieldMap mirrors a subset of its owning object's attributes into a named
// value mapping. Every entry whose key matches an attribute on the owner
// holds the same value as that attribute. A FieldMap is owned by exactly
// one Object and follows its lifetime.
type FieldMap struct {
	owner  *Object
	values map[string]any
}

// newFieldMap constructs an empty field map bound to owner.
func newFieldMap(owner *Object) *FieldMap {
	return &FieldMap{owner: owner, values: make(map[string]any)}
}

// newFieldMapFrom builds a field map bound to owner from any mapping-like
// input. Accepted inputs are another *FieldMap, map[string]any and
// map[string]string. Anything else fails with a ConstructionError.
func newFieldMapFrom(owner *Object, init any) (*FieldMap, error) {
	fm := newFieldMap(owner)
	switch src := init.(type) {
	case nil:
	case *FieldMap:
		for k, v := range src.values {
			if err := fm.Set(k, v); err != nil {
				return nil, err
			}
		}
	case map[string]any:
		for k, v := range src {
			if err := fm.Set(k, v); err != nil {
				return nil, err
			}
		}
	case map[string]string:
		for k, v := range src {
			if err := fm.Set(k, v); err != nil {
				return nil, err
			}
		}
	default:
		return nil, &ConstructionError{
			Op:     reservedFieldsKey,
			Reason: "value cannot be interpreted as a mapping of string keys",
		}
	}
	return fm, nil
}

// Sync copies the owner's attribute named key into the map, if that
// attribute currently exists. Attributes that do not exist yet are simply
// not mirrored. Sync is idempotent and touches no binding other than key.
func (f *FieldMap) Sync(key string) error {
	if key == reservedFieldsKey {
		return &ConstructionError{Op: "sync", Reason: "the fields map cannot mirror itself"}
	}
	if f.owner == nil {
		return nil
	}
	if value, ok := f.owner.Attr(key); ok {
		f.values[key] = value
	}
	return nil
}

// Set stores a field value and, when the owner carries an attribute of the
// same name, updates that attribute so the mirror invariant holds in both
// directions.
func (f *FieldMap) Set(key string, value any) error {
	if key == reservedFieldsKey {
		return &ConstructionError{Op: "set", Reason: "fields is a reserved key"}
	}
	f.values[key] = value
	if f.owner != nil {
		f.owner.storeMirroredAttr(key, value)
	}
	return nil
}

// Get returns the value stored under key.
func (f *FieldMap) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Len returns the number of entries.
func (f *FieldMap) Len() int {
	return len(f.values)
}

// Keys returns the field names in sorted order.
func (f *FieldMap) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// copyInto produces a deep, independent duplicate bound to the given owner.
func (f *FieldMap) copyInto(owner *Object) *FieldMap {
	cpy := newFieldMap(owner)
	for k, v := range f.values {
		cpy.values[k] = deepCopyValue(v)
	}
	return cpy
}

// deepCopyValue duplicates nested maps and slices so a copied field map
// shares no mutable storage with its source. Scalars pass through.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopyValue(item)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
