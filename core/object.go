// Package core provides the base design object shared by every domain
// entity: a field map kept in sync with the object's attributes, optional
// alias and note containers, and per-instance rule-check registration.
package core

import "github.com/google/uuid"

// Object is the base entity for circuit, net, part and similar domain
// types. It owns exactly one field map, zero-or-one alias container and
// zero-or-one note container, and carries this instance's private
// rule-check lists. Domain types compose an Object and route attribute
// writes through Set so the field mirror stays consistent.
type Object struct {
	id    string
	kind  string
	attrs map[string]any

	fields  *FieldMap
	aliases *Alias // nil means absent, distinct from present-but-empty
	notes   *Notes // nil means absent

	ercFuncs      []CheckFunc
	ercAssertions []Assertion
}

// New constructs a base object of the given kind with an empty field map.
func New(kind string) *Object {
	o := &Object{
		id:    uuid.NewString(),
		kind:  kind,
		attrs: make(map[string]any),
	}
	o.fields = newFieldMap(o)
	return o
}

// ID returns the object's unique identifier.
func (o *Object) ID() string {
	return o.id
}

// Kind returns the kind name the object was constructed with. Kind-scoped
// rule checks registered for this kind (or an ancestor kind) apply to it.
func (o *Object) Kind() string {
	return o.kind
}

// Set assigns an attribute. Writing any regular attribute is immediately
// followed by a field-map synchronization pass for that name. Writing the
// reserved "fields" attribute instead replaces the whole field map: the
// value is coerced into a FieldMap bound to this object, accepting any
// mapping-like input, and a ConstructionError is returned when it cannot
// be. Regular attribute writes never fail.
func (o *Object) Set(key string, value any) error {
	if key == reservedFieldsKey {
		fm, err := newFieldMapFrom(o, value)
		if err != nil {
			return err
		}
		o.fields = fm
		return nil
	}
	o.attrs[key] = value
	return o.fields.Sync(key)
}

// Attr returns the attribute stored under key.
func (o *Object) Attr(key string) (any, bool) {
	v, ok := o.attrs[key]
	return v, ok
}

// storeMirroredAttr updates an existing attribute from the field map side
// without re-entering Set. Attributes that were never assigned stay
// unassigned; fields are allowed to exist without a matching attribute.
func (o *Object) storeMirroredAttr(key string, value any) {
	if _, ok := o.attrs[key]; ok {
		o.attrs[key] = value
	}
}

// Fields returns the object's field map.
func (o *Object) Fields() *FieldMap {
	return o.fields
}

// Aliases returns the alias container, or a fresh empty one when no
// aliases have been set. The transient empty container does not
// materialize backing storage.
func (o *Object) Aliases() *Alias {
	if o.aliases != nil {
		return o.aliases
	}
	return NewAlias()
}

// SetAliases replaces the alias container with one built from the given
// names. Calling it with no names (or only empty strings) is a no-op;
// setting "nothing" never clears an existing value.
func (o *Object) SetAliases(names ...string) {
	alias := NewAlias(names...)
	if alias.Len() == 0 {
		return
	}
	o.aliases = alias
}

// DeleteAliases removes the alias storage, reverting the object to the
// absent state. Deleting when already absent is a no-op.
func (o *Object) DeleteAliases() {
	o.aliases = nil
}

// HasAliases reports whether alias storage is present.
func (o *Object) HasAliases() bool {
	return o.aliases != nil
}

// Notes returns the note container, or a fresh empty one when no notes
// have been set.
func (o *Object) Notes() *Notes {
	if o.notes != nil {
		return o.notes
	}
	return NewNotes()
}

// SetNotes replaces the note container with one built from the given
// texts. Calling it with no non-empty texts is a no-op.
func (o *Object) SetNotes(texts ...string) {
	notes := NewNotes(texts...)
	if notes.Len() == 0 {
		return
	}
	o.notes = notes
}

// DeleteNotes removes the note storage; a second delete is a no-op.
func (o *Object) DeleteNotes() {
	o.notes = nil
}

// HasNotes reports whether note storage is present.
func (o *Object) HasNotes() bool {
	return o.notes != nil
}

// Copy produces a new base object whose field map is a deep, independent
// duplicate of this one's, with alias and note containers duplicated when
// present and left absent when absent. The copy is always a plain base
// Object with a fresh identifier: attributes outside the field map,
// instance rule-check lists, and any state a composing type layers on top
// are not carried over.
func (o *Object) Copy() *Object {
	cpy := New(o.kind)
	cpy.fields = o.fields.copyInto(cpy)
	if o.aliases != nil {
		cpy.aliases = o.aliases.Copy()
	}
	if o.notes != nil {
		cpy.notes = o.notes.Copy()
	}
	return cpy
}

// Resolve looks up a bare identifier against the object, attributes
// first, then field entries. It backs expression evaluation for rule
// checks whose bindings do not name the identifier themselves.
func (o *Object) Resolve(name string) (any, bool) {
	if v, ok := o.attrs[name]; ok {
		return v, true
	}
	return o.fields.Get(name)
}

// AddERCFunction appends a check function to this instance's private
// list. Sibling instances of the same kind do not see it; use the
// kind-scoped registry for checks shared across a kind.
func (o *Object) AddERCFunction(fn CheckFunc) {
	o.ercFuncs = append(o.ercFuncs, fn)
}

// AddERCAssertion appends a check assertion to this instance's private
// list, capturing the caller's source location. bindings may be nil, in
// which case identifiers resolve against the object alone.
func (o *Object) AddERCAssertion(stmt, failMsg string, severity Severity, bindings map[string]any) {
	o.ercAssertions = append(o.ercAssertions, CaptureAssertion(stmt, failMsg, severity, bindings, 2))
}

// ERCFunctions returns the instance-scoped check functions in
// registration order.
func (o *Object) ERCFunctions() []CheckFunc {
	return o.ercFuncs
}

// ERCAssertions returns the instance-scoped check assertions in
// registration order.
func (o *Object) ERCAssertions() []Assertion {
	return o.ercAssertions
}
