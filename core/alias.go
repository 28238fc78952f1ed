package core

// Alias is an ordered set of alternate names for a design object. Two
// aliased objects are considered to refer to the same thing when they
// share any single name.
type Alias struct {
	names []string
}

// NewAlias builds an alias set from one or more names, dropping
// duplicates while preserving first-seen order.
func NewAlias(names ...string) *Alias {
	a := &Alias{}
	for _, name := range names {
		a.Add(name)
	}
	return a
}

// Add appends a name unless it is already present.
func (a *Alias) Add(name string) {
	if name == "" || a.Contains(name) {
		return
	}
	a.names = append(a.names, name)
}

// Contains reports whether name is one of the alias names.
func (a *Alias) Contains(name string) bool {
	for _, n := range a.names {
		if n == name {
			return true
		}
	}
	return false
}

// Matches reports whether the two alias sets share any name.
func (a *Alias) Matches(other *Alias) bool {
	if other == nil {
		return false
	}
	for _, n := range other.names {
		if a.Contains(n) {
			return true
		}
	}
	return false
}

// Names returns a copy of the names in insertion order.
func (a *Alias) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Len returns the number of names.
func (a *Alias) Len() int {
	return len(a.names)
}

// Copy returns an independent duplicate.
func (a *Alias) Copy() *Alias {
	return NewAlias(a.names...)
}
