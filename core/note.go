package core

// Notes is an ordered collection of free-text annotations attached to a
// design object.
type Notes struct {
	notes []string
}

// NewNotes builds a note collection from one or more text entries.
func NewNotes(texts ...string) *Notes {
	n := &Notes{}
	for _, text := range texts {
		n.Add(text)
	}
	return n
}

// Add appends a note.
func (n *Notes) Add(text string) {
	if text == "" {
		return
	}
	n.notes = append(n.notes, text)
}

// All returns a copy of the notes in insertion order.
func (n *Notes) All() []string {
	out := make([]string, len(n.notes))
	copy(out, n.notes)
	return out
}

// Len returns the number of notes.
func (n *Notes) Len() int {
	return len(n.notes)
}

// Copy returns an independent duplicate.
func (n *Notes) Copy() *Notes {
	return NewNotes(n.notes...)
}
