package domain

// Selection is the user-ordered list of components chosen for assembly.
// The same definition may appear more than once. Order is owned by the
// selection; entries only reference the shared definitions.
type Selection struct {
	entries []*ComponentDefinition
}

// NewSelection creates a selection holding the given definitions in order
func NewSelection(defs ...*ComponentDefinition) *Selection {
	entries := make([]*ComponentDefinition, len(defs))
	copy(entries, defs)
	return &Selection{entries: entries}
}

// Len returns the number of entries
func (s *Selection) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether nothing has been selected
func (s *Selection) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns a copy of the entries in selection order
func (s *Selection) Entries() []*ComponentDefinition {
	out := make([]*ComponentDefinition, len(s.entries))
	copy(out, s.entries)
	return out
}

// At returns the entry at index, or nil when out of range
func (s *Selection) At(index int) *ComponentDefinition {
	if index < 0 || index >= len(s.entries) {
		return nil
	}
	return s.entries[index]
}

// IDs returns the component ids in selection order
func (s *Selection) IDs() []string {
	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.ID
	}
	return ids
}

// Append adds a definition to the end of the selection
func (s *Selection) Append(def *ComponentDefinition) {
	s.entries = append(s.entries, def)
}

// RemoveAt removes the entry at index. Stale or out of range indices are
// ignored and false is returned.
func (s *Selection) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.entries) {
		return false
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return true
}

// MoveTo removes the entry at from and reinserts it at to, where to is an
// index into the list as it is after the removal. A to past the end places
// the entry last. Returns false when nothing moved.
func (s *Selection) MoveTo(from, to int) bool {
	if from == to || from < 0 || from >= len(s.entries) || to < 0 {
		return false
	}

	moved := s.entries[from]
	rest := make([]*ComponentDefinition, 0, len(s.entries))
	rest = append(rest, s.entries[:from]...)
	rest = append(rest, s.entries[from+1:]...)

	if to > len(rest) {
		to = len(rest)
	}

	out := make([]*ComponentDefinition, 0, len(s.entries))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	s.entries = out
	return true
}

// Clear removes every entry
func (s *Selection) Clear() {
	s.entries = nil
}
