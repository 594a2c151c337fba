package network

// Names is a bidirectional map between vertex names and dense vertex ids.
// Ids are handed out in interning order starting at 0.
//
// The zero value is ready to use. Names is not safe for concurrent mutation.
type Names struct {
	ids   map[string]int
	names []string
}

// NewNames returns an empty map with room for n names.
func NewNames(n int) *Names {
	return &Names{ids: make(map[string]int, n), names: make([]string, 0, n)}
}

// Intern returns the id of name, assigning the next free id on first sight.
func (m *Names) Intern(name string) int {
	if id, ok := m.ids[name]; ok {
		return id
	}
	if m.ids == nil {
		m.ids = make(map[string]int)
	}
	id := len(m.names)
	m.ids[name] = id
	m.names = append(m.names, name)

	return id
}

// ID looks name up without interning it.
func (m *Names) ID(name string) (int, bool) {
	id, ok := m.ids[name]

	return id, ok
}

// Name returns the name of id, or "" when id was never assigned.
func (m *Names) Name(id int) string {
	if id < 0 || id >= len(m.names) {
		return ""
	}

	return m.names[id]
}

// Len returns the number of interned names.
func (m *Names) Len() int { return len(m.names) }
