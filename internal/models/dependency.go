package models

// Dependency represents a single package extracted from a scan report
type Dependency struct {
	Name    string
	Version string
	Group   string // Maven groupId, empty for other ecosystems
}

// String returns a human-readable representation
func (d Dependency) String() string {
	if d.Group != "" {
		return d.Group + ":" + d.Name + "@" + d.Version
	}
	return d.Name + "@" + d.Version
}

// Mapping is an insertion-ordered set of dependencies keyed by name.
// Setting an existing name replaces its value but keeps its position.
type Mapping struct {
	names []string
	deps  map[string]Dependency
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{deps: make(map[string]Dependency)}
}

// Set inserts or replaces the dependency stored under d.Name
func (m *Mapping) Set(d Dependency) {
	if _, ok := m.deps[d.Name]; !ok {
		m.names = append(m.names, d.Name)
	}
	m.deps[d.Name] = d
}

// Get returns the dependency stored under name
func (m *Mapping) Get(name string) (Dependency, bool) {
	d, ok := m.deps[name]
	return d, ok
}

// Len returns the number of distinct names
func (m *Mapping) Len() int {
	return len(m.names)
}

// All returns the dependencies in insertion order
func (m *Mapping) All() []Dependency {
	out := make([]Dependency, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, m.deps[name])
	}
	return out
}
