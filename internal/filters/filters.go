package filters

import "sync"

// Filter keys shared by the search surfaces.
const (
	KeyDateRange    = "dateRange"
	KeyCategory     = "category"
	KeyLocationType = "locationType"
	KeyDistance     = "distance"
	KeySortBy       = "sortBy"
	KeyPrivacy      = "privacy"
)

// Option is one selectable value for a filter.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Spec declares a filter: its key, default value, the values it offers, and
// whether it is currently shown. Hidden filters keep their value but are
// excluded from rendering and from the active-filter computation.
type Spec struct {
	Key     string   `json:"key"`
	Default string   `json:"default"`
	Options []Option `json:"options"`
	Visible bool     `json:"visible"`
}

// Manager holds the current filter selections for one search surface.
type Manager struct {
	mu     sync.Mutex
	specs  []Spec
	values map[string]string
}

func NewManager(specs ...Spec) *Manager {
	m := &Manager{values: make(map[string]string)}
	m.Configure(specs)
	return m
}

// Configure replaces the filter declarations. Keys not yet present in state
// receive their default; keys already present keep their current value, so a
// filter that becomes hidden and visible again remembers its selection.
func (m *Manager) Configure(specs []Spec) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.specs = append([]Spec(nil), specs...)
	for _, spec := range specs {
		if _, ok := m.values[spec.Key]; !ok {
			m.values[spec.Key] = spec.Default
		}
	}
}

// Set overwrites the value for key. Values are not validated against the
// declared options: the caller is trusted to pass a value originating from
// the option set.
func (m *Manager) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Get returns the current value for key, or the declared default when the
// key has never been set.
func (m *Manager) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.values[key]; ok {
		return v
	}
	for _, spec := range m.specs {
		if spec.Key == key {
			return spec.Default
		}
	}
	return ""
}

// Values returns a snapshot of all configured filter values.
func (m *Manager) Values() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.specs))
	for _, spec := range m.specs {
		if v, ok := m.values[spec.Key]; ok {
			out[spec.Key] = v
		} else {
			out[spec.Key] = spec.Default
		}
	}
	return out
}

// Visible returns the specs that should currently be rendered.
func (m *Manager) Visible() []Spec {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Spec, 0, len(m.specs))
	for _, spec := range m.specs {
		if spec.Visible {
			out = append(out, spec)
		}
	}
	return out
}

// IsActive reports whether any visible filter holds a value that differs
// from its default and is not the empty "no selection" sentinel.
func (m *Manager) IsActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, spec := range m.specs {
		if !spec.Visible {
			continue
		}
		v, ok := m.values[spec.Key]
		if !ok {
			continue
		}
		if v != spec.Default && v != "" {
			return true
		}
	}
	return false
}

// Reset restores every filter, visible or not, to its declared default.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, spec := range m.specs {
		m.values[spec.Key] = spec.Default
	}
}
