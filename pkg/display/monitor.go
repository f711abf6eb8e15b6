package display

import (
	"fmt"

	"github.com/arthur-debert/liveout/pkg/table"
)

// Monitor tracks named progress fields ("Status", "Step", ...) in a
// fixed order and materializes them as a two-column table. Pushing the
// table through a session on an updating backend produces a progress
// panel that rewrites itself in place; on cli it appends snapshots.
type Monitor struct {
	names  []string
	values map[string]string
}

var _ fmt.Stringer = (*Monitor)(nil)

// NewMonitor creates a monitor with the given fields, all blank.
func NewMonitor(names ...string) *Monitor {
	m := &Monitor{values: make(map[string]string, len(names))}
	for _, name := range names {
		m.names = append(m.names, name)
		m.values[name] = ""
	}
	return m
}

// Set updates a field's value. An unknown name adds a new field at the
// end. Returns the monitor for chaining.
func (m *Monitor) Set(name, value string) *Monitor {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
	return m
}

// Get returns a field's current value.
func (m *Monitor) Get(name string) string {
	return m.values[name]
}

// Fields returns the field names in display order.
func (m *Monitor) Fields() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Table materializes the current state as a two-column table.
func (m *Monitor) Table() *table.Table {
	t := table.New("Field", "Value")
	for _, name := range m.names {
		t.Append(name, m.values[name])
	}
	return t
}

// String renders the current state as the plain table grid.
func (m *Monitor) String() string {
	return m.Table().String()
}
