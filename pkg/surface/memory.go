package surface

import (
	"sync"

	"github.com/arthur-debert/liveout/pkg/types"
)

// Memory is a surface that records everything instead of drawing.
// Backend tests assert against it, and callers can use it to capture
// output programmatically. Unlike Terminal it is safe for concurrent
// use.
type Memory struct {
	mu    sync.Mutex
	slots []any
	clear int
}

var _ types.Surface = (*Memory)(nil)

// NewMemory returns an empty recording surface.
func NewMemory() *Memory {
	return &Memory{}
}

// Reserve allocates the next slot. The slot starts empty.
func (m *Memory) Reserve() types.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots = append(m.slots, nil)
	return &memorySlot{mem: m, index: len(m.slots) - 1}
}

// Clear wipes every slot's recorded value and counts the call.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.slots {
		m.slots[i] = nil
	}
	m.clear++
}

// Reserves returns how many slots have been reserved.
func (m *Memory) Reserves() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.slots)
}

// Clears returns how many times Clear has been called.
func (m *Memory) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.clear
}

// Slot returns the current value of the i-th reserved slot.
func (m *Memory) Slot(i int) any {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.slots[i]
}

// Slots returns a copy of all slot values in reservation order.
func (m *Memory) Slots() []any {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]any, len(m.slots))
	copy(out, m.slots)
	return out
}

func (m *Memory) update(index int, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[index] = v
}

type memorySlot struct {
	mem   *Memory
	index int
}

var _ types.Handle = (*memorySlot)(nil)

// Update records v as the slot's current value.
func (s *memorySlot) Update(v any) {
	s.mem.update(s.index, v)
}
