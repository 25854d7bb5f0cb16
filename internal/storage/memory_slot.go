package storage

// MemorySlot is an in-process Slot used by tests and by runs that opt out of
// persistence.
type MemorySlot struct {
	values map[string]string
}

var _ Slot = (*MemorySlot)(nil)

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (m *MemorySlot) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemorySlot) Set(key, value string) error {
	m.values[key] = value
	return nil
}
