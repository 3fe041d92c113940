package persist

// MemoryAdapter is an in-memory Adapter used in tests and when running
// with persistence disabled.
type MemoryAdapter struct {
	data map[string][]byte

	// SaveErr, when set, makes every Save fail with it. Lets tests
	// exercise the persistence-failure path (state kept, failure logged).
	SaveErr error
}

// NewMemoryAdapter creates an empty in-memory adapter
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{data: map[string][]byte{}}
}

// Load implements Adapter
func (m *MemoryAdapter) Load(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

// Save implements Adapter
func (m *MemoryAdapter) Save(key string, value []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data[key] = append([]byte{}, value...)
	return nil
}
