package settings

// MemoryStore keeps everything in maps. It backs tests and counts writes
// per key so single-write semantics can be asserted.
type MemoryStore struct {
	arrays    map[string][]string
	strings   map[string]string
	bools     map[string]bool
	writes    map[string]int
	listeners map[string][]func()
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		arrays:    make(map[string][]string),
		strings:   make(map[string]string),
		bools:     make(map[string]bool),
		writes:    make(map[string]int),
		listeners: make(map[string][]func()),
	}
}

func (s *MemoryStore) StringArray(key string) []string {
	stored := s.arrays[key]
	out := make([]string, len(stored))
	copy(out, stored)
	return out
}

func (s *MemoryStore) SetStringArray(key string, values []string) error {
	stored := make([]string, len(values))
	copy(stored, values)
	s.arrays[key] = stored
	s.recordWrite(key)
	return nil
}

func (s *MemoryStore) String(key string) string {
	return s.strings[key]
}

func (s *MemoryStore) SetString(key, value string) error {
	s.strings[key] = value
	s.recordWrite(key)
	return nil
}

func (s *MemoryStore) Bool(key string) bool {
	return s.bools[key]
}

func (s *MemoryStore) SetBool(key string, value bool) error {
	s.bools[key] = value
	s.recordWrite(key)
	return nil
}

func (s *MemoryStore) OnChange(key string, fn func()) {
	s.listeners[key] = append(s.listeners[key], fn)
}

// WriteCount reports how many writes the key has received.
func (s *MemoryStore) WriteCount(key string) int {
	return s.writes[key]
}

func (s *MemoryStore) recordWrite(key string) {
	s.writes[key]++
	for _, fn := range s.listeners[key] {
		fn()
	}
}
