package storage

import "sync"

// MemoryStore keeps values in process memory. It is used in tests and as
// the fallback when a durable backend fails.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// PrefixStore namespaces every key of an underlying store, so one backend
// can hold the state of many sessions.
type PrefixStore struct {
	inner  KeyValueStore
	prefix string
}

// NewPrefixStore returns a store whose keys are "<prefix>:<key>" in inner.
func NewPrefixStore(inner KeyValueStore, prefix string) *PrefixStore {
	return &PrefixStore{inner: inner, prefix: prefix}
}

func (p *PrefixStore) Get(key string) ([]byte, bool, error) {
	return p.inner.Get(p.prefix + ":" + key)
}

func (p *PrefixStore) Set(key string, value []byte) error {
	return p.inner.Set(p.prefix+":"+key, value)
}
