package memory

import (
	"sync"

	"github.com/custodia-labs/registro-ocr/internal/adapters/driven/config"
	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// memoryPath is what Path reports; there is no file behind the store.
const memoryPath = ":memory:"

// ConfigStore keeps settings in a map. Used by tests and by callers that
// must not touch config.toml.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns a store seeded with values, keyed by dotted
// setting name ("input.encoding"). values may be nil.
func NewConfigStore(values ...map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any)}
	for _, m := range values {
		for k, v := range m {
			s.values[k] = config.Clone(v)
		}
	}
	return s
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) GetString(key string) string {
	v, _ := s.Get(key)
	return config.String(v)
}

func (s *ConfigStore) GetInt(key string) int {
	v, _ := s.Get(key)
	return config.Int(v)
}

func (s *ConfigStore) GetStringSlice(key string) []string {
	v, _ := s.Get(key)
	return config.StringSlice(v)
}

// Set stores a copy of value. It never fails.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = config.Clone(value)
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Path() string {
	return memoryPath
}
