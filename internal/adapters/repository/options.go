package repository

import "github.com/okian/panelboard/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithCapacity pre-sizes the store for an expected number of records.
func WithCapacity(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.order = make([]string, 0, n)
			s.byID = make(map[string]model.PanelRecord, n)
		}
	}
}
