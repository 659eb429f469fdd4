package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/okian/panelboard/internal/domain/model"
	"github.com/okian/panelboard/pkg/metrics"
)

// MemoryStore is an insertion-ordered, in-memory Store.
// Records are cloned on the way in and out so callers never share metadata maps.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]model.PanelRecord
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	if s.byID == nil {
		s.byID = make(map[string]model.PanelRecord)
	}
	return s
}

// Put implements Store.
func (s *MemoryStore) Put(ctx context.Context, rec model.PanelRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		metrics.RecordErrorByComponent("repository", "invalid_record")
		return false, fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	rec = rec.Clone()
	rec.ID = id

	s.mu.Lock()
	_, exists := s.byID[id]
	if !exists {
		s.order = append(s.order, id)
	}
	s.byID[id] = rec
	n := len(s.order)
	s.mu.Unlock()

	metrics.UpdatePanelsStored(n)
	return !exists, nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (model.PanelRecord, error) {
	s.mu.RLock()
	rec, ok := s.byID[strings.TrimSpace(id)]
	s.mu.RUnlock()
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.PanelRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec.Clone(), nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context, q Query) ([]model.PanelRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	hint := len(s.order)
	if q.Limit > 0 && q.Limit < hint {
		hint = q.Limit
	}
	out := make([]model.PanelRecord, 0, hint)
	for _, id := range s.order {
		rec := s.byID[id]
		if !q.Match(rec) {
			continue
		}
		out = append(out, rec.Clone())
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
