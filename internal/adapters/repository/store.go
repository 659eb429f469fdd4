// Package repository holds panel records and answers filtered searches over them.
package repository

import (
	"context"
	"strings"

	"github.com/okian/panelboard/internal/domain/distribution"
	"github.com/okian/panelboard/internal/domain/model"
)

// Query narrows a panel search. Zero values disable a filter.
type Query struct {
	Gender string
	Region string
	MinAge int
	MaxAge int
	// Text matches ID or name, case-insensitively.
	Text  string
	Limit int
}

// Match reports whether rec passes every filter in q. Limit is not consulted.
func (q Query) Match(rec model.PanelRecord) bool {
	if q.Gender != "" && strings.TrimSpace(rec.Gender) != q.Gender {
		return false
	}
	if q.Region != "" {
		if region, ok := distribution.ResolveRegion(rec); !ok || region != q.Region {
			return false
		}
	}
	if q.MinAge > 0 && rec.Age < q.MinAge {
		return false
	}
	if q.MaxAge > 0 && rec.Age > q.MaxAge {
		return false
	}
	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(rec.ID), needle) &&
			!strings.Contains(strings.ToLower(rec.Name), needle) {
			return false
		}
	}
	return true
}

// Store provides read/write access to panel records.
type Store interface {
	// Put inserts or replaces a record by ID. created is false on replace.
	Put(ctx context.Context, rec model.PanelRecord) (created bool, err error)

	// Get returns the record with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (model.PanelRecord, error)

	// List returns matching records in insertion order.
	List(ctx context.Context, q Query) ([]model.PanelRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
