package datasetrepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
)

// Repository is the in-memory store for the three normalized activity tables.
// Saving replaces a table wholesale; readers get the stored value, which is
// never mutated after storage.
type Repository struct {
	mu     sync.RWMutex
	tables map[domain.TableKind]domain.NormalizedTable
}

func New() *Repository {
	return &Repository{
		tables: make(map[domain.TableKind]domain.NormalizedTable),
	}
}

func (r *Repository) Save(ctx context.Context, table domain.NormalizedTable) error {
	if !table.Kind.Valid() {
		return fmt.Errorf("unknown table kind: %s", table.Kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[table.Kind] = table
	return nil
}

// Get returns the stored table for a kind, or nil when nothing has been
// loaded yet.
func (r *Repository) Get(ctx context.Context, kind domain.TableKind) (*domain.NormalizedTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.tables[kind]
	if !ok {
		return nil, nil
	}
	return &table, nil
}
