package repository

import (
	"context"
	"sort"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// MemoryRepo is an in-process document store used in tests and when no
// database is configured. Documents are cloned on the way in and out.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*domain.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[uuid.UUID]*domain.Document)}
}

func (r *MemoryRepo) Create(_ context.Context, d *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[d.ID]; ok {
		return domain.Invalid("document %s already exists", d.ID)
	}
	r.docs[d.ID] = d.Clone()
	return nil
}

func (r *MemoryRepo) Get(_ context.Context, owner, id uuid.UUID) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[id]
	if !ok || d.OwnerID != owner {
		return nil, domain.DocumentNotFound()
	}
	return d.Clone(), nil
}

func (r *MemoryRepo) List(_ context.Context, owner uuid.UUID) ([]*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Document{}
	for _, d := range r.docs {
		if d.OwnerID == owner {
			out = append(out, d.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Update(_ context.Context, d *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.docs[d.ID]
	if !ok || cur.OwnerID != d.OwnerID {
		return domain.DocumentNotFound()
	}
	r.docs[d.ID] = d.Clone()
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, owner, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.docs[id]
	if !ok || d.OwnerID != owner {
		return domain.DocumentNotFound()
	}
	delete(r.docs, id)
	return nil
}
