package store

import (
	"context"
	"sync"
	"time"
)

type studentKey struct{ roll, number string }

// MemoryRepo keeps records in process memory. It is used when no database
// is configured and in tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	records map[studentKey]Record
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		records: make(map[studentKey]Record),
		now:     time.Now,
	}
}

func (r *MemoryRepo) FindByStudent(_ context.Context, roll, number string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[studentKey{roll, number}]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) Insert(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := studentKey{rec.Roll, rec.Number}
	if _, ok := r.records[key]; ok {
		return ErrDuplicate
	}

	r.nextID++
	now := r.now()
	rec.ID = r.nextID
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.records[key] = *rec
	return nil
}

func (r *MemoryRepo) Update(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := studentKey{rec.Roll, rec.Number}
	old, ok := r.records[key]
	if !ok {
		return ErrNotFound
	}
	rec.ID = old.ID
	rec.CreatedAt = old.CreatedAt
	rec.UpdatedAt = r.now()
	r.records[key] = *rec
	return nil
}

// Len returns the number of stored records.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *MemoryRepo) Ping(context.Context) error { return nil }
