package jobdescriptions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores job descriptions in memory and is safe for concurrent
// use. Identifiers start at 1 and are never reused within a process lifetime.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]JobDescriptionRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		byID:   make(map[int64]JobDescriptionRecord),
	}
}

// Create assigns the next id and stores the record.
func (r *MemoryRepo) Create(ctx context.Context, record JobDescriptionRecord) (JobDescriptionRecord, error) {
	if err := ctx.Err(); err != nil {
		return JobDescriptionRecord{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = r.nextID
	r.nextID++
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	r.byID[record.ID] = record
	return record, nil
}

// GetByID returns a job description by its id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (JobDescriptionRecord, error) {
	if err := ctx.Err(); err != nil {
		return JobDescriptionRecord{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.byID[id]
	if !ok {
		return JobDescriptionRecord{}, ErrNotFound
	}
	return record, nil
}

var _ Repo = (*MemoryRepo)(nil)
