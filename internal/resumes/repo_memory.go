package resumes

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores resumes in memory and is safe for concurrent use.
// Identifiers start at 1 and are never reused within a process lifetime.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]ResumeRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		byID:   make(map[int64]ResumeRecord),
	}
}

// Create assigns the next id and stores the record.
func (r *MemoryRepo) Create(ctx context.Context, record ResumeRecord) (ResumeRecord, error) {
	if err := ctx.Err(); err != nil {
		return ResumeRecord{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = r.nextID
	r.nextID++
	if record.UploadedAt.IsZero() {
		record.UploadedAt = time.Now().UTC()
	}
	r.byID[record.ID] = record
	return record, nil
}

// GetByID returns a resume by its id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (ResumeRecord, error) {
	if err := ctx.Err(); err != nil {
		return ResumeRecord{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.byID[id]
	if !ok {
		return ResumeRecord{}, ErrNotFound
	}
	return record, nil
}

var _ Repo = (*MemoryRepo)(nil)
