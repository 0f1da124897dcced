package optimizations

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores optimizations in memory and is safe for concurrent use.
// Identifiers start at 1 and are never reused within a process lifetime.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]OptimizationRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		byID:   make(map[int64]OptimizationRecord),
	}
}

// Create assigns the next id and stores the record.
func (r *MemoryRepo) Create(ctx context.Context, record OptimizationRecord) (OptimizationRecord, error) {
	if err := ctx.Err(); err != nil {
		return OptimizationRecord{}, err
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

// GetByID returns an optimization by its id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (OptimizationRecord, error) {
	if err := ctx.Err(); err != nil {
		return OptimizationRecord{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.byID[id]
	if !ok {
		return OptimizationRecord{}, ErrNotFound
	}
	return record, nil
}

// ListByResume returns all optimizations for a resume, oldest first.
func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID int64) ([]OptimizationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	records := []OptimizationRecord{}
	for id := int64(1); id < r.nextID; id++ {
		record, ok := r.byID[id]
		if ok && record.ResumeID == resumeID {
			records = append(records, record)
		}
	}
	return records, nil
}

var _ Repo = (*MemoryRepo)(nil)
