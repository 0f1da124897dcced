package optimizations

import "context"

// Repo defines persistence operations for optimizations. Create assigns the
// id and creation timestamp and returns the stored record.
type Repo interface {
	Create(ctx context.Context, record OptimizationRecord) (OptimizationRecord, error)
	GetByID(ctx context.Context, id int64) (OptimizationRecord, error)
	ListByResume(ctx context.Context, resumeID int64) ([]OptimizationRecord, error)
}
