package resumes

import "context"

// Repo defines persistence operations for resumes. Create assigns the id and
// upload timestamp and returns the stored record.
type Repo interface {
	Create(ctx context.Context, record ResumeRecord) (ResumeRecord, error)
	GetByID(ctx context.Context, id int64) (ResumeRecord, error)
}
