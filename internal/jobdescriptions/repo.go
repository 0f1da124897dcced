package jobdescriptions

import "context"

// Repo defines persistence operations for job descriptions. Create assigns
// the id and creation timestamp and returns the stored record.
type Repo interface {
	Create(ctx context.Context, record JobDescriptionRecord) (JobDescriptionRecord, error)
	GetByID(ctx context.Context, id int64) (JobDescriptionRecord, error)
}
