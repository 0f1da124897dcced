package jobdescriptions

import (
	"time"

	"resume-optimizer/internal/llm"
)

// JobDescriptionRecord is one submitted job description. Analysis is attached
// before the record is stored, so stored records are immutable.
type JobDescriptionRecord struct {
	ID        int64            `json:"id"`
	Content   string           `json:"content"`
	Analysis  *llm.JobAnalysis `json:"analysis,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
