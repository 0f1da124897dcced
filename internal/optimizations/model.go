package optimizations

import (
	"time"

	"resume-optimizer/internal/llm"
)

// OptimizationRecord is one completed optimization run. Immutable after
// creation. MatchScore duplicates Improvements.MatchScore for direct querying.
type OptimizationRecord struct {
	ID               int64            `json:"id"`
	ResumeID         int64            `json:"resumeId"`
	JobDescriptionID int64            `json:"jobDescriptionId"`
	OptimizedContent string           `json:"optimizedContent"`
	Improvements     llm.Improvements `json:"improvements"`
	MatchScore       int              `json:"matchScore"`
	CreatedAt        time.Time        `json:"createdAt"`
}
