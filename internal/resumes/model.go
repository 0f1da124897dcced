package resumes

import "time"

// ResumeRecord is one uploaded resume. Immutable after creation.
type ResumeRecord struct {
	ID               int64     `json:"id"`
	OriginalFilename string    `json:"originalFilename"`
	OriginalContent  string    `json:"originalContent"`
	FileType         string    `json:"fileType"`
	StorageKey       string    `json:"storageKey,omitempty"`
	UploadedAt       time.Time `json:"uploadedAt"`
}
