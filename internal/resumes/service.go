package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"resume-optimizer/internal/extract"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/shared/metrics"
	"resume-optimizer/internal/shared/storage/object"
	"resume-optimizer/internal/shared/telemetry"
)

// Service runs the upload workflow: extract text, retain the original bytes,
// store the record, analyze via the gateway.
type Service struct {
	repo    Repo
	objects object.ObjectStore
	gateway llm.Client
}

// NewService constructs a Service. objects may be nil when raw upload
// retention is disabled.
func NewService(repo Repo, objects object.ObjectStore, gateway llm.Client) *Service {
	return &Service{repo: repo, objects: objects, gateway: gateway}
}

// UploadInput carries one multipart upload.
type UploadInput struct {
	FileName string
	MimeType string
	Data     []byte
}

// UploadOutput is the stored record plus its analysis.
type UploadOutput struct {
	Record   ResumeRecord
	Analysis llm.ResumeAnalysis
}

// Upload extracts text from the payload, stores the resume, and analyzes it.
// Empty extracted text fails with ErrEmptyContent before any gateway call.
func (s *Service) Upload(ctx context.Context, input UploadInput) (UploadOutput, error) {
	text, err := extract.ExtractText(ctx, input.Data, input.MimeType, input.FileName)
	if err != nil {
		return UploadOutput{}, err
	}
	if strings.TrimSpace(text) == "" {
		return UploadOutput{}, ErrEmptyContent
	}

	record := ResumeRecord{
		OriginalFilename: input.FileName,
		OriginalContent:  text,
		FileType:         extract.FileTypeLabel(input.MimeType),
		StorageKey:       s.retainOriginal(ctx, input),
	}

	record, err = s.repo.Create(ctx, record)
	if err != nil {
		return UploadOutput{}, err
	}

	analysis, err := s.gateway.AnalyzeResume(ctx, text)
	if err != nil {
		return UploadOutput{}, err
	}

	metrics.IncResumeUploaded()
	return UploadOutput{Record: record, Analysis: analysis}, nil
}

// GetByID returns a stored resume.
func (s *Service) GetByID(ctx context.Context, id int64) (ResumeRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// OriginalFile returns the retained upload bytes for a resume. Resumes stored
// without retention (no object store, or retention failed) yield
// ErrNoStoredFile.
func (s *Service) OriginalFile(ctx context.Context, id int64) (ResumeRecord, []byte, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ResumeRecord{}, nil, err
	}
	if s.objects == nil || record.StorageKey == "" {
		return ResumeRecord{}, nil, ErrNoStoredFile
	}

	rc, err := s.objects.Open(ctx, record.StorageKey)
	if err != nil {
		return ResumeRecord{}, nil, fmt.Errorf("open stored file %s: %w", record.StorageKey, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return ResumeRecord{}, nil, fmt.Errorf("read stored file %s: %w", record.StorageKey, err)
	}
	return record, data, nil
}

// retainOriginal keeps the raw upload bytes for later reference. Retention is
// best-effort; a storage failure never fails the upload.
func (s *Service) retainOriginal(ctx context.Context, input UploadInput) string {
	if s.objects == nil {
		return ""
	}
	key, _, err := s.objects.Save(ctx, input.FileName, bytes.NewReader(input.Data))
	if err != nil {
		telemetry.Warn("upload.retention_failed", map[string]any{
			"filename": input.FileName,
			"err":      err.Error(),
		})
		return ""
	}
	return key
}
