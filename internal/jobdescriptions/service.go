package jobdescriptions

import (
	"context"
	"strings"
	"unicode/utf8"

	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/shared/metrics"
)

// Service runs the job-description workflow: validate, analyze via the
// gateway, store with the analysis attached.
type Service struct {
	repo    Repo
	gateway llm.Client
}

// NewService constructs a Service.
func NewService(repo Repo, gateway llm.Client) *Service {
	return &Service{repo: repo, gateway: gateway}
}

// AnalyzeOutput is the stored record plus its analysis.
type AnalyzeOutput struct {
	Record   JobDescriptionRecord
	Analysis llm.JobAnalysis
}

// Analyze validates the content bound, analyzes it, and stores the record.
// The length bound is enforced before any gateway call is attempted.
func (s *Service) Analyze(ctx context.Context, content string) (AnalyzeOutput, error) {
	if strings.TrimSpace(content) == "" {
		return AnalyzeOutput{}, ErrMissingContent
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return AnalyzeOutput{}, ErrTooLong
	}

	analysis, err := s.gateway.AnalyzeJob(ctx, content)
	if err != nil {
		return AnalyzeOutput{}, err
	}

	record, err := s.repo.Create(ctx, JobDescriptionRecord{
		Content:  strings.TrimSpace(content),
		Analysis: &analysis,
	})
	if err != nil {
		return AnalyzeOutput{}, err
	}

	metrics.IncJobAnalyzed()
	return AnalyzeOutput{Record: record, Analysis: analysis}, nil
}

// GetByID returns a stored job description.
func (s *Service) GetByID(ctx context.Context, id int64) (JobDescriptionRecord, error) {
	return s.repo.GetByID(ctx, id)
}
