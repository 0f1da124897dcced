package optimizations

import (
	"context"
	"fmt"

	"resume-optimizer/internal/jobdescriptions"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/resumes"
	"resume-optimizer/internal/shared/metrics"
	"resume-optimizer/resume/render"
)

// Service runs the optimization workflow and the download path. Both
// referenced records must exist before the gateway is invoked.
type Service struct {
	repo    Repo
	resumes resumes.Repo
	jobs    jobdescriptions.Repo
	gateway llm.Client
}

// NewService constructs a Service.
func NewService(repo Repo, resumeRepo resumes.Repo, jobRepo jobdescriptions.Repo, gateway llm.Client) *Service {
	return &Service{repo: repo, resumes: resumeRepo, jobs: jobRepo, gateway: gateway}
}

// OptimizeOutput is the stored record plus the source resume text.
type OptimizeOutput struct {
	Record          OptimizationRecord
	OriginalContent string
}

// Optimize fetches both referenced records, runs the gateway optimization,
// and stores the result.
func (s *Service) Optimize(ctx context.Context, resumeID, jobDescriptionID int64) (OptimizeOutput, error) {
	resume, err := s.resumes.GetByID(ctx, resumeID)
	if err != nil {
		return OptimizeOutput{}, fmt.Errorf("fetch resume %d: %w", resumeID, err)
	}
	job, err := s.jobs.GetByID(ctx, jobDescriptionID)
	if err != nil {
		return OptimizeOutput{}, fmt.Errorf("fetch job description %d: %w", jobDescriptionID, err)
	}

	started := metrics.NowMillis()
	result, err := s.gateway.Optimize(ctx, resume.OriginalContent, job.Content)
	if err != nil {
		metrics.IncOptimizationFailed()
		return OptimizeOutput{}, err
	}
	metrics.ObserveOptimizeDurationMs(metrics.NowMillis() - started)

	record, err := s.repo.Create(ctx, OptimizationRecord{
		ResumeID:         resume.ID,
		JobDescriptionID: job.ID,
		OptimizedContent: result.OptimizedContent,
		Improvements:     result.Improvements,
		MatchScore:       result.Improvements.MatchScore,
	})
	if err != nil {
		return OptimizeOutput{}, err
	}

	metrics.IncOptimizationCompleted()
	return OptimizeOutput{Record: record, OriginalContent: resume.OriginalContent}, nil
}

// Download renders the optimized content as a DOCX payload with the resolved
// theme and derives the download filename from the original upload.
type Download struct {
	FileName string
	Payload  []byte
}

// BuildDownload renders the stored optimization for streaming.
func (s *Service) BuildDownload(ctx context.Context, optimizationID int64, themeName string) (Download, error) {
	record, err := s.repo.GetByID(ctx, optimizationID)
	if err != nil {
		return Download{}, fmt.Errorf("fetch optimization %d: %w", optimizationID, err)
	}
	resume, err := s.resumes.GetByID(ctx, record.ResumeID)
	if err != nil {
		return Download{}, fmt.Errorf("fetch resume %d: %w", record.ResumeID, err)
	}

	payload, err := render.FromMarkup(record.OptimizedContent, render.ThemeByName(themeName))
	if err != nil {
		return Download{}, fmt.Errorf("render optimization %d: %w", optimizationID, err)
	}

	metrics.IncDownload()
	return Download{
		FileName: render.SuggestedFileName(resume.OriginalFilename),
		Payload:  payload,
	}, nil
}

// History lists optimizations recorded for a resume. The resume must exist.
func (s *Service) History(ctx context.Context, resumeID int64) ([]OptimizationRecord, error) {
	if _, err := s.resumes.GetByID(ctx, resumeID); err != nil {
		return nil, fmt.Errorf("fetch resume %d: %w", resumeID, err)
	}
	return s.repo.ListByResume(ctx, resumeID)
}
