// Package llm abstracts the analysis and optimization model provider.
package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for resume and job analysis.
type Client interface {
	AnalyzeResume(ctx context.Context, resumeText string) (ResumeAnalysis, error)
	AnalyzeJob(ctx context.Context, jobText string) (JobAnalysis, error)
	Optimize(ctx context.Context, resumeText, jobText string) (OptimizationResult, error)
}

// ResumeAnalysis summarizes an uploaded resume.
type ResumeAnalysis struct {
	ExperienceLevel string   `json:"experienceLevel"`
	SkillCount      int      `json:"skillCount"`
	Industry        string   `json:"industry"`
	KeySkills       []string `json:"keySkills"`
}

// JobAnalysis summarizes a submitted job description.
type JobAnalysis struct {
	RequiredSkills  []string `json:"requiredSkills"`
	ExperienceLevel string   `json:"experienceLevel"`
	Industry        string   `json:"industry"`
	KeyRequirements []string `json:"keyRequirements"`
}

// Improvements quantifies what the optimizer changed.
type Improvements struct {
	MatchScore       int      `json:"matchScore"`
	KeywordsAdded    int      `json:"keywordsAdded"`
	SectionsImproved int      `json:"sectionsImproved"`
	ImprovementsList []string `json:"improvementsList"`
}

// OptimizationResult is the optimizer output after normalization.
type OptimizationResult struct {
	OptimizedContent string       `json:"optimizedContent"`
	Improvements     Improvements `json:"improvements"`
}

// ErrUnavailable is the single failure callers see from provider
// implementations. The underlying cause is logged at the provider, never
// surfaced to the caller.
var ErrUnavailable = errors.New("analysis service unavailable")

// PlaceholderClient fails every call. Used when no provider is configured so
// the rest of the application can still start.
type PlaceholderClient struct{}

func (PlaceholderClient) AnalyzeResume(ctx context.Context, resumeText string) (ResumeAnalysis, error) {
	return ResumeAnalysis{}, ErrUnavailable
}

func (PlaceholderClient) AnalyzeJob(ctx context.Context, jobText string) (JobAnalysis, error) {
	return JobAnalysis{}, ErrUnavailable
}

func (PlaceholderClient) Optimize(ctx context.Context, resumeText, jobText string) (OptimizationResult, error) {
	return OptimizationResult{}, ErrUnavailable
}

var _ Client = PlaceholderClient{}
