package llm

import "strings"

const (
	defaultExperienceLevel = "Entry Level"
	defaultIndustry        = "General"
	defaultMatchScore      = 50
)

// NormalizeResumeAnalysis fills defaults so callers never see empty fields.
func NormalizeResumeAnalysis(a ResumeAnalysis) ResumeAnalysis {
	if strings.TrimSpace(a.ExperienceLevel) == "" {
		a.ExperienceLevel = defaultExperienceLevel
	}
	if strings.TrimSpace(a.Industry) == "" {
		a.Industry = defaultIndustry
	}
	if a.SkillCount < 0 {
		a.SkillCount = 0
	}
	if a.KeySkills == nil {
		a.KeySkills = []string{}
	}
	return a
}

// NormalizeJobAnalysis fills defaults so callers never see empty fields.
func NormalizeJobAnalysis(a JobAnalysis) JobAnalysis {
	if strings.TrimSpace(a.ExperienceLevel) == "" {
		a.ExperienceLevel = defaultExperienceLevel
	}
	if strings.TrimSpace(a.Industry) == "" {
		a.Industry = defaultIndustry
	}
	if a.RequiredSkills == nil {
		a.RequiredSkills = []string{}
	}
	if a.KeyRequirements == nil {
		a.KeyRequirements = []string{}
	}
	return a
}

// NormalizeOptimization clamps scores and counters and guarantees non-empty
// optimized content by falling back to the input resume text. A zero match
// score is treated as unreported and replaced with the neutral default.
func NormalizeOptimization(result OptimizationResult, resumeText string) OptimizationResult {
	if strings.TrimSpace(result.OptimizedContent) == "" {
		result.OptimizedContent = resumeText
	}
	if result.Improvements.MatchScore == 0 {
		result.Improvements.MatchScore = defaultMatchScore
	}
	if result.Improvements.MatchScore < 0 {
		result.Improvements.MatchScore = 0
	}
	if result.Improvements.MatchScore > 100 {
		result.Improvements.MatchScore = 100
	}
	if result.Improvements.KeywordsAdded < 0 {
		result.Improvements.KeywordsAdded = 0
	}
	if result.Improvements.SectionsImproved < 0 {
		result.Improvements.SectionsImproved = 0
	}
	if result.Improvements.ImprovementsList == nil {
		result.Improvements.ImprovementsList = []string{}
	}
	return result
}
