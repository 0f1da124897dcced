package openai

// Message is one chat turn sent to the completions endpoint.
type Message struct {
	Role    string
	Content string
}

const resumeAnalysisSystem = "You are a professional resume analyzer. Analyze the resume content and provide structured analysis. Respond with JSON in this format: { 'experienceLevel': string, 'skillCount': number, 'industry': string, 'keySkills': string[] }"

const jobAnalysisSystem = "You are a job description analyzer. Extract key requirements and skills from job descriptions. Respond with JSON in this format: { 'requiredSkills': string[], 'experienceLevel': string, 'industry': string, 'keyRequirements': string[] }"

const optimizeSystem = `You are an expert resume optimizer. Your task is to optimize a resume to better match a specific job description while maintaining truthfulness and professionalism.

Guidelines:
1. Keep all factual information accurate - don't fabricate experience or skills
2. Enhance descriptions to highlight relevant experience and skills
3. Add relevant keywords from the job description where appropriate
4. Improve formatting and structure if needed
5. Quantify achievements where possible
6. Focus on accomplishments that match job requirements

Respond with JSON in this format:
{
  "optimizedContent": "full optimized resume text",
  "improvements": {
    "matchScore": number (0-100),
    "keywordsAdded": number,
    "sectionsImproved": number,
    "improvementsList": ["improvement 1", "improvement 2", ...]
  }
}`

func buildResumeAnalysisPrompt(resumeText string) []Message {
	return []Message{
		{Role: "system", Content: resumeAnalysisSystem},
		{Role: "user", Content: "Analyze this resume content and extract key information:\n\n" + resumeText},
	}
}

func buildJobAnalysisPrompt(jobText string) []Message {
	return []Message{
		{Role: "system", Content: jobAnalysisSystem},
		{Role: "user", Content: "Analyze this job description and extract key requirements:\n\n" + jobText},
	}
}

func buildOptimizePrompt(resumeText, jobText string) []Message {
	user := "Please optimize this resume to better match the job description:\n\n" +
		"RESUME CONTENT:\n" + resumeText + "\n\n" +
		"JOB DESCRIPTION:\n" + jobText + "\n\n" +
		"Please optimize the resume while maintaining accuracy and professionalism."
	return []Message{
		{Role: "system", Content: optimizeSystem},
		{Role: "user", Content: user},
	}
}
