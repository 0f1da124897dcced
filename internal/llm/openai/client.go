// Package openai implements llm.Client against the OpenAI Chat Completions
// API with JSON-mode responses.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/shared/telemetry"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	// Released May 13, 2024. Do not change unless explicitly requested.
	DefaultModel = "gpt-4o"
)

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client. Model falls back to DefaultModel
// when empty.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// AnalyzeResume summarizes resume text. Any provider failure collapses to
// llm.ErrUnavailable; the cause is logged here.
func (c *Client) AnalyzeResume(ctx context.Context, resumeText string) (llm.ResumeAnalysis, error) {
	var analysis llm.ResumeAnalysis
	if err := c.completeJSON(ctx, "analyze_resume", buildResumeAnalysisPrompt(resumeText), &analysis); err != nil {
		return llm.ResumeAnalysis{}, llm.ErrUnavailable
	}
	return llm.NormalizeResumeAnalysis(analysis), nil
}

// AnalyzeJob summarizes job description text.
func (c *Client) AnalyzeJob(ctx context.Context, jobText string) (llm.JobAnalysis, error) {
	var analysis llm.JobAnalysis
	if err := c.completeJSON(ctx, "analyze_job", buildJobAnalysisPrompt(jobText), &analysis); err != nil {
		return llm.JobAnalysis{}, llm.ErrUnavailable
	}
	return llm.NormalizeJobAnalysis(analysis), nil
}

// Optimize rewrites resume text against the job description.
func (c *Client) Optimize(ctx context.Context, resumeText, jobText string) (llm.OptimizationResult, error) {
	var result llm.OptimizationResult
	if err := c.completeJSON(ctx, "optimize", buildOptimizePrompt(resumeText, jobText), &result); err != nil {
		return llm.OptimizationResult{}, llm.ErrUnavailable
	}
	return llm.NormalizeOptimization(result, resumeText), nil
}

func (c *Client) completeJSON(ctx context.Context, op string, messages []Message, out any) error {
	raw, err := c.completeOnce(ctx, messages)
	if err != nil {
		telemetry.Error("llm.error", map[string]any{
			"op":    op,
			"model": c.model,
			"err":   err.Error(),
		})
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		telemetry.Error("llm.error", map[string]any{
			"op":    op,
			"model": c.model,
			"err":   fmt.Sprintf("decode model output: %v", err),
		})
		return err
	}
	return nil
}

func (c *Client) completeOnce(ctx context.Context, messages []Message) (json.RawMessage, error) {
	reqMessages := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, chatMessage{Role: m.Role, Content: m.Content})
	}
	payload, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       reqMessages,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("openai request timeout: %w", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("openai response empty content")
	}
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("invalid JSON from OpenAI")
	}
	return json.RawMessage(content), nil
}

var _ llm.Client = (*Client)(nil)
