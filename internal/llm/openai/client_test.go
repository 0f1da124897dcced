package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-optimizer/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "gpt-4o")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = server.URL
	return client, server
}

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Fatalf("encode reply: %v", err)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("", "gpt-4o"); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestNewClientDefaultsModel(t *testing.T) {
	client, err := NewClient("key", "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.model != DefaultModel {
		t.Fatalf("model = %q", client.model)
	}
}

func TestAnalyzeResume(t *testing.T) {
	var gotReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		chatReply(t, w, `{"experienceLevel":"Senior","skillCount":8,"industry":"Fintech","keySkills":["Go"]}`)
	})

	analysis, err := client.AnalyzeResume(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("AnalyzeResume: %v", err)
	}
	if analysis.ExperienceLevel != "Senior" || analysis.SkillCount != 8 || analysis.Industry != "Fintech" {
		t.Fatalf("analysis = %+v", analysis)
	}
	if gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %+v", gotReq.ResponseFormat)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestAnalyzeResumeNormalizesSparseOutput(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, `{}`)
	})

	analysis, err := client.AnalyzeResume(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("AnalyzeResume: %v", err)
	}
	if analysis.ExperienceLevel != "Entry Level" || analysis.Industry != "General" {
		t.Fatalf("defaults not applied: %+v", analysis)
	}
	if analysis.KeySkills == nil {
		t.Fatal("KeySkills should be an empty slice")
	}
}

func TestAnalyzeJob(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, `{"requiredSkills":["Go","SQL"],"experienceLevel":"Mid Level","industry":"SaaS","keyRequirements":["5 years experience"]}`)
	})

	analysis, err := client.AnalyzeJob(context.Background(), "job text")
	if err != nil {
		t.Fatalf("AnalyzeJob: %v", err)
	}
	if len(analysis.RequiredSkills) != 2 || analysis.ExperienceLevel != "Mid Level" {
		t.Fatalf("analysis = %+v", analysis)
	}
}

func TestOptimizeNormalizes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, `{"optimizedContent":"","improvements":{"matchScore":150,"keywordsAdded":-2,"sectionsImproved":3}}`)
	})

	result, err := client.Optimize(context.Background(), "original resume", "job")
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if result.OptimizedContent != "original resume" {
		t.Errorf("OptimizedContent = %q", result.OptimizedContent)
	}
	if result.Improvements.MatchScore != 100 || result.Improvements.KeywordsAdded != 0 {
		t.Errorf("improvements = %+v", result.Improvements)
	}
	if result.Improvements.ImprovementsList == nil {
		t.Error("ImprovementsList should be an empty slice")
	}
}

func TestProviderErrorCollapsesToUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_error"}}`))
	})

	_, err := client.AnalyzeResume(context.Background(), "resume")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNonJSONContentCollapsesToUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, "I cannot do that")
	})

	_, err := client.AnalyzeJob(context.Background(), "job")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestEmptyChoicesCollapsesToUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Optimize(context.Background(), "resume", "job")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
