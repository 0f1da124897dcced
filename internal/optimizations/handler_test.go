package optimizations

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/jobdescriptions"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/resumes"
)

type stubGateway struct {
	result llm.OptimizationResult
	err    error
	calls  int
}

func (s *stubGateway) AnalyzeResume(ctx context.Context, resumeText string) (llm.ResumeAnalysis, error) {
	return llm.ResumeAnalysis{}, llm.ErrUnavailable
}

func (s *stubGateway) AnalyzeJob(ctx context.Context, jobText string) (llm.JobAnalysis, error) {
	return llm.JobAnalysis{}, llm.ErrUnavailable
}

func (s *stubGateway) Optimize(ctx context.Context, resumeText, jobText string) (llm.OptimizationResult, error) {
	s.calls++
	if s.err != nil {
		return llm.OptimizationResult{}, s.err
	}
	return s.result, nil
}

type fixture struct {
	router  *gin.Engine
	repo    *MemoryRepo
	resumes *resumes.MemoryRepo
	jobs    *jobdescriptions.MemoryRepo
	gateway *stubGateway
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		repo:    NewMemoryRepo(),
		resumes: resumes.NewMemoryRepo(),
		jobs:    jobdescriptions.NewMemoryRepo(),
		gateway: &stubGateway{result: llm.OptimizationResult{
			OptimizedContent: "## Summary\n- Shipped things",
			Improvements: llm.Improvements{
				MatchScore:       85,
				KeywordsAdded:    4,
				SectionsImproved: 2,
				ImprovementsList: []string{"added keywords"},
			},
		}},
	}

	handler := NewHandler(NewService(f.repo, f.resumes, f.jobs, f.gateway))
	f.router = gin.New()
	handler.RegisterRoutes(f.router.Group("/api"))
	return f
}

func (f *fixture) seedResume(t *testing.T) resumes.ResumeRecord {
	t.Helper()
	record, err := f.resumes.Create(context.Background(), resumes.ResumeRecord{
		OriginalFilename: "jane_doe.pdf",
		OriginalContent:  "Jane Doe\nEXPERIENCE\nLed a team of 5",
		FileType:         "PDF",
	})
	if err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	return record
}

func (f *fixture) seedJob(t *testing.T) jobdescriptions.JobDescriptionRecord {
	t.Helper()
	record, err := f.jobs.Create(context.Background(), jobdescriptions.JobDescriptionRecord{
		Content: "Looking for a Go engineer",
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return record
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestOptimizeSuccess(t *testing.T) {
	f := newFixture(t)
	resume := f.seedResume(t)
	job := f.seedJob(t)

	resp := postJSON(t, f.router, "/api/optimize", `{"resumeId":1,"jobDescriptionId":1}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		OptimizationID   int64            `json:"optimizationId"`
		OriginalContent  string           `json:"originalContent"`
		OptimizedContent string           `json:"optimizedContent"`
		Improvements     llm.Improvements `json:"improvements"`
		Success          bool             `json:"success"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.OptimizationID != 1 || !payload.Success {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.OriginalContent != resume.OriginalContent {
		t.Fatalf("originalContent = %q", payload.OriginalContent)
	}
	if payload.Improvements.MatchScore != 85 {
		t.Fatalf("improvements = %+v", payload.Improvements)
	}

	stored, err := f.repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("stored record missing: %v", err)
	}
	if stored.ResumeID != resume.ID || stored.JobDescriptionID != job.ID || stored.MatchScore != 85 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestOptimizeMissingIDs(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{`{}`, `{"resumeId":1}`, `{"jobDescriptionId":1}`, `{"resumeId":0,"jobDescriptionId":0}`} {
		resp := postJSON(t, f.router, "/api/optimize", body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d", body, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), "Resume ID and Job Description ID are required") {
			t.Errorf("body %q: response = %s", body, resp.Body.String())
		}
	}
	if f.gateway.calls != 0 {
		t.Fatal("gateway must not be called for invalid requests")
	}
}

func TestOptimizeUnknownResume(t *testing.T) {
	f := newFixture(t)
	f.seedJob(t)

	resp := postJSON(t, f.router, "/api/optimize", `{"resumeId":99999,"jobDescriptionId":1}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Resume not found") {
		t.Fatalf("body = %s", resp.Body.String())
	}
	if f.gateway.calls != 0 {
		t.Fatal("gateway must not be called when a reference is missing")
	}
}

func TestOptimizeUnknownJobDescription(t *testing.T) {
	f := newFixture(t)
	f.seedResume(t)

	resp := postJSON(t, f.router, "/api/optimize", `{"resumeId":1,"jobDescriptionId":99999}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Job description not found") {
		t.Fatalf("body = %s", resp.Body.String())
	}
	if f.gateway.calls != 0 {
		t.Fatal("gateway must not be called when a reference is missing")
	}
}

func TestOptimizeGatewayFailure(t *testing.T) {
	f := newFixture(t)
	f.seedResume(t)
	f.seedJob(t)
	f.gateway.err = llm.ErrUnavailable

	resp := postJSON(t, f.router, "/api/optimize", `{"resumeId":1,"jobDescriptionId":1}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Failed to optimize resume") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestDownloadSuccess(t *testing.T) {
	f := newFixture(t)
	f.seedResume(t)
	f.seedJob(t)
	postJSON(t, f.router, "/api/optimize", `{"resumeId":1,"jobDescriptionId":1}`)

	resp := get(t, f.router, "/api/download/1")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Content-Type"); !strings.Contains(got, "wordprocessingml") {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := resp.Header().Get("Content-Disposition"); got != `attachment; filename="optimized_jane_doe.docx"` {
		t.Fatalf("Content-Disposition = %q", got)
	}

	payload := resp.Body.Bytes()
	if _, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload))); err != nil {
		t.Fatalf("payload is not a zip package: %v", err)
	}
}

func TestDownloadUnknownThemeFallsBack(t *testing.T) {
	f := newFixture(t)
	f.seedResume(t)
	f.seedJob(t)
	postJSON(t, f.router, "/api/optimize", `{"resumeId":1,"jobDescriptionId":1}`)

	resp := get(t, f.router, "/api/download/1?theme=neon")
	if resp.Code != http.StatusOK {
		t.Fatalf("unknown theme must fall back, status = %d body = %s", resp.Code, resp.Body.String())
	}
}

func TestDownloadUnknownOptimization(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/api/download/42", "/api/download/abc"} {
		resp := get(t, f.router, path)
		if resp.Code != http.StatusNotFound {
			t.Errorf("path %s: status = %d", path, resp.Code)
		}
		if !strings.Contains(resp.Body.String(), "Optimization not found") {
			t.Errorf("path %s: body = %s", path, resp.Body.String())
		}
	}
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	f.seedResume(t)
	f.seedJob(t)
	f.seedJob(t)
	postJSON(t, f.router, "/api/optimize", `{"resumeId":1,"jobDescriptionId":1}`)
	postJSON(t, f.router, "/api/optimize", `{"resumeId":1,"jobDescriptionId":2}`)

	resp := get(t, f.router, "/api/resumes/1/optimizations")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		ResumeID      int64 `json:"resumeId"`
		Optimizations []struct {
			OptimizationID   int64 `json:"optimizationId"`
			JobDescriptionID int64 `json:"jobDescriptionId"`
			MatchScore       int   `json:"matchScore"`
		} `json:"optimizations"`
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Optimizations) != 2 || !payload.Success {
		t.Fatalf("payload = %+v", payload)
	}
	if payload.Optimizations[1].JobDescriptionID != 2 {
		t.Fatalf("entries = %+v", payload.Optimizations)
	}
}

func TestHistoryUnknownResume(t *testing.T) {
	f := newFixture(t)

	resp := get(t, f.router, "/api/resumes/42/optimizations")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Resume not found") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}
