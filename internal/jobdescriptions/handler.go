package jobdescriptions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/shared/server/respond"
)

// Handler exposes the job-description analysis endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the analyze-job route on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-job", h.analyzeJob)
}

type analyzeJobRequest struct {
	Content string `json:"content"`
}

type analyzeJobResponse struct {
	JobDescriptionID int64           `json:"jobDescriptionId"`
	Analysis         llm.JobAnalysis `json:"analysis"`
	Success          bool            `json:"success"`
}

func (h *Handler) analyzeJob(c *gin.Context) {
	var req analyzeJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Job description content is required")
		return
	}

	out, err := h.service.Analyze(c.Request.Context(), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingContent):
			respond.Error(c, http.StatusBadRequest, "Job description content is required")
		case errors.Is(err, ErrTooLong):
			respond.Error(c, http.StatusBadRequest, "Job description is too long (max 5000 characters)")
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusInternalServerError, "Failed to analyze job description")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to analyze job description")
		}
		return
	}

	c.Set("jobDescriptionId", out.Record.ID)
	respond.OK(c, analyzeJobResponse{
		JobDescriptionID: out.Record.ID,
		Analysis:         out.Analysis,
		Success:          true,
	})
}
