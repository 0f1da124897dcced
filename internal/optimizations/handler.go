package optimizations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/jobdescriptions"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/resumes"
	"resume-optimizer/internal/shared/server/respond"
	"resume-optimizer/resume/render"
)

// Handler exposes the optimize, download, and history endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the optimization routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.optimize)
	rg.GET("/download/:optimizationId", h.download)
	rg.GET("/resumes/:resumeId/optimizations", h.history)
}

type optimizeRequest struct {
	ResumeID         int64 `json:"resumeId"`
	JobDescriptionID int64 `json:"jobDescriptionId"`
}

type optimizeResponse struct {
	OptimizationID   int64            `json:"optimizationId"`
	OriginalContent  string           `json:"originalContent"`
	OptimizedContent string           `json:"optimizedContent"`
	Improvements     llm.Improvements `json:"improvements"`
	Success          bool             `json:"success"`
}

func (h *Handler) optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Resume ID and Job Description ID are required")
		return
	}
	if req.ResumeID == 0 || req.JobDescriptionID == 0 {
		respond.Error(c, http.StatusBadRequest, "Resume ID and Job Description ID are required")
		return
	}

	out, err := h.service.Optimize(c.Request.Context(), req.ResumeID, req.JobDescriptionID)
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found")
		case errors.Is(err, jobdescriptions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Job description not found")
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusInternalServerError, "Failed to optimize resume")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to optimize resume")
		}
		return
	}

	c.Set("optimizationId", out.Record.ID)
	respond.OK(c, optimizeResponse{
		OptimizationID:   out.Record.ID,
		OriginalContent:  out.OriginalContent,
		OptimizedContent: out.Record.OptimizedContent,
		Improvements:     out.Record.Improvements,
		Success:          true,
	})
}

func (h *Handler) download(c *gin.Context) {
	optimizationID, err := strconv.ParseInt(c.Param("optimizationId"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Optimization not found")
		return
	}

	download, err := h.service.BuildDownload(c.Request.Context(), optimizationID, c.Query("theme"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Optimization not found")
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to generate download")
		}
		return
	}

	c.Set("optimizationId", optimizationID)
	c.Header("Content-Disposition", `attachment; filename="`+download.FileName+`"`)
	c.Data(http.StatusOK, render.MimeDOCX, download.Payload)
}

type historyEntry struct {
	OptimizationID   int64            `json:"optimizationId"`
	JobDescriptionID int64            `json:"jobDescriptionId"`
	MatchScore       int              `json:"matchScore"`
	Improvements     llm.Improvements `json:"improvements"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type historyResponse struct {
	ResumeID      int64          `json:"resumeId"`
	Optimizations []historyEntry `json:"optimizations"`
	Success       bool           `json:"success"`
}

func (h *Handler) history(c *gin.Context) {
	resumeID, err := strconv.ParseInt(c.Param("resumeId"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Resume not found")
		return
	}

	records, err := h.service.History(c.Request.Context(), resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to list optimizations")
		return
	}

	c.Set("resumeId", resumeID)
	entries := make([]historyEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, historyEntry{
			OptimizationID:   record.ID,
			JobDescriptionID: record.JobDescriptionID,
			MatchScore:       record.MatchScore,
			Improvements:     record.Improvements,
			CreatedAt:        record.CreatedAt,
		})
	}
	respond.OK(c, historyResponse{ResumeID: resumeID, Optimizations: entries, Success: true})
}
