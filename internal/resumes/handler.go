package resumes

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/extract"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20

// Handler exposes the upload endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the upload and original-file routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.GET("/resumes/:resumeId/file", h.originalFile)
}

type uploadResponse struct {
	ResumeID int64              `json:"resumeId"`
	Filename string             `json:"filename"`
	FileType string             `json:"fileType"`
	Analysis llm.ResumeAnalysis `json:"analysis"`
	Success  bool               `json:"success"`
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "File is too large (max 10MB)")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !extract.AllowedMediaType(mimeType) {
		respond.Error(c, http.StatusBadRequest, "Invalid file type. Only PDF, DOC, DOCX, and TXT files are allowed.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to process uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to process uploaded file")
		return
	}

	out, err := h.service.Upload(c.Request.Context(), UploadInput{
		FileName: fileHeader.Filename,
		MimeType: mimeType,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			respond.Error(c, http.StatusBadRequest, "Unable to extract text from the uploaded file")
		case errors.Is(err, extract.ErrLegacyDoc):
			respond.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "Invalid file type. Only PDF, DOC, DOCX, and TXT files are allowed.")
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusInternalServerError, "Failed to analyze resume")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to process uploaded file")
		}
		return
	}

	c.Set("resumeId", out.Record.ID)
	respond.OK(c, uploadResponse{
		ResumeID: out.Record.ID,
		Filename: out.Record.OriginalFilename,
		FileType: out.Record.FileType,
		Analysis: out.Analysis,
		Success:  true,
	})
}

func (h *Handler) originalFile(c *gin.Context) {
	resumeID, err := strconv.ParseInt(c.Param("resumeId"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Resume not found")
		return
	}

	record, data, err := h.service.OriginalFile(c.Request.Context(), resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Resume not found")
		case errors.Is(err, ErrNoStoredFile):
			respond.Error(c, http.StatusNotFound, "Original file not available")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to retrieve original file")
		}
		return
	}

	c.Set("resumeId", resumeID)
	c.Header("Content-Disposition", `attachment; filename="`+record.OriginalFilename+`"`)
	c.Data(http.StatusOK, "application/octet-stream", data)
}
