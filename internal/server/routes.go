package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/services/health"
	"resume-optimizer/internal/shared/metrics"
)

func registerRoutes(r *gin.Engine, deps RouterDeps) {
	healthSvc := health.NewService()

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())

	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.JobDescriptionHandler != nil {
		deps.JobDescriptionHandler.RegisterRoutes(api)
	}
	if deps.OptimizationHandler != nil {
		deps.OptimizationHandler.RegisterRoutes(api)
	}
}
