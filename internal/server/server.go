package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/jobdescriptions"
	"resume-optimizer/internal/optimizations"
	"resume-optimizer/internal/resumes"
	"resume-optimizer/internal/shared/config"
	"resume-optimizer/internal/shared/server/middleware"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config                config.Config
	ResumeHandler         *resumes.Handler
	JobDescriptionHandler *jobdescriptions.Handler
	OptimizationHandler   *optimizations.Handler
}

// NewRouter builds the gin engine with the middleware chain and all routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	registerRoutes(engine, deps)
	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
