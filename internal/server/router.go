package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/ai"
	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/export"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	UsersHandler   *users.Handler
	ResumesHandler *resumes.Handler
	ExportHandler  *export.Handler
	AIHandler      *ai.Handler
	GoogleAuth     *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Session-scoped routes sit behind the Auth middleware; registration, login,
// OAuth, and public share links do not.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterPublicRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterPublicRoutes(api)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth())
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(protected)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(protected)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(protected)
	}
	if deps.AIHandler != nil {
		deps.AIHandler.RegisterRoutes(protected)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
