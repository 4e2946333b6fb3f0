package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"filebox/internal/application"
	"filebox/internal/container"
	handlers "filebox/internal/interface/http"
	"filebox/internal/interface/middleware"
)

// FileModule wires the file endpoints.
// Protected: POST /files, GET /files, GET /files/:id,
//            PUT /files/:id/publish, PUT /files/:id/unpublish
// Public-or-authenticated: GET /files/:id/data
type FileModule struct {
	Handler *handlers.FileHandler
	Auth    *application.AuthService
}

func NewFile(h *handlers.FileHandler, auth *application.AuthService) *FileModule {
	return &FileModule{Handler: h, Auth: auth}
}

func (m *FileModule) Register(rg *gin.RouterGroup) {
	// Content reads resolve the token when present but stay open for
	// published files.
	rg.GET("/files/:id/data", middleware.OptionalAuth(m.Auth), m.Handler.GetFile)

	auth := rg.Group("/")
	auth.Use(middleware.TokenAuth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.POST("/files", m.Handler.PostUpload)
		auth.GET("/files", m.Handler.GetIndex)
		auth.GET("/files/:id", m.Handler.GetShow)
		auth.PUT("/files/:id/publish", m.Handler.PutPublish)
		auth.PUT("/files/:id/unpublish", m.Handler.PutUnpublish)
	}
}
