package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"filebox/internal/application"
	"filebox/internal/container"
	handlers "filebox/internal/interface/http"
	"filebox/internal/interface/middleware"
)

// UserModule wires registration and profile routes.
// Public: POST /users (rate limited per IP)
// Protected: GET /users/me
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    *application.AuthService
}

func NewUser(h *handlers.UserHandler, auth *application.AuthService) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/users", registerLimiter, m.Handler.PostNew)

	auth := rg.Group("/")
	auth.Use(middleware.TokenAuth(m.Auth))
	auth.GET("/users/me", m.Handler.GetMe)
}
