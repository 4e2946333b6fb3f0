package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"filebox/internal/application"
	"filebox/internal/container"
	handlers "filebox/internal/interface/http"
	"filebox/internal/interface/middleware"
)

// AuthModule wires the session endpoints.
// Public: GET /connect (rate limited per IP)
// Protected: GET /disconnect
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *application.AuthService
}

func NewAuth(h *handlers.AuthHandler, auth *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	connectLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/connect", connectLimiter, m.Handler.GetConnect)

	auth := rg.Group("/")
	auth.Use(middleware.TokenAuth(m.Auth))
	auth.GET("/disconnect", m.Handler.GetDisconnect)
}
