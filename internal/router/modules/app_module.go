package modules

import (
	"github.com/gin-gonic/gin"

	handlers "filebox/internal/interface/http"
)

// AppModule exposes the operational endpoints.
// Public: GET /status, GET /stats
type AppModule struct {
	Handler *handlers.AppHandler
}

func NewApp(h *handlers.AppHandler) *AppModule {
	return &AppModule{Handler: h}
}

func (m *AppModule) Register(rg *gin.RouterGroup) {
	rg.GET("/status", m.Handler.GetStatus)
	rg.GET("/stats", m.Handler.GetStats)
}
