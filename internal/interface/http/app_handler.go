package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"filebox/internal/domain/repository"
	"filebox/pkg/response"
)

// Pinger reports liveness of an external collaborator.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AppHandler serves the operational endpoints: collaborator health and
// record counts.
type AppHandler struct {
	Users    repository.UserRepository
	Files    repository.FileRepository
	Sessions Pinger
	DB       Pinger
	Logger   *logrus.Logger
}

func NewAppHandler(users repository.UserRepository, files repository.FileRepository, sessions, db Pinger, logger *logrus.Logger) *AppHandler {
	return &AppHandler{Users: users, Files: files, Sessions: sessions, DB: db, Logger: logger}
}

// GetStatus reports whether the session store and the database answer.
func (h *AppHandler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()
	redisOK := h.Sessions != nil && h.Sessions.Ping(ctx) == nil
	dbOK := h.DB != nil && h.DB.Ping(ctx) == nil
	response.Success(c, http.StatusOK, gin.H{"redis": redisOK, "db": dbOK}, "status", nil)
}

// GetStats reports how many users and files exist.
func (h *AppHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.Users.Count(ctx)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	files, err := h.Files.Count(ctx)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users, "files": files}, "stats", nil)
}
