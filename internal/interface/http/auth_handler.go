package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"filebox/internal/application"
	"filebox/internal/interface/middleware"
	"filebox/pkg/response"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// GetConnect signs the user in with Basic credentials and returns the
// session token.
func (h *AuthHandler) GetConnect(c *gin.Context) {
	token, err := h.Svc.SignIn(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token}, "connected", nil)
}

// GetDisconnect revokes the session behind the current token.
func (h *AuthHandler) GetDisconnect(c *gin.Context) {
	token := c.GetString(middleware.CtxTokenKey)
	if err := h.Svc.SignOut(c.Request.Context(), token); err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
