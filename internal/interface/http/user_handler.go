package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"filebox/internal/application"
	"filebox/internal/interface/middleware"
	"filebox/pkg/response"
	"filebox/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNew registers a user. The password never appears in any response.
func (h *UserHandler) PostNew(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation", "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": u.ID, "email": u.Email}, "user created", nil)
}

// GetMe returns the authenticated user's id and email.
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.Svc.GetMe(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": u.ID, "email": u.Email}, "me", nil)
}
