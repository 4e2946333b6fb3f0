package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filebox/internal/application"
	"filebox/pkg/response"
)

const (
	// TokenHeader is the bearer credential header set by sign-in clients.
	TokenHeader = "X-Token"

	CtxUserIDKey = "userID"
	CtxTokenKey  = "token"
)

// TokenAuth resolves the X-Token header to a user identity through the
// session store. It sets userID and token in the Gin context on success.
func TokenAuth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		userID, err := auth.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "Unauthorized", nil)
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

// OptionalAuth resolves the token when present but never rejects the
// request; anonymous reads of public content go through it.
func OptionalAuth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token != "" {
			if userID, err := auth.ResolveIdentity(c.Request.Context(), token); err == nil {
				c.Set(CtxUserIDKey, userID)
				c.Set(CtxTokenKey, token)
			}
		}
		c.Next()
	}
}
