package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"filebox/internal/application"
	"filebox/pkg/response"
)

// serviceError maps application errors to an HTTP status and a stable
// machine-readable kind. Anything unrecognized is a collaborator failure
// and surfaces as a 500 without internal detail.
func serviceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case errors.Is(err, application.ErrMissingEmail),
		errors.Is(err, application.ErrMissingPassword),
		errors.Is(err, application.ErrMissingName),
		errors.Is(err, application.ErrMissingType),
		errors.Is(err, application.ErrMissingData):
		response.Error(c, http.StatusBadRequest, "validation", err.Error(), nil)
	case errors.Is(err, application.ErrAlreadyExist):
		response.Error(c, http.StatusBadRequest, "conflict", err.Error(), nil)
	case errors.Is(err, application.ErrParentNotFound):
		response.Error(c, http.StatusBadRequest, "parent_not_found", err.Error(), nil)
	case errors.Is(err, application.ErrParentNotAFolder):
		response.Error(c, http.StatusBadRequest, "parent_not_a_folder", err.Error(), nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, application.ErrIsAFolder):
		response.Error(c, http.StatusBadRequest, "is_a_folder", err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal", "Internal server error", nil)
	}
}
