package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"filebox/internal/application"
	"filebox/internal/domain/entity"
	"filebox/internal/domain/repository"
	"filebox/internal/interface/middleware"
	"filebox/pkg/response"
	"filebox/pkg/validation"
)

type FileHandler struct {
	Svc    *application.FileService
	Logger *logrus.Logger
}

func NewFileHandler(svc *application.FileService, logger *logrus.Logger) *FileHandler {
	return &FileHandler{Svc: svc, Logger: logger}
}

type createFileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// fileView shapes a File for API responses. The blob path never leaves the
// server.
func fileView(f *entity.File) gin.H {
	return gin.H{
		"id":       f.ID,
		"userId":   f.UserID,
		"name":     f.Name,
		"type":     f.Type,
		"isPublic": f.IsPublic,
		"parentId": f.ParentID,
	}
}

// PostUpload creates a folder or uploads base64 content.
func (h *FileHandler) PostUpload(c *gin.Context) {
	var req createFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation", "invalid payload", validation.ToDetails(err))
		return
	}
	f, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.CreateFileInput{
		Name:     req.Name,
		Type:     entity.FileType(req.Type),
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, fileView(f), "file created", nil)
}

// GetShow returns one of the requester's files by id.
func (h *FileHandler) GetShow(c *gin.Context) {
	f, err := h.Svc.GetByID(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"))
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fileView(f), "file", nil)
}

// GetIndex lists the requester's files under a parent, 20 per page.
func (h *FileHandler) GetIndex(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	parentID := c.DefaultQuery("parentId", entity.RootParentID)

	files, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), parentID, page)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	views := make([]gin.H, 0, len(files))
	for _, f := range files {
		views = append(views, fileView(f))
	}
	response.Success(c, http.StatusOK, views, "files", gin.H{
		"page":     page,
		"pageSize": repository.PageSize,
	})
}

// PutPublish makes a file readable by anyone.
func (h *FileHandler) PutPublish(c *gin.Context) {
	h.setVisibility(c, true)
}

// PutUnpublish restricts a file back to its owner.
func (h *FileHandler) PutUnpublish(c *gin.Context) {
	h.setVisibility(c, false)
}

func (h *FileHandler) setVisibility(c *gin.Context, isPublic bool) {
	f, err := h.Svc.SetVisibility(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"), isPublic)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fileView(f), "visibility updated", nil)
}

// GetFile streams a file's raw bytes with a MIME type derived from its
// name. Works anonymously for published files; size selects a thumbnail.
func (h *FileHandler) GetFile(c *gin.Context) {
	content, err := h.Svc.ReadContent(
		c.Request.Context(),
		c.GetString(middleware.CtxUserIDKey),
		c.Param("id"),
		c.Query("size"),
	)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	c.Data(http.StatusOK, content.MimeType, content.Data)
}
