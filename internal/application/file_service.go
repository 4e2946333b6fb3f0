package application

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"filebox/internal/domain/entity"
	"filebox/internal/domain/repository"
	"filebox/internal/infrastructure/blob"
	"filebox/internal/infrastructure/queue"
)

// BlobStore persists raw content under the configured content root.
type BlobStore interface {
	Write(data []byte) (string, error)
	Read(path string) ([]byte, error)
}

// ThumbnailWidths are the generated sizes a content read may request.
var ThumbnailWidths = map[string]bool{"500": true, "250": true, "100": true}

// FileService orchestrates the upload and retrieval workflow: validation,
// parent-folder checks, metadata persistence, blob writes and the
// post-upload job dispatch.
type FileService struct {
	Repo      repository.FileRepository
	Blobs     BlobStore
	Queue     JobPublisher
	FileQueue string
	Logger    *logrus.Logger
}

func NewFileService(repo repository.FileRepository, blobs BlobStore, pub JobPublisher, fileQueue string, logger *logrus.Logger) *FileService {
	return &FileService{Repo: repo, Blobs: blobs, Queue: pub, FileQueue: fileQueue, Logger: logger}
}

// CreateFileInput carries the upload parameters. Data is base64-encoded
// content, required for non-folder types.
type CreateFileInput struct {
	Name     string
	Type     entity.FileType
	ParentID string
	IsPublic bool
	Data     string
}

// Create validates the input, checks the parent folder, persists metadata
// (and content for non-folders) and enqueues the post-upload job. Nothing
// is persisted before validation and the parent check pass. A failure
// between blob write and metadata commit is accepted and reconciled
// out-of-band.
func (s *FileService) Create(ctx context.Context, ownerID string, in CreateFileInput) (*entity.File, error) {
	if in.Name == "" {
		return nil, ErrMissingName
	}
	if !in.Type.Valid() {
		return nil, ErrMissingType
	}
	if in.Type != entity.TypeFolder && in.Data == "" {
		return nil, ErrMissingData
	}
	if in.ParentID == "" {
		in.ParentID = entity.RootParentID
	}

	if in.ParentID != entity.RootParentID {
		parent, err := s.Repo.GetByID(ctx, in.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("fetch parent: %w", err)
		}
		if parent.Type != entity.TypeFolder {
			return nil, ErrParentNotAFolder
		}
	}

	f := &entity.File{
		UserID:   ownerID,
		Name:     in.Name,
		Type:     in.Type,
		ParentID: in.ParentID,
		IsPublic: in.IsPublic,
	}

	if in.Type != entity.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil {
			return nil, ErrMissingData
		}
		path, err := s.Blobs.Write(data)
		if err != nil {
			return nil, fmt.Errorf("write blob: %w", err)
		}
		f.LocalPath = path
	}

	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	if f.HasContent() {
		s.dispatch(queue.FileJob{FileID: f.ID, UserID: f.UserID})
	}
	return f, nil
}

// GetByID fetches a file owned by the requester. Records owned by someone
// else read as not-found so existence is never leaked.
func (s *FileService) GetByID(ctx context.Context, requesterID, fileID string) (*entity.File, error) {
	f, err := s.Repo.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	if f.UserID != requesterID {
		return nil, ErrNotFound
	}
	return f, nil
}

// List returns one page of the requester's files under parentID. A parent
// that does not exist or is not theirs simply has no visible contents.
func (s *FileService) List(ctx context.Context, requesterID, parentID string, page int) ([]*entity.File, error) {
	if parentID == "" {
		parentID = entity.RootParentID
	}
	files, err := s.Repo.ListByParent(ctx, requesterID, parentID, page)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

// SetVisibility publishes or unpublishes an owned file. Idempotent: setting
// the current value again succeeds with the same final state.
func (s *FileService) SetVisibility(ctx context.Context, requesterID, fileID string, isPublic bool) (*entity.File, error) {
	if _, err := s.GetByID(ctx, requesterID, fileID); err != nil {
		return nil, err
	}
	f, err := s.Repo.SetPublic(ctx, fileID, isPublic)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update visibility: %w", err)
	}
	return f, nil
}

// Content is the result of a content read.
type Content struct {
	Name     string
	MimeType string
	Data     []byte
}

// ReadContent returns a file's bytes for anyone it is visible to.
// requesterID may be empty for anonymous reads. size optionally selects a
// generated thumbnail (500, 250 or 100).
func (s *FileService) ReadContent(ctx context.Context, requesterID, fileID, size string) (*Content, error) {
	f, err := s.Repo.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	if !f.VisibleTo(requesterID) {
		return nil, ErrNotFound
	}
	if !f.HasContent() {
		return nil, ErrIsAFolder
	}

	path := f.LocalPath
	if size != "" && ThumbnailWidths[size] {
		path = path + "_" + size
	}
	data, err := s.Blobs.Read(path)
	if err != nil {
		if errors.Is(err, blob.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read blob: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(f.Name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &Content{Name: f.Name, MimeType: mimeType, Data: data}, nil
}

// dispatch hands the post-upload job to the queue off the request path.
// The response does not wait for it and a failure only logs.
func (s *FileService) dispatch(job queue.FileJob) {
	if s.Queue == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Queue.PublishJSON(ctx, s.FileQueue, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"queue":   s.FileQueue,
				"file_id": job.FileID,
			}).Warn("enqueue file job failed")
		}
	}()
}
