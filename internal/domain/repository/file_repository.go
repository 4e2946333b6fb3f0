package repository

import (
	"context"

	"filebox/internal/domain/entity"
)

// PageSize is the fixed page size for file listings.
const PageSize = 20

// FileRepository defines the interface for file metadata operations.
// ListByParent must return records in stable insertion order so that
// consecutive pages concatenate into the full set.
type FileRepository interface {
	Create(ctx context.Context, f *entity.File) error
	GetByID(ctx context.Context, id string) (*entity.File, error)
	ListByParent(ctx context.Context, ownerID, parentID string, page int) ([]*entity.File, error)
	SetPublic(ctx context.Context, id string, isPublic bool) (*entity.File, error)
	Count(ctx context.Context) (int64, error)
}
