package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filebox/internal/domain/entity"
	"filebox/internal/domain/repository"
)

type FileRepository struct {
	pool *pgxpool.Pool
}

func NewFileRepository(pool *pgxpool.Pool) *FileRepository {
	return &FileRepository{pool: pool}
}

func (r *FileRepository) Create(ctx context.Context, f *entity.File) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO files (user_id, name, type, parent_id, is_public, local_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, f.UserID, f.Name, f.Type, f.ParentID, f.IsPublic, f.LocalPath)

	return row.Scan(&f.ID, &f.CreatedAt)
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*entity.File, error) {
	f := &entity.File{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, type, parent_id, is_public, local_path, created_at
		FROM files
		WHERE id = $1
	`, id)

	if err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.ParentID,
		&f.IsPublic, &f.LocalPath, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return f, nil
}

// ListByParent pages through an owner's folder in insertion order.
// Ordering by (created_at, id) keeps pages stable across inserts.
func (r *FileRepository) ListByParent(ctx context.Context, ownerID, parentID string, page int) ([]*entity.File, error) {
	if page < 0 {
		page = 0
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, type, parent_id, is_public, local_path, created_at
		FROM files
		WHERE user_id = $1 AND parent_id = $2
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4
	`, ownerID, parentID, repository.PageSize, page*repository.PageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]*entity.File, 0, repository.PageSize)
	for rows.Next() {
		f := &entity.File{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.ParentID,
			&f.IsPublic, &f.LocalPath, &f.CreatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (r *FileRepository) SetPublic(ctx context.Context, id string, isPublic bool) (*entity.File, error) {
	f := &entity.File{}

	row := r.pool.QueryRow(ctx, `
		UPDATE files
		SET is_public = $1
		WHERE id = $2
		RETURNING id, user_id, name, type, parent_id, is_public, local_path, created_at
	`, isPublic, id)

	if err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.ParentID,
		&f.IsPublic, &f.LocalPath, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return f, nil
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var _ repository.FileRepository = (*FileRepository)(nil)
