package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"filebox/internal/domain/entity"
	"filebox/internal/domain/repository"
	"filebox/internal/infrastructure/blob"
	"filebox/internal/infrastructure/session"
)

// --- in-memory fakes for the external collaborators ---

type fakeUserRepo struct {
	mu        sync.Mutex
	seq       int
	users     map[string]*entity.User // by id
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	setErr   error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (f *fakeSessionStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.sessions[token] = userID
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if uid, ok := f.sessions[token]; ok {
		return uid, nil
	}
	return "", session.ErrNoSession
}

func (f *fakeSessionStore) Del(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

type fakeFileRepo struct {
	mu    sync.Mutex
	seq   int
	files []*entity.File // insertion order
}

func newFakeFileRepo() *fakeFileRepo { return &fakeFileRepo{} }

func (f *fakeFileRepo) Create(ctx context.Context, file *entity.File) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	file.ID = fmt.Sprintf("file-%d", f.seq)
	file.CreatedAt = time.Now()
	cp := *file
	f.files = append(f.files, &cp)
	return nil
}

func (f *fakeFileRepo) GetByID(ctx context.Context, id string) (*entity.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, file := range f.files {
		if file.ID == id {
			cp := *file
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFileRepo) ListByParent(ctx context.Context, ownerID, parentID string, page int) ([]*entity.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := make([]*entity.File, 0)
	for _, file := range f.files {
		if file.UserID == ownerID && file.ParentID == parentID {
			cp := *file
			matched = append(matched, &cp)
		}
	}
	start := page * repository.PageSize
	if start >= len(matched) {
		return []*entity.File{}, nil
	}
	end := start + repository.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (f *fakeFileRepo) SetPublic(ctx context.Context, id string, isPublic bool) (*entity.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, file := range f.files {
		if file.ID == id {
			file.IsPublic = isPublic
			cp := *file
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFileRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.files)), nil
}

type fakeBlobStore struct {
	mu    sync.Mutex
	seq   int
	blobs map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore { return &fakeBlobStore{blobs: map[string][]byte{}} }

func (f *fakeBlobStore) Write(data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	path := fmt.Sprintf("/blobs/%d", f.seq)
	f.blobs[path] = append([]byte(nil), data...)
	return path, nil
}

func (f *fakeBlobStore) Read(path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if data, ok := f.blobs[path]; ok {
		return data, nil
	}
	return nil, blob.ErrNotExist
}

type publishedJob struct {
	Queue string
	Body  any
}

type fakePublisher struct {
	mu   sync.Mutex
	jobs []publishedJob
	err  error
}

func (f *fakePublisher) PublishJSON(ctx context.Context, queueName string, body any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, publishedJob{Queue: queueName, Body: body})
	return nil
}

func (f *fakePublisher) published() []publishedJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]publishedJob, len(f.jobs))
	copy(out, f.jobs)
	return out
}
