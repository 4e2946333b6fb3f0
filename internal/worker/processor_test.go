package worker

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebox/internal/domain/entity"
	"filebox/internal/domain/repository"
	"filebox/internal/infrastructure/queue"
)

type stubFileRepo struct {
	file *entity.File
}

func (s *stubFileRepo) Create(ctx context.Context, f *entity.File) error { return nil }
func (s *stubFileRepo) GetByID(ctx context.Context, id string) (*entity.File, error) {
	if s.file != nil && s.file.ID == id {
		return s.file, nil
	}
	return nil, repository.ErrNotFound
}
func (s *stubFileRepo) ListByParent(ctx context.Context, ownerID, parentID string, page int) ([]*entity.File, error) {
	return nil, nil
}
func (s *stubFileRepo) SetPublic(ctx context.Context, id string, isPublic bool) (*entity.File, error) {
	return nil, repository.ErrNotFound
}
func (s *stubFileRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type recordingMailer struct {
	to, subject string
	sent        int
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, text, html string) error {
	m.to, m.subject = to, subject
	m.sent++
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestHandleFileJobGeneratesThumbnails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 800, 400), 0o644))

	files := &stubFileRepo{file: &entity.File{
		ID: "f1", UserID: "u1", Name: "pic.png",
		Type: entity.TypeImage, LocalPath: path,
	}}
	p := NewProcessor(files, &stubUserRepo{}, nil, quietLogger())

	require.NoError(t, p.HandleFileJob(context.Background(), queue.FileJob{FileID: "f1", UserID: "u1"}))

	for _, suffix := range []string{"_500", "_250", "_100"} {
		info, err := os.Stat(path + suffix)
		require.NoError(t, err, "thumbnail %s", suffix)
		assert.Positive(t, info.Size())
	}
}

func TestHandleFileJobSkipsMissingFile(t *testing.T) {
	p := NewProcessor(&stubFileRepo{}, &stubUserRepo{}, nil, quietLogger())
	// Absence is not an error for the enqueuer, so the delivery acks.
	assert.NoError(t, p.HandleFileJob(context.Background(), queue.FileJob{FileID: "ghost", UserID: "u1"}))
}

func TestHandleFileJobSkipsNonImages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	files := &stubFileRepo{file: &entity.File{
		ID: "f1", UserID: "u1", Name: "a.txt",
		Type: entity.TypeFile, LocalPath: path,
	}}
	p := NewProcessor(files, &stubUserRepo{}, nil, quietLogger())

	require.NoError(t, p.HandleFileJob(context.Background(), queue.FileJob{FileID: "f1", UserID: "u1"}))
	_, err := os.Stat(path + "_500")
	assert.True(t, os.IsNotExist(err))
}

func TestHandleFileJobSkipsWrongOwner(t *testing.T) {
	files := &stubFileRepo{file: &entity.File{ID: "f1", UserID: "u1", Type: entity.TypeImage}}
	p := NewProcessor(files, &stubUserRepo{}, nil, quietLogger())
	assert.NoError(t, p.HandleFileJob(context.Background(), queue.FileJob{FileID: "f1", UserID: "someone-else"}))
}

func TestHandleUserJobSendsWelcome(t *testing.T) {
	users := &stubUserRepo{user: &entity.User{ID: "u1", Email: "bob@dylan.com"}}
	mail := &recordingMailer{}
	p := NewProcessor(&stubFileRepo{}, users, mail, quietLogger())

	require.NoError(t, p.HandleUserJob(context.Background(), queue.UserJob{UserID: "u1"}))
	assert.Equal(t, 1, mail.sent)
	assert.Equal(t, "bob@dylan.com", mail.to)
}

func TestHandleUserJobEmptyPayloadIsSignalOnly(t *testing.T) {
	mail := &recordingMailer{}
	p := NewProcessor(&stubFileRepo{}, &stubUserRepo{}, mail, quietLogger())

	require.NoError(t, p.HandleUserJob(context.Background(), queue.UserJob{}))
	assert.Zero(t, mail.sent)
}

func TestHandleUserJobMissingUser(t *testing.T) {
	mail := &recordingMailer{}
	p := NewProcessor(&stubFileRepo{}, &stubUserRepo{}, mail, quietLogger())

	require.NoError(t, p.HandleUserJob(context.Background(), queue.UserJob{UserID: "ghost"}))
	assert.Zero(t, mail.sent)
}
