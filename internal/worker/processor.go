package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"filebox/internal/domain/entity"
	"filebox/internal/domain/repository"
	"filebox/internal/infrastructure/queue"
)

// thumbnailWidths are generated for every uploaded image.
var thumbnailWidths = []int{500, 250, 100}

// Mailer sends the post-registration welcome email.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Processor consumes the background jobs the API enqueues. It re-validates
// everything against fresh data: a file or user deleted since enqueue time
// is skipped, not failed.
type Processor struct {
	Files  repository.FileRepository
	Users  repository.UserRepository
	Mail   Mailer // nil disables sending; the welcome is then only logged
	Logger *logrus.Logger
}

func NewProcessor(files repository.FileRepository, users repository.UserRepository, mail Mailer, logger *logrus.Logger) *Processor {
	return &Processor{Files: files, Users: users, Mail: mail, Logger: logger}
}

// HandleFileJob generates thumbnails for an uploaded image. A returned
// error means the delivery should be retried.
func (p *Processor) HandleFileJob(ctx context.Context, job queue.FileJob) error {
	if job.FileID == "" || job.UserID == "" {
		p.Logger.WithField("job", job).Warn("file job missing ids, dropping")
		return nil
	}

	f, err := p.Files.GetByID(ctx, job.FileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			p.Logger.WithField("file_id", job.FileID).Info("file gone before processing, skipping")
			return nil
		}
		return fmt.Errorf("fetch file: %w", err)
	}
	if f.UserID != job.UserID || f.Type != entity.TypeImage {
		return nil
	}

	data, err := os.ReadFile(f.LocalPath)
	if err != nil {
		p.Logger.WithError(err).WithField("file_id", f.ID).Warn("blob missing, skipping thumbnails")
		return nil
	}

	for _, w := range thumbnailWidths {
		thumb, err := Thumbnail(data, w)
		if err != nil {
			p.Logger.WithError(err).WithField("file_id", f.ID).Warn("not a decodable image, skipping")
			return nil
		}
		if err := os.WriteFile(f.LocalPath+"_"+strconv.Itoa(w), thumb, 0o644); err != nil {
			return fmt.Errorf("write thumbnail %d: %w", w, err)
		}
	}
	p.Logger.WithFields(logrus.Fields{"file_id": f.ID, "user_id": f.UserID}).Info("thumbnails generated")
	return nil
}

// HandleUserJob sends the welcome email for a fresh registration. An empty
// payload is the registration-failure signal and is only counted.
func (p *Processor) HandleUserJob(ctx context.Context, job queue.UserJob) error {
	if job.UserID == "" {
		p.Logger.Warn("registration failure signal received")
		return nil
	}

	u, err := p.Users.GetByID(ctx, job.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			p.Logger.WithField("user_id", job.UserID).Info("user gone before processing, skipping")
			return nil
		}
		return fmt.Errorf("fetch user: %w", err)
	}

	p.Logger.WithField("email", u.Email).Infof("Welcome %s!", u.Email)
	if p.Mail != nil {
		text := fmt.Sprintf("Welcome %s! Your storage is ready.", u.Email)
		if err := p.Mail.Send(ctx, u.Email, "Welcome to Filebox", text, ""); err != nil {
			return fmt.Errorf("send welcome email: %w", err)
		}
	}
	return nil
}
