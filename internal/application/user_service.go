package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"filebox/internal/domain/entity"
	"filebox/internal/domain/repository"
	"filebox/internal/infrastructure/postgres"
	"filebox/internal/infrastructure/queue"
	"filebox/pkg/helpers"
)

// JobPublisher is the fire-and-forget boundary to the background queue.
type JobPublisher interface {
	PublishJSON(ctx context.Context, queueName string, body any) error
}

// UserService handles registration and profile reads.
type UserService struct {
	Repo      repository.UserRepository
	Queue     JobPublisher
	UserQueue string
	Logger    *logrus.Logger
}

func NewUserService(repo repository.UserRepository, pub JobPublisher, userQueue string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Queue: pub, UserQueue: userQueue, Logger: logger}
}

// Register creates a user with a bcrypt-hashed password and enqueues the
// post-registration job. A creation failure still emits an empty job as a
// failure signal, mirroring the success path.
func (s *UserService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrAlreadyExist
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, postgres.ErrDuplicateEmail) {
			return nil, ErrAlreadyExist
		}
		s.dispatch(queue.UserJob{})
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.dispatch(queue.UserJob{UserID: u.ID})
	return u, nil
}

// GetMe returns the user behind a resolved identity. A stale identity
// (user deleted after sign-in) reads as Unauthorized.
func (s *UserService) GetMe(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return u, nil
}

// dispatch publishes the job off the request path. Failures are logged and
// never propagated; the registration result is already durable.
func (s *UserService) dispatch(job queue.UserJob) {
	if s.Queue == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Queue.PublishJSON(ctx, s.UserQueue, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("queue", s.UserQueue).Warn("enqueue user job failed")
		}
	}()
}
