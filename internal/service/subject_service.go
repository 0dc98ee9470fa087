package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/study-notes-api/internal/models"
	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

// SubjectService manages the subjects embedded in a user aggregate. Every
// mutation loads the aggregate once, checks it, and saves it back whole.
type SubjectService struct {
	repo   userRepository
	locker *UserLocker
	logger *zap.Logger
}

// NewSubjectService creates a subject service. locker may be nil.
func NewSubjectService(repo userRepository, locker *UserLocker, logger *zap.Logger) *SubjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, locker: locker, logger: logger}
}

// Create appends an empty subject unless the user already has one with that name.
func (s *SubjectService) Create(ctx context.Context, username, subjectName string) error {
	return s.locker.WithLock(ctx, username, func(ctx context.Context) error {
		user, err := loadOwner(ctx, s.repo, username, appErrors.ErrUsernameUnknown)
		if err != nil {
			return err
		}
		if user.HasSubject(subjectName) {
			return appErrors.ErrSubjectExists
		}

		user.Subjects = append(user.Subjects, models.NewSubject(subjectName))
		if err := s.repo.Save(ctx, user); err != nil {
			return appErrors.Internal(err, "failed to save subject")
		}
		s.logger.Info("subject created", zap.String("username", username), zap.String("subject", subjectName))
		return nil
	})
}

// Delete removes the named subject and its notes.
func (s *SubjectService) Delete(ctx context.Context, username, subjectName string) error {
	return s.locker.WithLock(ctx, username, func(ctx context.Context) error {
		user, err := loadOwner(ctx, s.repo, username, appErrors.ErrUsernameUnknown)
		if err != nil {
			return err
		}
		if !user.RemoveSubject(subjectName) {
			return appErrors.ErrSubjectNotFound
		}

		if err := s.repo.Save(ctx, user); err != nil {
			return appErrors.Internal(err, "failed to delete subject")
		}
		s.logger.Info("subject deleted", zap.String("username", username), zap.String("subject", subjectName))
		return nil
	})
}

// Rename changes a subject's name. The new name must not be in use by another
// subject of the same user.
func (s *SubjectService) Rename(ctx context.Context, username, subjectName, newSubjectName string) error {
	return s.locker.WithLock(ctx, username, func(ctx context.Context) error {
		user, err := loadOwner(ctx, s.repo, username, appErrors.ErrUsernameUnknown)
		if err != nil {
			return err
		}
		subject := user.Subject(subjectName)
		if subject == nil {
			return appErrors.ErrSubjectNotFound
		}
		if user.HasSubject(newSubjectName) {
			return appErrors.ErrNewSubjectExists
		}

		subject.Name = newSubjectName
		if err := s.repo.Save(ctx, user); err != nil {
			return appErrors.Internal(err, "failed to rename subject")
		}
		s.logger.Info("subject renamed",
			zap.String("username", username),
			zap.String("subject", subjectName),
			zap.String("new_subject", newSubjectName))
		return nil
	})
}

// List returns the user's subjects in creation order.
func (s *SubjectService) List(ctx context.Context, username string) ([]models.Subject, error) {
	user, err := loadOwner(ctx, s.repo, username, appErrors.ErrUsernameUnknown)
	if err != nil {
		return nil, err
	}
	return user.Subjects, nil
}
