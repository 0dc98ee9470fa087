package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/noah-isme/study-notes-api/internal/models"
	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

// UserService handles user level workflows.
type UserService struct {
	repo   userRepository
	logger *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo userRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, logger: logger}
}

// Count returns the number of registered users.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, appErrors.Internal(err, "failed to count users")
	}
	return n, nil
}

// DeleteAll removes every user.
func (s *UserService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return appErrors.Internal(err, "failed to delete users")
	}
	s.logger.Info("all users deleted")
	return nil
}

// GetByUsername returns the full aggregate.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.Internal(err, "failed to load user")
	}
	return user, nil
}

// GetByEmail returns the full aggregate for the email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.Internal(err, "failed to load user")
	}
	return user, nil
}

// Create registers a user with an empty subject list. Username and email
// must both be unused.
func (s *UserService) Create(ctx context.Context, username, email string) (*models.User, error) {
	usernameTaken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to check username")
	}
	emailTaken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to check email")
	}

	switch {
	case usernameTaken && emailTaken:
		return nil, appErrors.ErrUsernameAndEmailUsed
	case usernameTaken:
		return nil, appErrors.ErrUsernameTaken
	case emailTaken:
		return nil, appErrors.ErrEmailTaken
	}

	user := models.NewUser(username, email)
	if err := s.repo.Insert(ctx, user); err != nil {
		// A concurrent create can slip past the checks above; the unique
		// indexes catch it.
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "uniq_email") {
				return nil, appErrors.ErrEmailTaken
			}
			return nil, appErrors.ErrUsernameTaken
		}
		return nil, appErrors.Internal(err, "failed to create user")
	}

	s.logger.Info("user created", zap.String("username", username), zap.String("user_id", user.ID.Hex()))
	return user, nil
}

// Delete removes the user and everything it owns.
func (s *UserService) Delete(ctx context.Context, username string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return appErrors.Clone(appErrors.ErrUserNotFound, "Username "+username+" does not exist")
		}
		return appErrors.Internal(err, "failed to load user")
	}

	if err := s.repo.Delete(ctx, user); err != nil {
		return appErrors.Internal(err, "failed to delete user")
	}
	s.logger.Info("user deleted", zap.String("username", username))
	return nil
}
