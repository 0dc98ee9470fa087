package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/study-notes-api/internal/models"
	appErrors "github.com/noah-isme/study-notes-api/pkg/errors"
)

type userRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type lockRepository interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key, token string) error
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// loadOwner fetches the aggregate for nested operations, where a missing
// user is reported as notFound (a 400 variant) rather than 404.
func loadOwner(ctx context.Context, repo userRepository, username string, notFound *appErrors.Error) (*models.User, error) {
	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound
		}
		return nil, appErrors.Internal(err, "failed to load user")
	}
	return user, nil
}
