package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/study-notes-api/internal/models"
)

// QueryObserver receives store operation timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// UserRepository persists whole user aggregates in a single collection.
type UserRepository struct {
	coll     *mongo.Collection
	observer QueryObserver
}

// NewUserRepository creates a repository over coll. observer may be nil.
func NewUserRepository(coll *mongo.Collection, observer QueryObserver) *UserRepository {
	return &UserRepository{coll: coll, observer: observer}
}

func (r *UserRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// EnsureIndexes creates the unique username and email indexes.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	defer r.observe("ensure_indexes", time.Now())
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

// FindByUsername returns the aggregate or an error wrapping mongo.ErrNoDocuments.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	defer r.observe("find_by_username", time.Now())
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

// FindByEmail returns the aggregate or an error wrapping mongo.ErrNoDocuments.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	defer r.observe("find_by_email", time.Now())
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.Normalize()
	return &user, nil
}

// ExistsByUsername reports whether any user has the username.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	defer r.observe("exists_by_username", time.Now())
	return r.exists(ctx, bson.D{{Key: "username", Value: username}})
}

// ExistsByEmail reports whether any user has the email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer r.observe("exists_by_email", time.Now())
	return r.exists(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UserRepository) exists(ctx context.Context, filter bson.D) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return n > 0, nil
}

// Insert stores a new aggregate. Unique index violations surface as duplicate key errors.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	defer r.observe("insert", time.Now())
	user.Normalize()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Save replaces the stored aggregate, including every embedded subject and note.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	defer r.observe("save", time.Now())
	user.Normalize()
	_, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: user.ID}}, user, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Delete removes the aggregate by id.
func (r *UserRepository) Delete(ctx context.Context, user *models.User) error {
	defer r.observe("delete", time.Now())
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: user.ID}}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// DeleteAll clears the collection.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	defer r.observe("delete_all", time.Now())
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete all users: %w", err)
	}
	return nil
}

// FindAll returns every stored aggregate.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	defer r.observe("find_all", time.Now())
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	for i := range users {
		users[i].Normalize()
	}
	return users, nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	defer r.observe("count", time.Now())
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
