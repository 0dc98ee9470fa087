package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noah-isme/study-notes-api/internal/models"
)

// mockUserRepo keeps aggregates in memory and hands out deep copies, so a
// service only changes stored state through Save.
type mockUserRepo struct {
	mu       sync.Mutex
	users    map[string]*models.User
	findErr  error
	saveErr  error
	countErr error
	saves    int
	finds    int
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Username] = cloneUser(u)
	}
	return m
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Subjects = make([]models.Subject, len(u.Subjects))
	for i, s := range u.Subjects {
		c.Subjects[i] = s
		c.Subjects[i].Notes = append([]models.StudyNote{}, s.Notes...)
	}
	return &c
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	if m.findErr != nil {
		return nil, m.findErr
	}
	if u, ok := m.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, fmt.Errorf("find user: %w", mongo.ErrNoDocuments)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, fmt.Errorf("find user: %w", mongo.ErrNoDocuments)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[username]
	return ok, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Insert(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error index: uniq_username"}}}
	}
	m.users[user.Username] = cloneUser(user)
	return nil
}

func (m *mockUserRepo) Save(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.users[user.Username] = cloneUser(user)
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, user.Username)
	return nil
}

func (m *mockUserRepo) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[string]*models.User)
	return nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) stored(username string) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[username]; ok {
		return cloneUser(u)
	}
	return nil
}

// mockLockRepo is an in-process stand-in for the Redis lock.
type mockLockRepo struct {
	mu       sync.Mutex
	held     map[string]string
	acquires int
	releases int
	err      error
}

func newMockLockRepo() *mockLockRepo {
	return &mockLockRepo{held: make(map[string]string)}
}

func (m *mockLockRepo) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", false, m.err
	}
	if _, ok := m.held[key]; ok {
		return "", false, nil
	}
	m.acquires++
	token := fmt.Sprintf("token-%d", m.acquires)
	m.held[key] = token
	return token, true, nil
}

func (m *mockLockRepo) Release(ctx context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[key] == token {
		delete(m.held, key)
		m.releases++
	}
	return nil
}

var errStoreDown = errors.New("server selection timeout")
