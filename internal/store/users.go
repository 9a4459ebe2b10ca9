package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no user exists for a given username.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate is returned when a username is already registered.
	ErrDuplicate = errors.New("username already exists")
)

// User is one registered account. PasswordHash holds a bcrypt hash, never
// the raw password.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// UserStore is a concurrency-safe in-memory user registry.
type UserStore struct {
	mu         sync.RWMutex
	byUsername map[string]User
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{byUsername: make(map[string]User)}
}

// Create registers a new user and assigns it an ID.
func (s *UserStore) Create(email, username, passwordHash string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[username]; ok {
		return User{}, ErrDuplicate
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.byUsername[username] = user
	return user, nil
}

// GetByUsername looks a user up by username.
func (s *UserStore) GetByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byUsername[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

// Count reports how many users are registered.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUsername)
}
