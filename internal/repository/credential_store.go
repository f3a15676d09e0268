package repository

import (
	"errors"
	"sync"

	"auth_api/internal/models"
)

var ErrUserAlreadyExists = errors.New("user already exists")

// LoginResult is the outcome of a credential check.
type LoginResult int

const (
	LoginSuccess LoginResult = iota
	LoginWrongPassword
	LoginNoSuchUser
)

func (r LoginResult) String() string {
	switch r {
	case LoginSuccess:
		return "success"
	case LoginWrongPassword:
		return "wrong_password"
	case LoginNoSuchUser:
		return "no_such_user"
	default:
		return "unknown"
	}
}

// MemoryStore maps usernames to passwords and remembers insertion order,
// so a saved file lists users in the order they signed up.
type MemoryStore struct {
	sync.RWMutex
	passwords map[string]string
	order     []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{passwords: make(map[string]string)}
}

// Ensure implementation of Credentials interface at compile time.
var _ Credentials = (*MemoryStore)(nil)

func (s *MemoryStore) Lookup(username string) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	password, ok := s.passwords[username]
	return password, ok
}

// Insert adds a user. An existing username is left untouched.
func (s *MemoryStore) Insert(username, password string) error {
	s.Lock()
	defer s.Unlock()
	if _, ok := s.passwords[username]; ok {
		return ErrUserAlreadyExists
	}
	s.passwords[username] = password
	s.order = append(s.order, username)
	return nil
}

// VerifyLogin compares passwords byte for byte.
func (s *MemoryStore) VerifyLogin(username, password string) LoginResult {
	stored, ok := s.Lookup(username)
	switch {
	case !ok:
		return LoginNoSuchUser
	case stored != password:
		return LoginWrongPassword
	default:
		return LoginSuccess
	}
}

// Records returns a copy of every record in insertion order.
func (s *MemoryStore) Records() []models.User {
	s.RLock()
	defer s.RUnlock()
	out := make([]models.User, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, models.User{Username: name, Password: s.passwords[name]})
	}
	return out
}

// Replace discards the current contents and loads users.
// A username listed twice keeps its first position and its last password.
func (s *MemoryStore) Replace(users []models.User) {
	s.Lock()
	defer s.Unlock()
	s.passwords = make(map[string]string, len(users))
	s.order = make([]string, 0, len(users))
	for _, u := range users {
		if _, ok := s.passwords[u.Username]; !ok {
			s.order = append(s.order, u.Username)
		}
		s.passwords[u.Username] = u.Password
	}
}

func (s *MemoryStore) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.passwords)
}
