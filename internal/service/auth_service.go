package service

import (
	"errors"
	"fmt"

	"auth_api/internal/models"
	"auth_api/internal/repository"
)

// Domain errors for auth flows.
var (
	ErrMissingFields     = errors.New("username and password are required")
	ErrMissingUsername   = errors.New("username is required")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidEndpoint   = errors.New("invalid endpoint")
	ErrUnsupportedMethod = errors.New("only POST and GET requests are supported")
)

// AuthService handles user auth logic on top of the in-memory store.
// Every successful sign-up is flushed to persistence before returning.
type AuthService struct {
	store   repository.Credentials
	persist repository.Persistence
}

func NewAuthService(store repository.Credentials, persist repository.Persistence) *AuthService {
	return &AuthService{store: store, persist: persist}
}

// SignUp registers a new user and saves the whole store.
// If the save fails the user stays registered in memory and the save error is returned.
func (s *AuthService) SignUp(username, password string) error {
	if err := s.store.Insert(username, password); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user %q: %w", username, err)
	}
	return s.Flush()
}

// Login checks credentials against the store.
func (s *AuthService) Login(username, password string) error {
	switch s.store.VerifyLogin(username, password) {
	case repository.LoginSuccess:
		return nil
	case repository.LoginWrongPassword:
		return ErrInvalidPassword
	default:
		return ErrUserNotFound
	}
}

// GetUser returns the stored record for username.
func (s *AuthService) GetUser(username string) (models.User, error) {
	password, ok := s.store.Lookup(username)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return models.User{Username: username, Password: password}, nil
}

// Load replaces the store contents with the persisted users and returns how many were loaded.
func (s *AuthService) Load() (int, error) {
	users, err := s.persist.Load()
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}
	s.store.Replace(users)
	return s.store.Len(), nil
}

// Flush writes the current store to persistence.
func (s *AuthService) Flush() error {
	if err := s.persist.Save(s.store.Records()); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (s *AuthService) Location() string {
	return s.persist.Location()
}
