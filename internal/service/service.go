package service

import (
	"auth_api/internal/models"
	"auth_api/internal/repository"
)

// Authorization covers the three user-facing operations.
type Authorization interface {
	SignUp(username, password string) error
	Login(username, password string) error
	GetUser(username string) (models.User, error)
}

// Storage controls the lifecycle of the persisted credential set.
type Storage interface {
	Load() (int, error)
	Flush() error
	Location() string
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Storage
}

func NewService(repos *repository.Repository) *Service {
	auth := NewAuthService(repos.Credentials, repos.Persistence)
	return &Service{
		Authorization: auth,
		Storage:       auth,
	}
}
