package repository

import (
	"auth_api/internal/models"
)

// Credentials is the in-memory credential store contract.
type Credentials interface {
	Lookup(username string) (string, bool)
	Insert(username, password string) error
	VerifyLogin(username, password string) LoginResult
	Records() []models.User
	Replace(users []models.User)
	Len() int
}

// Persistence loads and saves the whole credential set.
type Persistence interface {
	Load() ([]models.User, error)
	Save(users []models.User) error
	Location() string
}

type Repository struct {
	Credentials Credentials
	Persistence Persistence
}

func NewRepository(p Persistence) *Repository {
	return &Repository{
		Credentials: NewMemoryStore(),
		Persistence: p,
	}
}
