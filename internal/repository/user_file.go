package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"auth_api/internal/models"

	"github.com/natefinch/atomic"
)

const (
	fileIndent  = "    "
	dirFileMode = 0o755
)

// UserFile keeps the credential set in a single pretty-printed JSON document.
type UserFile struct {
	path string
}

func NewUserFile(path string) *UserFile {
	return &UserFile{path: path}
}

// Ensure implementation of Persistence interface at compile time.
var _ Persistence = (*UserFile)(nil)

func (f *UserFile) Location() string { return f.path }

// Load reads the document. A missing file yields no users; a malformed one is an error.
func (f *UserFile) Load() ([]models.User, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read user file %q: %w", f.path, err)
	}
	var doc models.UserFile
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse user file %q: %w", f.path, err)
	}
	return doc.Users, nil
}

// Save replaces the whole document.
func (f *UserFile) Save(users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	b, err := json.MarshalIndent(models.UserFile{Users: users}, "", fileIndent)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), dirFileMode); err != nil {
		return fmt.Errorf("create data dir for %q: %w", f.path, err)
	}
	if err := atomic.WriteFile(f.path, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("write user file %q: %w", f.path, err)
	}
	return nil
}
