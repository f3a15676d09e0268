package repository

import (
	"database/sql"
	"fmt"

	"auth_api/internal/models"
)

// UserSQLite mirrors the credential set into a users table.
// Save rewrites the table, matching the JSON file's overwrite semantics.
type UserSQLite struct {
	db   *sql.DB
	path string
}

func NewUserSQLite(db *sql.DB, path string) *UserSQLite {
	return &UserSQLite{db: db, path: path}
}

// Ensure implementation of Persistence interface at compile time.
var _ Persistence = (*UserSQLite)(nil)

const (
	selectUsersSQL = `SELECT username, password FROM users ORDER BY id ASC`
	deleteUsersSQL = `DELETE FROM users`
	insertUserSQL  = `INSERT INTO users (username, password) VALUES (?, ?)`
)

func (r *UserSQLite) Location() string { return r.path }

// Load returns every stored user in insertion order.
func (r *UserSQLite) Load() ([]models.User, error) {
	rows, err := r.db.Query(selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Password); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// Save replaces the table contents inside one transaction.
func (r *UserSQLite) Save(users []models.User) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(deleteUsersSQL); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	for _, u := range users {
		if _, err := tx.Exec(insertUserSQL, u.Username, u.Password); err != nil {
			return fmt.Errorf("insert user %q: %w", u.Username, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}
	return nil
}
