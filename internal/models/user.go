package models

// User is a single credential record. Password is stored and compared as plain text.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserFile is the persisted document shape.
type UserFile struct {
	Users []User `json:"users"`
}
