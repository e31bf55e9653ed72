// Package models defines the persisted record types: users, posts and
// comments. JSON field names match the durable-store layout exactly, so a
// store written by an earlier version of the app loads unchanged.
package models

// User is a registered account. Usernames are unique (case-sensitive exact
// match) and records are immutable once created. Passwords are stored and
// compared verbatim; there is deliberately no hashing in this app.
type User struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Phone    *string `json:"phone"`
}

// NewUser builds a User, mapping an empty phone to null.
func NewUser(username, password, phone string) User {
	u := User{Username: username, Password: password}
	if phone != "" {
		u.Phone = &phone
	}
	return u
}
