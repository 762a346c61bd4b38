package types

import "time"

// User represents an account on the community site.
type User struct {
	// ID is the store-assigned identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's display name.
	Name string `json:"name" db:"name"`

	// Email is the user's email address, stored lowercased and unique
	// across all users.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserView is the public projection of a User returned by the auth
// endpoints. It carries identity only, never credential material.
type UserView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// View returns the public projection of the user.
func (u User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}
