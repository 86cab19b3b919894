package models

import "time"

// User is a registered account.
// The auth layer derives the acting identity (uid, email, display name) from it.
type User struct {
	// ID is the uid used everywhere else as the member identity (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// DisplayName is copied into member and expense records.
	DisplayName string

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string

	CreatedAt int64
	UpdatedAt int64
}

// NewUser builds a user with fresh timestamps. The ID is assigned by the store.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AsMember returns the member record used when this user joins a group.
func (u *User) AsMember() Member {
	return Member{UID: u.ID, Name: u.DisplayName, Email: u.Email}
}
