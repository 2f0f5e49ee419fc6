package models

import "time"

// User is an identity record. PasswordHash is a bcrypt digest; the plaintext
// password is never stored.
type User struct {
	ID           string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
