package models

import "time"

// User is a principal known to the credential store.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
	Role         string
	CreatedAt    time.Time
}
