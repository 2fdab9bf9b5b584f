package domain

import "time"

// User represents a registered account identified by username.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}
