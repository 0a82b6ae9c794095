package entity

import (
	"time"
)

// User is the identity record for the auth core.
// PasswordHash holds a bcrypt hash; the plaintext never leaves the
// registration request.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
