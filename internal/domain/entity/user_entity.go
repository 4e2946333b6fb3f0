package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password and never serialized.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
}
