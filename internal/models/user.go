package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Unique user identifier
	Username     string    `json:"username" db:"username"`           // Login name, unique
	Email        string    `json:"email" db:"email"`                 // Email address, unique
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash of the password
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Timestamp of the last update
}
