package models

import "time"

// Account defines the login identity model based on the 'accounts' table
type Account struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the account
	Email        string    `json:"email" db:"email" example:"admin@scolaris.fr"`             // Account's email address (unique)
	PasswordHash string    `json:"-" db:"password_hash"`                                     // Bcrypt hash (excluded from JSON)
	Role         Role      `json:"role" db:"role" example:"STUDENT"`                         // ADMIN, REGISTRAR or STUDENT
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the account was created
}
