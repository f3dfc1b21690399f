package models

import "time"

// Course represents a catalog entry with a credit weight.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	Credits     int       `json:"credits" db:"credits"`                   // Non-negative, defaults to 0
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
