package dto

import "time"

// CreateStudentRequest creates a student profile together with its account
type CreateStudentRequest struct {
	Email          string    `json:"email" binding:"required,email"`
	Password       string    `json:"password" binding:"required,min=8"`
	FirstName      string    `json:"firstName" binding:"required"`
	LastName       string    `json:"lastName" binding:"required"`
	StudentNumber  string    `json:"studentNumber" binding:"required"`
	EnrollmentDate time.Time `json:"enrollmentDate" binding:"required"`
}

// UpdateStudentRequest represents a partial student update.
// Nil fields are left untouched.
type UpdateStudentRequest struct {
	FirstName      *string    `json:"firstName" binding:"omitempty,min=1"`
	LastName       *string    `json:"lastName" binding:"omitempty,min=1"`
	StudentNumber  *string    `json:"studentNumber" binding:"omitempty,min=1"`
	EnrollmentDate *time.Time `json:"enrollmentDate"`
}
