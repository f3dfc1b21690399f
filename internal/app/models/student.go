package models

import "time"

// Student defines the student profile model based on the 'students' table.
// Each student owns exactly one account; at most one student references
// a given account.
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	AccountID      int64     `json:"accountId" db:"account_id" example:"5"`
	FirstName      string    `json:"firstName" db:"first_name" example:"Marie"`
	LastName       string    `json:"lastName" db:"last_name" example:"Dupont"`
	StudentNumber  string    `json:"studentNumber" db:"student_number" example:"20240042"` // External student identifier (unique)
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`

	// Relations (populated when needed)
	Account *Account `json:"account,omitempty"`
}
