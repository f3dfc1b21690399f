package dto

import "time"

// CreateGradeRequest represents grade creation data.
// Scores are on the 0..20 scale; both references are validated against
// existing records before the grade is persisted.
type CreateGradeRequest struct {
	StudentID int64     `json:"studentId" binding:"required,gt=0"`
	CourseID  int64     `json:"courseId" binding:"required,gt=0"`
	Score     *float64  `json:"score" binding:"required,gte=0,lte=20"`
	Date      time.Time `json:"date" binding:"required"`
}

// UpdateGradeRequest represents a partial grade update.
// Nil fields are left untouched.
type UpdateGradeRequest struct {
	Score *float64   `json:"score" binding:"omitempty,gte=0,lte=20"`
	Date  *time.Time `json:"date"`
}
