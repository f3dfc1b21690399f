package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits" binding:"omitempty,gte=0"`
}

// UpdateCourseRequest represents a partial course update.
// Nil fields are left untouched.
type UpdateCourseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits" binding:"omitempty,gte=0"`
}
