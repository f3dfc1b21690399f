package services

import (
	"context"
	"fmt"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
)

// GradeService handles grade book operations
type GradeService struct {
	grades   GradeStore
	students StudentStore
	courses  CourseStore
}

// NewGradeService creates a new grade service
func NewGradeService(grades GradeStore, students StudentStore, courses CourseStore) *GradeService {
	return &GradeService{
		grades:   grades,
		students: students,
		courses:  courses,
	}
}

// List retrieves all grades with student and course joined
func (s *GradeService) List(ctx context.Context) ([]*models.Grade, error) {
	grades, err := s.grades.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

// ListByStudent retrieves one student's grades. A student-role caller
// may only list the grades of the student owned by its own account.
func (s *GradeService) ListByStudent(ctx context.Context, caller *models.Account, studentID int64) ([]*models.Grade, error) {
	if err := ensureSelfAccess(ctx, s.students, caller, studentID); err != nil {
		return nil, err
	}

	grades, err := s.grades.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student grades: %w", err)
	}
	return grades, nil
}

// Create validates both references and persists a new grade.
// The existence checks and the insert are separate statements, so a
// student or course deleted in between can still leave a dangling
// grade; single-document writes only, the race is accepted.
func (s *GradeService) Create(ctx context.Context, req *dto.CreateGradeRequest) (*models.Grade, error) {
	if req.Score == nil || *req.Score < 0 || *req.Score > 20 {
		return nil, apperrors.ErrScoreOutOfRange
	}

	exists, err := s.students.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	exists, err = s.courses.Exists(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	grade := &models.Grade{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Score:     *req.Score,
		Date:      req.Date,
	}

	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// Update applies a partial update to an existing grade
func (s *GradeService) Update(ctx context.Context, id int64, req *dto.UpdateGradeRequest) (*models.Grade, error) {
	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Score != nil {
		if *req.Score < 0 || *req.Score > 20 {
			return nil, apperrors.ErrScoreOutOfRange
		}
		grade.Score = *req.Score
	}
	if req.Date != nil {
		grade.Date = *req.Date
	}

	if err := s.grades.Update(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// Delete deletes a grade by ID
func (s *GradeService) Delete(ctx context.Context, id int64) error {
	return s.grades.Delete(ctx, id)
}
