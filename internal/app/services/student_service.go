package services

import (
	"context"
	"fmt"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
	"github.com/mjoly/scolaris/internal/pkg/auth"
)

// StudentService handles student profile operations
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{
		students: students,
	}
}

// List retrieves all students with their accounts
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetByID retrieves one student. A student-role caller may only fetch
// the profile owned by its own account.
func (s *StudentService) GetByID(ctx context.Context, caller *models.Account, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller != nil && caller.Role == models.RoleStudent && student.AccountID != caller.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	return student, nil
}

// Create creates an account with the STUDENT role and its student
// profile as a pair. The role is forced; callers cannot create
// privileged accounts through this path.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
	}
	student := &models.Student{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		StudentNumber:  req.StudentNumber,
		EnrollmentDate: req.EnrollmentDate,
	}

	if err := s.students.CreateWithAccount(ctx, account, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update applies a partial update to an existing student profile
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.StudentNumber != nil {
		student.StudentNumber = *req.StudentNumber
	}
	if req.EnrollmentDate != nil {
		student.EnrollmentDate = *req.EnrollmentDate
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student together with its grades and account
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}
