package services

import (
	"context"
	"fmt"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/app/stats"
)

// DashboardService produces the two read-only aggregation views
type DashboardService struct {
	students StudentStore
	courses  CourseStore
	grades   GradeStore
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(students StudentStore, courses CourseStore, grades GradeStore) *DashboardService {
	return &DashboardService{
		students: students,
		courses:  courses,
		grades:   grades,
	}
}

// AdminOverview fetches all records and reduces them into the
// administrator dashboard statistics.
func (s *DashboardService) AdminOverview(ctx context.Context) (*stats.AdminStats, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	grades, err := s.grades.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}

	overview := stats.AdminOverview(students, courses, grades)
	return &overview, nil
}

// StudentOverview fetches one student's grades and reduces them into
// the personal dashboard statistics. Self-access applies to
// student-role callers.
func (s *DashboardService) StudentOverview(ctx context.Context, caller *models.Account, studentID int64) (*stats.StudentStats, error) {
	if err := ensureSelfAccess(ctx, s.students, caller, studentID); err != nil {
		return nil, err
	}

	grades, err := s.grades.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student grades: %w", err)
	}

	overview := stats.StudentOverview(grades)
	return &overview, nil
}
