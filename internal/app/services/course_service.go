package services

import (
	"context"
	"fmt"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/app/models/dto"
)

// CourseService handles course catalog operations
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// List retrieves all courses
func (s *CourseService) List(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// Create creates a new course. Credits default to 0 when absent.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return course, nil
}

// Update applies a partial update to an existing course
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete deletes a course by ID
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
