package services

import (
	"context"
	"testing"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCourseCreate(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	course, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Name:        "Algorithms",
		Description: stringPtr("Design and analysis"),
		Credits:     intPtr(4),
	})
	require.NoError(t, err)

	assert.NotZero(t, course.ID)
	assert.Equal(t, "Algorithms", course.Name)
	assert.Equal(t, 4, course.Credits)
}

func TestCourseCreate_DefaultCredits(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	course, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Name: "Seminar",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, course.Credits)
	assert.Nil(t, course.Description)
}

func TestCourseUpdate_Partial(t *testing.T) {
	courses := newFakeCourseStore()
	courses.add(&models.Course{ID: 1, Name: "Algorithms", Credits: 4})
	svc := NewCourseService(courses)

	course, err := svc.Update(context.Background(), 1, &dto.UpdateCourseRequest{
		Credits: intPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "Algorithms", course.Name)
	assert.Equal(t, 5, course.Credits)
}

func TestCourseUpdate_NotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.Update(context.Background(), 404, &dto.UpdateCourseRequest{Credits: intPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseList(t *testing.T) {
	courses := newFakeCourseStore()
	courses.add(&models.Course{ID: 2, Name: "Databases"})
	courses.add(&models.Course{ID: 1, Name: "Algorithms"})
	svc := NewCourseService(courses)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Algorithms", all[0].Name)
}

func TestCourseDelete(t *testing.T) {
	courses := newFakeCourseStore()
	courses.add(&models.Course{ID: 1, Name: "Algorithms"})
	svc := NewCourseService(courses)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), apperrors.ErrCourseNotFound)
}
