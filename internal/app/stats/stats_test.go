package stats

import (
	"testing"
	"time"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 0, 0, 0, 0, time.UTC)
}

func TestAdminOverview(t *testing.T) {
	algorithms := &models.Course{ID: 1, Name: "Algorithms", Credits: 4}
	students := []*models.Student{{ID: 1}}
	courses := []*models.Course{algorithms}
	grades := []*models.Grade{
		{ID: 1, StudentID: 1, CourseID: 1, Score: 15, Date: day(1), Course: algorithms},
	}

	overview := AdminOverview(students, courses, grades)

	assert.Equal(t, 1, overview.TotalStudents)
	assert.Equal(t, 1, overview.TotalCourses)
	assert.Equal(t, 1, overview.TotalGrades)
	assert.Equal(t, 15.0, overview.AverageGrade)

	assert.Len(t, overview.Distribution, 20)
	for _, bucket := range overview.Distribution {
		if bucket.Grade == 15 {
			assert.Equal(t, 1, bucket.Count)
		} else {
			assert.Equal(t, 0, bucket.Count, "bucket %d should be empty", bucket.Grade)
		}
	}
}

func TestAdminOverview_Empty(t *testing.T) {
	overview := AdminOverview(nil, nil, nil)

	assert.Equal(t, 0, overview.TotalStudents)
	assert.Equal(t, 0, overview.TotalCourses)
	assert.Equal(t, 0, overview.TotalGrades)
	assert.Equal(t, 0.0, overview.AverageGrade)
	assert.Len(t, overview.Distribution, 20)
	for _, bucket := range overview.Distribution {
		assert.Equal(t, 0, bucket.Count)
	}
}

func TestAdminOverview_AverageRounding(t *testing.T) {
	grades := []*models.Grade{
		{Score: 10},
		{Score: 11},
		{Score: 11},
	}

	overview := AdminOverview(nil, nil, grades)

	// 32/3 = 10.666..., rounded to 2 decimals
	assert.Equal(t, 10.67, overview.AverageGrade)
}

func TestAdminOverview_BucketsByFloor(t *testing.T) {
	grades := []*models.Grade{
		{Score: 15.9},
		{Score: 15.0},
		{Score: 20.0},
		{Score: 1.0},
	}

	overview := AdminOverview(nil, nil, grades)

	assert.Equal(t, 2, overview.Distribution[14].Count)
	assert.Equal(t, 1, overview.Distribution[19].Count)
	assert.Equal(t, 1, overview.Distribution[0].Count)
}

func TestAdminOverview_ScoresBelowOneUncounted(t *testing.T) {
	grades := []*models.Grade{
		{Score: 0},
		{Score: 0.5},
	}

	overview := AdminOverview(nil, nil, grades)

	total := 0
	for _, bucket := range overview.Distribution {
		total += bucket.Count
	}
	assert.Equal(t, 0, total)
	// Uncounted scores still contribute to the average
	assert.Equal(t, 0.25, overview.AverageGrade)
}

func TestStudentOverview(t *testing.T) {
	algorithms := &models.Course{ID: 1, Name: "Algorithms", Credits: 4}
	databases := &models.Course{ID: 2, Name: "Databases", Credits: 3}
	grades := []*models.Grade{
		{StudentID: 1, CourseID: 2, Score: 12, Date: day(10), Course: databases},
		{StudentID: 1, CourseID: 1, Score: 16, Date: day(2), Course: algorithms},
		{StudentID: 1, CourseID: 1, Score: 14, Date: day(5), Course: algorithms},
	}

	overview := StudentOverview(grades)

	assert.Equal(t, 14.0, overview.AverageGrade)
	// Algorithms is graded twice but its credits count once
	assert.Equal(t, 7, overview.TotalCredits)

	assert.Len(t, overview.Progress, 3)
	assert.Equal(t, "Algorithms", overview.Progress[0].Course)
	assert.Equal(t, 16.0, overview.Progress[0].Score)
	assert.Equal(t, "Algorithms", overview.Progress[1].Course)
	assert.Equal(t, "Databases", overview.Progress[2].Course)
	assert.True(t, overview.Progress[0].Date.Before(overview.Progress[1].Date))
	assert.True(t, overview.Progress[1].Date.Before(overview.Progress[2].Date))
}

func TestStudentOverview_Empty(t *testing.T) {
	overview := StudentOverview(nil)

	assert.Equal(t, 0.0, overview.AverageGrade)
	assert.Equal(t, 0, overview.TotalCredits)
	assert.Empty(t, overview.Progress)
}
