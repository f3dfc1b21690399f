// Package stats computes dashboard aggregates from fetched records.
// Every function here is a pure reduction over its inputs; no I/O.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/mjoly/scolaris/internal/app/models"
)

// Bucket is one bar of the grade distribution chart.
type Bucket struct {
	Grade int `json:"grade" example:"15"`
	Count int `json:"count" example:"3"`
}

// AdminStats summarizes the whole grade book for the admin dashboard.
type AdminStats struct {
	TotalStudents int      `json:"totalStudents"`
	TotalCourses  int      `json:"totalCourses"`
	TotalGrades   int      `json:"totalGrades"`
	AverageGrade  float64  `json:"averageGrade"`
	Distribution  []Bucket `json:"gradeDistribution"`
}

// ProgressPoint is one entry of a student's grade-over-time series.
type ProgressPoint struct {
	Date   time.Time `json:"date"`
	Score  float64   `json:"score"`
	Course string    `json:"course"`
}

// StudentStats summarizes one student's grades for the student dashboard.
type StudentStats struct {
	AverageGrade float64         `json:"averageGrade"`
	TotalCredits int             `json:"totalCredits"`
	Progress     []ProgressPoint `json:"gradeProgress"`
}

// AdminOverview reduces all records into the admin dashboard numbers.
// The average is rounded to 2 decimals and reported as 0 when there are
// no grades. Distribution buckets are keyed by floor(score) for the
// integer buckets 1..20; scores below 1 fall outside every bucket.
func AdminOverview(students []*models.Student, courses []*models.Course, grades []*models.Grade) AdminStats {
	overview := AdminStats{
		TotalStudents: len(students),
		TotalCourses:  len(courses),
		TotalGrades:   len(grades),
		Distribution:  make([]Bucket, 20),
	}

	for i := range overview.Distribution {
		overview.Distribution[i].Grade = i + 1
	}

	var sum float64
	for _, grade := range grades {
		sum += grade.Score
		bucket := int(math.Floor(grade.Score))
		if bucket >= 1 && bucket <= 20 {
			overview.Distribution[bucket-1].Count++
		}
	}

	if len(grades) > 0 {
		overview.AverageGrade = round2(sum / float64(len(grades)))
	}

	return overview
}

// StudentOverview reduces one student's grades (with courses populated)
// into the student dashboard numbers. Credits are summed once per
// distinct course, regardless of how many grades the course has. The
// progress series is sorted ascending by grade date.
func StudentOverview(grades []*models.Grade) StudentStats {
	overview := StudentStats{
		Progress: make([]ProgressPoint, 0, len(grades)),
	}

	var sum float64
	countedCourses := make(map[int64]bool)
	for _, grade := range grades {
		sum += grade.Score

		if grade.Course != nil && !countedCourses[grade.CourseID] {
			countedCourses[grade.CourseID] = true
			overview.TotalCredits += grade.Course.Credits
		}

		point := ProgressPoint{
			Date:  grade.Date,
			Score: grade.Score,
		}
		if grade.Course != nil {
			point.Course = grade.Course.Name
		}
		overview.Progress = append(overview.Progress, point)
	}

	if len(grades) > 0 {
		overview.AverageGrade = round2(sum / float64(len(grades)))
	}

	sort.SliceStable(overview.Progress, func(i, j int) bool {
		return overview.Progress[i].Date.Before(overview.Progress[j].Date)
	})

	return overview
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
