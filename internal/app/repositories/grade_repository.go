package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// GetAll retrieves all grades joined with student identity and course
func (r *GradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.student_id, g.course_id, g.score, g.date, g.created_at,
		       s.id, s.first_name, s.last_name, s.student_number,
		       c.id, c.name, c.credits
		FROM grades g
		JOIN students s ON s.id = g.student_id
		JOIN courses c ON c.id = g.course_id
		ORDER BY g.date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		var student models.Student
		var course models.Course
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.CourseID,
			&grade.Score,
			&grade.Date,
			&grade.CreatedAt,
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.StudentNumber,
			&course.ID,
			&course.Name,
			&course.Credits,
		); err != nil {
			return nil, err
		}
		grade.Student = &student
		grade.Course = &course
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetByStudentID retrieves all grades of one student joined with course
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	query := `
		SELECT g.id, g.student_id, g.course_id, g.score, g.date, g.created_at,
		       c.id, c.name, c.credits
		FROM grades g
		JOIN courses c ON c.id = g.course_id
		WHERE g.student_id = $1
		ORDER BY g.date
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		var course models.Course
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.CourseID,
			&grade.Score,
			&grade.Date,
			&grade.CreatedAt,
			&course.ID,
			&course.Name,
			&course.Credits,
		); err != nil {
			return nil, err
		}
		grade.Course = &course
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetByID retrieves a grade by ID
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, score, date, created_at
		FROM grades
		WHERE id = $1
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, id).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.CourseID,
		&grade.Score,
		&grade.Date,
		&grade.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// Create inserts a new grade
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, course_id, score, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, grade.StudentID, grade.CourseID, grade.Score, grade.Date).
		Scan(&grade.ID, &grade.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// Update updates an existing grade
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET score = $1, date = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, grade.Score, grade.Date, grade.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete deletes a grade by ID
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}
