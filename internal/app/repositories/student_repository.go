package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
	"github.com/mjoly/scolaris/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	s.id, s.account_id, s.first_name, s.last_name, s.student_number, s.enrollment_date,
	a.id, a.email, a.role, a.created_at
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var account models.Account
	err := row.Scan(
		&student.ID,
		&student.AccountID,
		&student.FirstName,
		&student.LastName,
		&student.StudentNumber,
		&student.EnrollmentDate,
		&account.ID,
		&account.Email,
		&account.Role,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	student.Account = &account
	return &student, nil
}

// GetAll retrieves all students joined with their accounts
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN accounts a ON a.id = s.account_id
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID joined with its account
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN accounts a ON a.id = s.account_id
		WHERE s.id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByAccountID retrieves the student owning the given account
func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students s
		JOIN accounts a ON a.id = s.account_id
		WHERE s.account_id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by account: %w", err)
	}

	return student, nil
}

// Exists checks whether a student with the given ID exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// CreateWithAccount inserts an account and its student profile in one
// transaction. Account and student are created or rejected as a pair.
func (r *StudentRepository) CreateWithAccount(ctx context.Context, account *models.Account, student *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO accounts (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		account.Email, account.PasswordHash, account.Role).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	student.AccountID = account.ID
	err = tx.QueryRow(ctx, `
		INSERT INTO students (account_id, first_name, last_name, student_number, enrollment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		student.AccountID, student.FirstName, student.LastName, student.StudentNumber, student.EnrollmentDate).
		Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	student.Account = account
	return nil
}

// Update updates an existing student profile
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, student_number = $3, enrollment_date = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.StudentNumber, student.EnrollmentDate, student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student, its grades, and the paired account in one
// transaction.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var accountID int64
	err = tx.QueryRow(ctx, `SELECT account_id FROM students WHERE id = $1`, id).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error retrieving student account: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM grades WHERE student_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting student grades: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, accountID); err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
