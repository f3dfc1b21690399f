// Package services contains the business rules between the HTTP
// controllers and the repositories. Repositories are consumed through
// the narrow store interfaces below so the rules can be tested against
// in-memory fakes.
package services

import (
	"context"
	"errors"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
)

// AccountStore is the account access the services need.
type AccountStore interface {
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// StudentStore is the student access the services need.
type StudentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CreateWithAccount(ctx context.Context, account *models.Account, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the course access the services need.
type CourseStore interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// GradeStore is the grade access the services need.
type GradeStore interface {
	GetAll(ctx context.Context) ([]*models.Grade, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error)
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
}

// ensureSelfAccess enforces the self-access rule: a student-role caller
// may only touch the student record owned by its own account. Callers
// with any other role pass through.
func ensureSelfAccess(ctx context.Context, students StudentStore, caller *models.Account, studentID int64) error {
	if caller == nil {
		return apperrors.ErrPermissionDenied
	}
	if caller.Role != models.RoleStudent {
		return nil
	}

	own, err := students.GetByAccountID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return err
	}

	if own.ID != studentID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
