package services

import (
	"context"
	"sort"

	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests.

type fakeAccountStore struct {
	accounts map[int64]*models.Account
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[int64]*models.Account)}
}

func (f *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountStore) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountStore) add(account *models.Account) {
	f.accounts[account.ID] = account
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(f.students))
	for _, student := range f.students {
		students = append(students, student)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) GetByAccountID(_ context.Context, accountID int64) (*models.Student, error) {
	for _, student := range f.students {
		if student.AccountID == accountID {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.students[id]
	return ok, nil
}

func (f *fakeStudentStore) CreateWithAccount(_ context.Context, account *models.Account, student *models.Student) error {
	for _, existing := range f.students {
		if existing.Account != nil && existing.Account.Email == account.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.StudentNumber == student.StudentNumber {
			return apperrors.ErrStudentNumberExists
		}
	}

	account.ID = f.nextID
	student.ID = f.nextID
	student.AccountID = account.ID
	student.Account = account
	f.students[student.ID] = student
	f.nextID++
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) add(student *models.Student) {
	if student.ID >= f.nextID {
		f.nextID = student.ID + 1
	}
	f.students[student.ID] = student
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(f.courses))
	for _, course := range f.courses {
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.courses[id]
	return ok, nil
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.courses[course.ID] = course
	f.nextID++
	return nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) add(course *models.Course) {
	if course.ID >= f.nextID {
		f.nextID = course.ID + 1
	}
	f.courses[course.ID] = course
}

type fakeGradeStore struct {
	grades map[int64]*models.Grade
	nextID int64
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{grades: make(map[int64]*models.Grade), nextID: 1}
}

func (f *fakeGradeStore) GetAll(_ context.Context) ([]*models.Grade, error) {
	grades := make([]*models.Grade, 0, len(f.grades))
	for _, grade := range f.grades {
		grades = append(grades, grade)
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].ID < grades[j].ID })
	return grades, nil
}

func (f *fakeGradeStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Grade, error) {
	var grades []*models.Grade
	for _, grade := range f.grades {
		if grade.StudentID == studentID {
			grades = append(grades, grade)
		}
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].Date.Before(grades[j].Date) })
	return grades, nil
}

func (f *fakeGradeStore) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	grade, ok := f.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	return grade, nil
}

func (f *fakeGradeStore) Create(_ context.Context, grade *models.Grade) error {
	grade.ID = f.nextID
	f.grades[grade.ID] = grade
	f.nextID++
	return nil
}

func (f *fakeGradeStore) Update(_ context.Context, grade *models.Grade) error {
	if _, ok := f.grades[grade.ID]; !ok {
		return apperrors.ErrGradeNotFound
	}
	f.grades[grade.ID] = grade
	return nil
}

func (f *fakeGradeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.grades[id]; !ok {
		return apperrors.ErrGradeNotFound
	}
	delete(f.grades, id)
	return nil
}

func (f *fakeGradeStore) add(grade *models.Grade) {
	if grade.ID >= f.nextID {
		f.nextID = grade.ID + 1
	}
	f.grades[grade.ID] = grade
}
