package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/afaq832/GHSS117-Backend/internal/models"
)

var (
	// ErrNotFound is returned when the targeted document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)

// StudentFilter narrows student listings. Empty fields match everything.
type StudentFilter struct {
	Class   string
	Section string
}

// DateRange bounds a student's attendance history. Nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Store is the persistence surface the handlers talk to. The mongodb
// package provides the real implementation; tests substitute a mock.
type Store interface {
	ListStudents(ctx context.Context, f StudentFilter) ([]models.Student, error)
	GetStudent(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	CreateStudent(ctx context.Context, s *models.Student) error
	UpdateStudent(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Student, error)
	DeleteStudent(ctx context.Context, id primitive.ObjectID) error

	// UpsertDayAttendance atomically creates or overwrites the mark for
	// (mark.StudentID, mark.Date's calendar day) and returns the stored
	// document.
	UpsertDayAttendance(ctx context.Context, mark models.Attendance) (*models.Attendance, error)
	ListAttendanceBetween(ctx context.Context, start, end time.Time) ([]models.Attendance, error)
	ListStudentAttendance(ctx context.Context, studentID primitive.ObjectID, r DateRange) ([]models.Attendance, error)

	ListClasses(ctx context.Context) ([]models.Class, error)
	CreateClass(ctx context.Context, cl *models.Class) error
	UpdateClass(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Class, error)
	DeleteClass(ctx context.Context, id primitive.ObjectID) error

	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, t *models.Teacher) error
	UpdateTeacher(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Teacher, error)

	EnsureIndexes(ctx context.Context) error
}
