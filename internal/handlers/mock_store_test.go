package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/afaq832/GHSS117-Backend/internal/models"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListStudents(ctx context.Context, f store.StudentFilter) ([]models.Student, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStore) GetStudent(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStore) CreateStudent(ctx context.Context, s *models.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStore) UpdateStudent(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Student, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStore) DeleteStudent(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) UpsertDayAttendance(ctx context.Context, mark models.Attendance) (*models.Attendance, error) {
	args := m.Called(ctx, mark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *MockStore) ListAttendanceBetween(ctx context.Context, start, end time.Time) ([]models.Attendance, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

func (m *MockStore) ListStudentAttendance(ctx context.Context, studentID primitive.ObjectID, r store.DateRange) ([]models.Attendance, error) {
	args := m.Called(ctx, studentID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

func (m *MockStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Class), args.Error(1)
}

func (m *MockStore) CreateClass(ctx context.Context, cl *models.Class) error {
	args := m.Called(ctx, cl)
	return args.Error(0)
}

func (m *MockStore) UpdateClass(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Class, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Class), args.Error(1)
}

func (m *MockStore) DeleteClass(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *MockStore) GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockStore) CreateTeacher(ctx context.Context, t *models.Teacher) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockStore) UpdateTeacher(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Teacher, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Teacher), args.Error(1)
}

func (m *MockStore) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
