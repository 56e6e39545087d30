package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/afaq832/GHSS117-Backend/internal/models"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

func TestMarkAttendance(t *testing.T) {
	studentID := primitive.NewObjectID()
	stored := &models.Attendance{
		ID:          primitive.NewObjectID(),
		StudentID:   studentID,
		StudentName: "Ayesha Khan",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:      models.StatusPresent,
		MarkedBy:    "teacher@school.com",
		Timestamp:   time.Now().UTC(),
	}

	ms := new(MockStore)
	ms.On("UpsertDayAttendance", mock.Anything, mock.MatchedBy(func(m models.Attendance) bool {
		return m.StudentID == studentID && m.Status == models.StatusPresent
	})).Return(stored, nil)

	w, env := doRequest(t, attendanceRouter(ms), "POST", "/api/attendance", map[string]interface{}{
		"studentId":   studentID.Hex(),
		"studentName": "Ayesha Khan",
		"date":        "2024-01-15",
		"status":      "present",
		"markedBy":    "teacher@school.com",
	})

	require.Equal(t, 200, w.Code)
	require.True(t, env.Success)

	var got models.Attendance
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, models.StatusPresent, got.Status)
	ms.AssertExpectations(t)
}

func TestMarkAttendanceSameDayConvergesToLatestStatus(t *testing.T) {
	studentID := primitive.NewObjectID()

	// Stateful double standing in for the atomic upsert: one record per
	// (student, day), later marks overwrite status and markedBy.
	stored := &models.Attendance{}
	ms := new(MockStore)
	ms.On("UpsertDayAttendance", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			mark := args.Get(1).(models.Attendance)
			day, _ := models.DayBounds(mark.Date)
			if stored.ID.IsZero() {
				stored.ID = primitive.NewObjectID()
				stored.StudentID = mark.StudentID
				stored.Date = day
			}
			stored.StudentName = mark.StudentName
			stored.Status = mark.Status
			stored.MarkedBy = mark.MarkedBy
			stored.Timestamp = time.Now().UTC()
		}).
		Return(stored, nil)

	r := attendanceRouter(ms)
	body := map[string]interface{}{
		"studentId":   studentID.Hex(),
		"studentName": "Ayesha Khan",
		"date":        "2024-01-15",
		"status":      "present",
	}

	_, first := doRequest(t, r, "POST", "/api/attendance", body)
	var firstRec models.Attendance
	require.NoError(t, json.Unmarshal(first.Data, &firstRec))

	body["status"] = "leave"
	_, second := doRequest(t, r, "POST", "/api/attendance", body)
	var secondRec models.Attendance
	require.NoError(t, json.Unmarshal(second.Data, &secondRec))

	assert.Equal(t, firstRec.ID, secondRec.ID, "same day must hit the same record")
	assert.Equal(t, models.StatusLeave, secondRec.Status)
	ms.AssertNumberOfCalls(t, "UpsertDayAttendance", 2)
}

func TestMarkAttendanceRejectsBadStatus(t *testing.T) {
	ms := new(MockStore)

	w, env := doRequest(t, attendanceRouter(ms), "POST", "/api/attendance", map[string]interface{}{
		"studentId": primitive.NewObjectID().Hex(),
		"date":      "2024-01-15",
		"status":    "vacation",
	})

	assert.Equal(t, 400, w.Code)
	assert.False(t, env.Success)
	ms.AssertNotCalled(t, "UpsertDayAttendance", mock.Anything, mock.Anything)
}

func TestMarkAttendanceRejectsBadDate(t *testing.T) {
	ms := new(MockStore)

	w, env := doRequest(t, attendanceRouter(ms), "POST", "/api/attendance", map[string]interface{}{
		"studentId": primitive.NewObjectID().Hex(),
		"date":      "15/01/2024",
		"status":    "present",
	})

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, env.Error, "Invalid date")
}

func TestAttendanceByDateRequiresDate(t *testing.T) {
	ms := new(MockStore)

	w, env := doRequest(t, attendanceRouter(ms), "GET", "/api/attendance?class=9&section=B", nil)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "date query parameter is required", env.Error)
	ms.AssertNotCalled(t, "ListAttendanceBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceByDateUsesDayBoundaries(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)

	ms := new(MockStore)
	ms.On("ListAttendanceBetween", mock.Anything, start, end).
		Return([]models.Attendance{}, nil)

	w, env := doRequest(t, attendanceRouter(ms), "GET", "/api/attendance?date=2024-01-15", nil)

	require.Equal(t, 200, w.Code)
	require.True(t, env.Success)
	ms.AssertExpectations(t)
}

func TestStudentHistoryWithRange(t *testing.T) {
	studentID := primitive.NewObjectID()

	ms := new(MockStore)
	ms.On("ListStudentAttendance", mock.Anything, studentID, mock.MatchedBy(func(r store.DateRange) bool {
		if r.From == nil || r.To == nil {
			return false
		}
		return r.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			r.To.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour-time.Millisecond))
	})).Return([]models.Attendance{}, nil)

	w, _ := doRequest(t, attendanceRouter(ms),
		"GET", "/api/attendance/student/"+studentID.Hex()+"?startDate=2024-01-01&endDate=2024-01-31", nil)

	assert.Equal(t, 200, w.Code)
	ms.AssertExpectations(t)
}

func TestStudentHistoryOpenRange(t *testing.T) {
	studentID := primitive.NewObjectID()

	ms := new(MockStore)
	ms.On("ListStudentAttendance", mock.Anything, studentID, store.DateRange{}).
		Return([]models.Attendance{}, nil)

	w, _ := doRequest(t, attendanceRouter(ms),
		"GET", "/api/attendance/student/"+studentID.Hex(), nil)

	assert.Equal(t, 200, w.Code)
	ms.AssertExpectations(t)
}
