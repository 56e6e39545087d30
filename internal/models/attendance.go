package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatus is the per-day mark recorded for a student.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLeave   AttendanceStatus = "leave"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	default:
		return false
	}
}

// Attendance is one student's mark for one calendar day. Date is always
// stored pinned to 00:00:00 of its day; together with the unique
// (studentId, date) index that keeps one record per student per day.
type Attendance struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	StudentName string             `bson:"studentName" json:"studentName"`
	Date        time.Time          `bson:"date" json:"date"`
	Status      AttendanceStatus   `bson:"status" json:"status"`
	MarkedBy    string             `bson:"markedBy,omitempty" json:"markedBy,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// DayBounds returns the inclusive boundaries of t's calendar day in
// whatever location t carries.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// ParseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates; bare
// dates are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
