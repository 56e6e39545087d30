package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/afaq832/GHSS117-Backend/internal/metrics"
	"github.com/afaq832/GHSS117-Backend/internal/models"
	"github.com/afaq832/GHSS117-Backend/internal/store"
	"github.com/afaq832/GHSS117-Backend/internal/utils"
)

type AttendanceHandler struct {
	store store.Store
}

func NewAttendanceHandler(s store.Store) *AttendanceHandler {
	return &AttendanceHandler{store: s}
}

type MarkAttendanceRequest struct {
	StudentID   string                  `json:"studentId" binding:"required"`
	StudentName string                  `json:"studentName"`
	Date        string                  `json:"date" binding:"required"`
	Status      models.AttendanceStatus `json:"status" binding:"required,oneof=present absent leave"`
	MarkedBy    string                  `json:"markedBy"`
}

// Mark records a student's status for one calendar day. Marking the same
// student and day again overwrites status and markedBy and refreshes the
// timestamp, so repeated calls converge to the latest mark.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	studentID, err := primitive.ObjectIDFromHex(req.StudentID)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid date, expected RFC 3339 or YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	record, err := h.store.UpsertDayAttendance(ctx, models.Attendance{
		StudentID:   studentID,
		StudentName: req.StudentName,
		Date:        date,
		Status:      req.Status,
		MarkedBy:    req.MarkedBy,
	})
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	metrics.AttendanceMarksTotal.WithLabelValues(string(req.Status)).Inc()
	utils.SuccessResponse(c, 200, record)
}

// ByDate lists every mark whose date falls on the requested calendar day.
// The class and section query parameters are accepted for clients that
// send them, but attendance documents carry no class or section fields,
// so filtering stays on the client side.
func (h *AttendanceHandler) ByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.ErrorResponse(c, 400, "date query parameter is required")
		return
	}

	date, err := models.ParseDate(dateStr)
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid date, expected RFC 3339 or YYYY-MM-DD")
		return
	}
	start, end := models.DayBounds(date)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	records, err := h.store.ListAttendanceBetween(ctx, start, end)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, records)
}

// StudentHistory lists a student's marks sorted by date descending, with
// an optional inclusive startDate/endDate range.
func (h *AttendanceHandler) StudentHistory(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("studentId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	var dateRange store.DateRange
	if v := c.Query("startDate"); v != "" {
		t, err := models.ParseDate(v)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid startDate, expected RFC 3339 or YYYY-MM-DD")
			return
		}
		start, _ := models.DayBounds(t)
		dateRange.From = &start
	}
	if v := c.Query("endDate"); v != "" {
		t, err := models.ParseDate(v)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid endDate, expected RFC 3339 or YYYY-MM-DD")
			return
		}
		_, end := models.DayBounds(t)
		dateRange.To = &end
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	records, err := h.store.ListStudentAttendance(ctx, studentID, dateRange)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, records)
}
