package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/afaq832/GHSS117-Backend/internal/handlers"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

func AttendanceRoutes(r *gin.Engine, s store.Store) {
	h := handlers.NewAttendanceHandler(s)

	r.POST("/api/attendance", h.Mark)
	r.GET("/api/attendance", h.ByDate)
	r.GET("/api/attendance/student/:studentId", h.StudentHistory)
}
