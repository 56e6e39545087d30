package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/afaq832/GHSS117-Backend/internal/database"
	"github.com/afaq832/GHSS117-Backend/internal/utils"
)

// Health reports liveness plus whether the document store answers.
func Health(db *database.Mongo) gin.HandlerFunc {
	return func(c *gin.Context) {
		healthy := db.Healthy(c.Request.Context())
		status := 200
		if !healthy {
			status = 503
		}
		utils.SuccessResponse(c, status, gin.H{
			"status": "School Attendance API is running",
			"db":     healthy,
		})
	}
}
