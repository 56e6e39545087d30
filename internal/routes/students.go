package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/afaq832/GHSS117-Backend/internal/handlers"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

func StudentRoutes(r *gin.Engine, s store.Store) {
	h := handlers.NewStudentHandler(s)

	r.GET("/api/students", h.List)
	r.GET("/api/students/:id", h.Get)
	r.POST("/api/students", h.Create)
	r.PUT("/api/students/:id", h.Update)
	r.DELETE("/api/students/:id", h.Delete)
}
