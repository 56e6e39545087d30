package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/afaq832/GHSS117-Backend/internal/handlers"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

func TeacherRoutes(r *gin.Engine, s store.Store) {
	h := handlers.NewTeacherHandler(s)

	r.GET("/api/teachers", h.List)
	r.GET("/api/teachers/email/:email", h.GetByEmail)
	r.POST("/api/teachers", h.Create)
	r.PUT("/api/teachers/:id", h.Update)

	setup := handlers.NewSetupHandler(s)
	r.POST("/api/setup", setup.Run)
}
