package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/afaq832/GHSS117-Backend/internal/handlers"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

func ClassRoutes(r *gin.Engine, s store.Store) {
	h := handlers.NewClassHandler(s)

	r.GET("/api/classes", h.List)
	r.POST("/api/classes", h.Create)
	r.PUT("/api/classes/:id", h.Update)
	r.DELETE("/api/classes/:id", h.Delete)
}
