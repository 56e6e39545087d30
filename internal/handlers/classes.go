package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/afaq832/GHSS117-Backend/internal/models"
	"github.com/afaq832/GHSS117-Backend/internal/store"
	"github.com/afaq832/GHSS117-Backend/internal/utils"
)

type ClassHandler struct {
	store store.Store
}

func NewClassHandler(s store.Store) *ClassHandler {
	return &ClassHandler{store: s}
}

type CreateClassRequest struct {
	ClassName string   `json:"className" binding:"required"`
	Sections  []string `json:"sections"`
}

type UpdateClassRequest struct {
	ClassName *string   `json:"className"`
	Sections  *[]string `json:"sections"`
}

func (h *ClassHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	classes, err := h.store.ListClasses(ctx)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, classes)
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	class := models.Class{
		ClassName: req.ClassName,
		Sections:  req.Sections,
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.store.CreateClass(ctx, &class); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 201, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid class ID")
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	fields := bson.M{}
	if req.ClassName != nil {
		if *req.ClassName == "" {
			utils.ErrorResponse(c, 400, "className is required")
			return
		}
		fields["className"] = *req.ClassName
	}
	if req.Sections != nil {
		fields["sections"] = *req.Sections
	}
	if len(fields) == 0 {
		utils.ErrorResponse(c, 400, "No fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	class, err := h.store.UpdateClass(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Class not found")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, class)
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid class ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.store.DeleteClass(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Class not found")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"deleted": true})
}
