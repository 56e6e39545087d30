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

type TeacherHandler struct {
	store store.Store
}

func NewTeacherHandler(s store.Store) *TeacherHandler {
	return &TeacherHandler{store: s}
}

type CreateTeacherRequest struct {
	Email           string                   `json:"email" binding:"required,email"`
	Name            string                   `json:"name" binding:"required"`
	Role            models.Role              `json:"role" binding:"required,oneof=admin teacher"`
	AssignedClasses []models.ClassAssignment `json:"assignedClasses"`
}

type UpdateTeacherRequest struct {
	Email           *string                   `json:"email"`
	Name            *string                   `json:"name"`
	Role            *models.Role              `json:"role"`
	AssignedClasses *[]models.ClassAssignment `json:"assignedClasses"`
}

func (h *TeacherHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	teachers, err := h.store.ListTeachers(ctx)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, teachers)
}

func (h *TeacherHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	teacher, err := h.store.GetTeacherByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Teacher not found")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, teacher)
}

func (h *TeacherHandler) Create(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	teacher := models.Teacher{
		Email:           req.Email,
		Name:            req.Name,
		Role:            req.Role,
		AssignedClasses: req.AssignedClasses,
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.store.CreateTeacher(ctx, &teacher); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.ErrorResponse(c, 400, "Email already registered")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 201, teacher)
}

func (h *TeacherHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid teacher ID")
		return
	}

	var req UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	fields := bson.M{}
	if req.Email != nil {
		if *req.Email == "" {
			utils.ErrorResponse(c, 400, "email is required")
			return
		}
		fields["email"] = *req.Email
	}
	if req.Name != nil {
		if *req.Name == "" {
			utils.ErrorResponse(c, 400, "name is required")
			return
		}
		fields["name"] = *req.Name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			utils.ErrorResponse(c, 400, "role must be admin or teacher")
			return
		}
		fields["role"] = *req.Role
	}
	if req.AssignedClasses != nil {
		fields["assignedClasses"] = *req.AssignedClasses
	}
	if len(fields) == 0 {
		utils.ErrorResponse(c, 400, "No fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	teacher, err := h.store.UpdateTeacher(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Teacher not found")
			return
		}
		if errors.Is(err, store.ErrDuplicate) {
			utils.ErrorResponse(c, 400, "Email already registered")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, teacher)
}
