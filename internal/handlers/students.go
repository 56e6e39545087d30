package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/afaq832/GHSS117-Backend/internal/models"
	"github.com/afaq832/GHSS117-Backend/internal/store"
	"github.com/afaq832/GHSS117-Backend/internal/utils"
)

const storeTimeout = 5 * time.Second

type StudentHandler struct {
	store store.Store
}

func NewStudentHandler(s store.Store) *StudentHandler {
	return &StudentHandler{store: s}
}

type CreateStudentRequest struct {
	Name          string `json:"name" binding:"required"`
	RollNumber    string `json:"rollNumber" binding:"required"`
	Class         string `json:"class" binding:"required"`
	Section       string `json:"section" binding:"required"`
	DOB           string `json:"dob"`
	Address       string `json:"address"`
	ParentContact string `json:"parentContact"`
}

type UpdateStudentRequest struct {
	Name          *string `json:"name"`
	RollNumber    *string `json:"rollNumber"`
	Class         *string `json:"class"`
	Section       *string `json:"section"`
	DOB           *string `json:"dob"`
	Address       *string `json:"address"`
	ParentContact *string `json:"parentContact"`
}

func (h *StudentHandler) List(c *gin.Context) {
	filter := store.StudentFilter{
		Class:   c.Query("class"),
		Section: c.Query("section"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	students, err := h.store.ListStudents(ctx, filter)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	student, err := h.store.GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, student)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	student := models.Student{
		Name:          req.Name,
		RollNumber:    req.RollNumber,
		Class:         req.Class,
		Section:       req.Section,
		Address:       req.Address,
		ParentContact: req.ParentContact,
	}
	if req.DOB != "" {
		dob, err := models.ParseDate(req.DOB)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid dob, expected RFC 3339 or YYYY-MM-DD")
			return
		}
		student.DOB = &dob
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.store.CreateStudent(ctx, &student); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 201, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	fields := bson.M{}
	for name, val := range map[string]*string{
		"name":       req.Name,
		"rollNumber": req.RollNumber,
		"class":      req.Class,
		"section":    req.Section,
	} {
		if val == nil {
			continue
		}
		if *val == "" {
			utils.ErrorResponse(c, 400, name+" is required")
			return
		}
		fields[name] = *val
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.ParentContact != nil {
		fields["parentContact"] = *req.ParentContact
	}
	if req.DOB != nil {
		dob, err := models.ParseDate(*req.DOB)
		if err != nil {
			utils.ErrorResponse(c, 400, "Invalid dob, expected RFC 3339 or YYYY-MM-DD")
			return
		}
		fields["dob"] = dob
	}
	if len(fields) == 0 {
		utils.ErrorResponse(c, 400, "No fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	student, err := h.store.UpdateStudent(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid student ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.store.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"deleted": true})
}
