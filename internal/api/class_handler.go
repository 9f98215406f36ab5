package api

import (
	"fmt"
	"net/http"

	"gym-admin/internal/domain"
	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ClassHandler holds the class service dependency.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// CreateClassRequest carries the caller-suppliable fields for a new class.
// Enrollment and the attendee list always start at zero/empty.
type CreateClassRequest struct {
	Name         string `json:"name" binding:"required"`
	Instructor   string `json:"instructor"`
	InstructorID string `json:"instructorId"`
	Schedule     string `json:"schedule"`
	Duration     string `json:"duration"`
	Room         string `json:"room"`
	Capacity     int    `json:"capacity" binding:"omitempty,min=0"`
	Status       string `json:"status"`
}

// ListClasses returns the full class collection.
// GET /api/v1/classes
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		respondRecordError(c, err, "class")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass returns one class by ID.
// GET /api/v1/classes/:id
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "class")
		return
	}
	c.JSON(http.StatusOK, class)
}

// CreateClass creates a new class record.
// POST /api/v1/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	class, err := h.classService.Create(c.Request.Context(), &domain.Class{
		Name:         req.Name,
		Instructor:   req.Instructor,
		InstructorID: req.InstructorID,
		Schedule:     req.Schedule,
		Duration:     req.Duration,
		Room:         req.Room,
		Capacity:     req.Capacity,
		Status:       req.Status,
	})
	if err != nil {
		respondRecordError(c, err, "class")
		return
	}

	c.JSON(http.StatusCreated, class)
}

// UpdateClass applies a partial update to a class record. Fields absent from
// the body stay untouched; any `id` in the body is ignored.
// PUT /api/v1/classes/:id
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var patch domain.ClassPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	class, err := h.classService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondRecordError(c, err, "class")
		return
	}

	c.JSON(http.StatusOK, class)
}

// DeleteClass removes a class record.
// DELETE /api/v1/classes/:id
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	if err := h.classService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "class")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted successfully"})
}
