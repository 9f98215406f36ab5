package api

import (
	"fmt"
	"net/http"

	"gym-admin/internal/domain"
	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainerHandler holds the trainer service dependency.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// CreateTrainerRequest carries the caller-suppliable fields for a new
// trainer. The dashboard counters always start at zero.
type CreateTrainerRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Phone       string   `json:"phone"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
	Experience  string   `json:"experience"`
	Rating      float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Status      string   `json:"status"`
}

// ListTrainers returns the full trainer collection.
// GET /api/v1/trainers
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.trainerService.List(c.Request.Context())
	if err != nil {
		respondRecordError(c, err, "trainer")
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// GetTrainer returns one trainer by ID.
// GET /api/v1/trainers/:id
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainer, err := h.trainerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRecordError(c, err, "trainer")
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// CreateTrainer creates a new trainer record.
// POST /api/v1/trainers
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.trainerService.Create(c.Request.Context(), &domain.Trainer{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Bio:         req.Bio,
		Specialties: req.Specialties,
		Experience:  req.Experience,
		Rating:      req.Rating,
		Status:      req.Status,
	})
	if err != nil {
		respondRecordError(c, err, "trainer")
		return
	}

	c.JSON(http.StatusCreated, trainer)
}

// UpdateTrainer applies a partial update to a trainer record. Fields absent
// from the body stay untouched; any `id` in the body is ignored.
// PUT /api/v1/trainers/:id
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	var patch domain.TrainerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.trainerService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondRecordError(c, err, "trainer")
		return
	}

	c.JSON(http.StatusOK, trainer)
}

// DeleteTrainer removes a trainer record.
// DELETE /api/v1/trainers/:id
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	if err := h.trainerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondRecordError(c, err, "trainer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted successfully"})
}
